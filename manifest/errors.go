package manifest

import "errors"

// ErrEmptyDirectory is returned when Build is asked to plan a directory
// with no managed files; a container embedding nothing is never useful.
var ErrEmptyDirectory = errors.New("ftep/manifest: directory has no managed files")
