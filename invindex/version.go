package invindex

// FormatVersion identifies the on-disk layout of a sealed index. It is
// written into meta.json at build time and, unmodified, into the
// reconstructed footer manifest.Build synthesizes for every other
// logical file the container embeds (spec.md §4.4): the external search
// library's open routine inspects a version tuple of this shape on every
// file it opens, not just the descriptor it wrote itself.
type FormatVersion struct {
	Major              uint32 `json:"major"`
	Minor              uint32 `json:"minor"`
	Patch              uint32 `json:"patch"`
	IndexFormatVersion uint32 `json:"index_format_version"`
}

// CurrentFormatVersion is stamped into every index this build produces.
var CurrentFormatVersion = FormatVersion{Major: 0, Minor: 22, Patch: 0, IndexFormatVersion: 6}
