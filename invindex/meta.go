package invindex

import (
	"encoding/json"
	"fmt"
)

// MetaFileName is the one logical file in every sealed index that carries
// human-readable, versioned metadata rather than a binary segment body.
// container.MetaFileName names the same path for the outer container's own
// bookkeeping entry; the two are independent descriptors that happen to
// share a conventional name.
const MetaFileName = "meta.json"

// metaDescriptor is the JSON body written to MetaFileName: the format
// version plus the segment's document count, mirroring the small
// self-description block the external search library's own meta.json
// carries (spec.md §4.4).
type metaDescriptor struct {
	Version  FormatVersion `json:"version"`
	NumDocs  uint64        `json:"num_docs"`
	Segments []string      `json:"segments"`
}

func encodeMeta(d metaDescriptor) ([]byte, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("ftep/invindex: encoding %s: %w", MetaFileName, err)
	}
	return b, nil
}

func decodeMeta(b []byte) (metaDescriptor, error) {
	var d metaDescriptor
	if err := json.Unmarshal(b, &d); err != nil {
		return metaDescriptor{}, fmt.Errorf("ftep/invindex: decoding %s: %w", MetaFileName, err)
	}
	return d, nil
}
