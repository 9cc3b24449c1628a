package invindex

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// postingsMagic and postingsVersion identify the postings.bin layout: a
// per-field term dictionary of fixed-width entries sorted by term hash for
// binary-search lookup, followed by delta-varint-encoded posting
// lists carrying per-document term positions for phrase adjacency checks.
var postingsMagic = [8]byte{'f', 't', 'p', 'o', 's', 't', 'n', 'g'}

const postingsVersion = uint8(1)

const dictEntryWidth = 8 + 4 + 2 + 4 + 4 // hash, termOffset, termLen, postingsOffset, postingsLen

// posting is one document's occurrences of a term within a field.
type posting struct {
	docOrdinal uint32
	positions  []uint32 // ascending
}

// termPostings is one term's full posting list within a field, plus its
// hash for dictionary lookup.
type termPostings struct {
	term     string
	hash     uint64
	postings []posting // ascending by docOrdinal
}

// fieldPostings is one field's term dictionary, built in memory by Builder
// and serialized by encodePostings.
type fieldPostings struct {
	name  string
	terms []termPostings // sorted by (hash, term)
}

// sortFieldPostings orders terms by hash then term text, the order
// encodePostings relies on to make the dictionary binary-searchable.
func sortFieldPostings(fields []fieldPostings) {
	for fi := range fields {
		terms := fields[fi].terms
		sort.Slice(terms, func(i, j int) bool {
			if terms[i].hash != terms[j].hash {
				return terms[i].hash < terms[j].hash
			}
			return terms[i].term < terms[j].term
		})
		for _, tp := range terms {
			sort.Slice(tp.postings, func(i, j int) bool { return tp.postings[i].docOrdinal < tp.postings[j].docOrdinal })
		}
	}
}

func termHash(term string) uint64 { return xxhash.Sum64String(term) }

func encodePostings(fields []fieldPostings) ([]byte, error) {
	var out bytes.Buffer
	out.Write(postingsMagic[:])
	out.WriteByte(postingsVersion)
	putUint32(&out, uint32(len(fields)))

	for _, f := range fields {
		if len(f.name) > 255 {
			return nil, fmt.Errorf("ftep/invindex: field name %q exceeds 255 bytes", f.name)
		}
		out.WriteByte(uint8(len(f.name)))
		out.WriteString(f.name)
		putUint32(&out, uint32(len(f.terms)))

		var dictBlob, termBlob, postingsBlob bytes.Buffer
		for _, tp := range f.terms {
			termOffset := uint32(termBlob.Len())
			termBlob.WriteString(tp.term)

			postingsOffset := uint32(postingsBlob.Len())
			encodeTermPostings(&postingsBlob, tp.postings)
			postingsLen := uint32(postingsBlob.Len()) - postingsOffset

			putUint64(&dictBlob, tp.hash)
			putUint32(&dictBlob, termOffset)
			putUint16(&dictBlob, uint16(len(tp.term)))
			putUint32(&dictBlob, postingsOffset)
			putUint32(&dictBlob, postingsLen)
		}

		putUint32(&out, uint32(dictBlob.Len()))
		out.Write(dictBlob.Bytes())
		putUint32(&out, uint32(termBlob.Len()))
		out.Write(termBlob.Bytes())
		putUint32(&out, uint32(postingsBlob.Len()))
		out.Write(postingsBlob.Bytes())
	}

	return out.Bytes(), nil
}

func encodeTermPostings(w *bytes.Buffer, postings []posting) {
	putUvarint(w, uint64(len(postings)))
	var prevDoc uint32
	for _, p := range postings {
		putUvarint(w, uint64(p.docOrdinal-prevDoc))
		prevDoc = p.docOrdinal

		putUvarint(w, uint64(len(p.positions)))
		var prevPos uint32
		for _, pos := range p.positions {
			putUvarint(w, uint64(pos-prevPos))
			prevPos = pos
		}
	}
}

// postingsSegment is a decoded, read-only view over postings.bin, indexed
// for binary-search term lookup.
type postingsSegment struct {
	fields map[string]decodedField
}

type decodedField struct {
	dict      []byte // dictEntryWidth-wide entries, sorted by hash
	termBlob  []byte
	postBlob  []byte
	numTerms  int
}

func decodePostings(b []byte) (*postingsSegment, error) {
	if len(b) < len(postingsMagic)+1+4 {
		return nil, fmt.Errorf("%w: postings.bin truncated", ErrIndexBuild)
	}
	if !bytes.Equal(b[:8], postingsMagic[:]) {
		return nil, fmt.Errorf("%w: postings.bin bad magic", ErrIndexBuild)
	}
	if b[8] != postingsVersion {
		return nil, fmt.Errorf("%w: postings.bin unsupported version %d", ErrIndexBuild, b[8])
	}
	r := b[9:]
	numFields := binary.LittleEndian.Uint32(r)
	r = r[4:]

	fields := make(map[string]decodedField, numFields)
	for i := uint32(0); i < numFields; i++ {
		nameLen := int(r[0])
		r = r[1:]
		name := string(r[:nameLen])
		r = r[nameLen:]

		numTerms := binary.LittleEndian.Uint32(r)
		r = r[4:]

		dictLen := binary.LittleEndian.Uint32(r)
		r = r[4:]
		dict := r[:dictLen]
		r = r[dictLen:]

		termBlobLen := binary.LittleEndian.Uint32(r)
		r = r[4:]
		termBlob := r[:termBlobLen]
		r = r[termBlobLen:]

		postBlobLen := binary.LittleEndian.Uint32(r)
		r = r[4:]
		postBlob := r[:postBlobLen]
		r = r[postBlobLen:]

		fields[name] = decodedField{dict: dict, termBlob: termBlob, postBlob: postBlob, numTerms: int(numTerms)}
	}

	return &postingsSegment{fields: fields}, nil
}

// lookup finds term's postings within field by binary-searching the sorted
// hash entries, then confirming an exact term-byte match to rule out hash
// collisions.
func (s *postingsSegment) lookup(field, term string) ([]posting, bool) {
	df, ok := s.fields[field]
	if !ok {
		return nil, false
	}
	h := termHash(term)

	lo, hi := 0, df.numTerms
	for lo < hi {
		mid := (lo + hi) / 2
		entry := df.dict[mid*dictEntryWidth : (mid+1)*dictEntryWidth]
		eh := binary.LittleEndian.Uint64(entry[0:8])
		if eh < h {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	for ; lo < df.numTerms; lo++ {
		entry := df.dict[lo*dictEntryWidth : (lo+1)*dictEntryWidth]
		eh := binary.LittleEndian.Uint64(entry[0:8])
		if eh != h {
			break
		}
		termOffset := binary.LittleEndian.Uint32(entry[8:12])
		termLen := binary.LittleEndian.Uint16(entry[12:14])
		candidate := string(df.termBlob[termOffset : termOffset+uint32(termLen)])
		if candidate != term {
			continue
		}
		postingsOffset := binary.LittleEndian.Uint32(entry[14:18])
		postingsLen := binary.LittleEndian.Uint32(entry[18:22])
		return decodeTermPostings(df.postBlob[postingsOffset : postingsOffset+postingsLen]), true
	}
	return nil, false
}

func decodeTermPostings(b []byte) []posting {
	numDocs, n := binary.Uvarint(b)
	b = b[n:]

	out := make([]posting, 0, numDocs)
	var prevDoc uint32
	for i := uint64(0); i < numDocs; i++ {
		delta, n := binary.Uvarint(b)
		b = b[n:]
		prevDoc += uint32(delta)

		numPositions, n := binary.Uvarint(b)
		b = b[n:]

		positions := make([]uint32, 0, numPositions)
		var prevPos uint32
		for j := uint64(0); j < numPositions; j++ {
			delta, n := binary.Uvarint(b)
			b = b[n:]
			prevPos += uint32(delta)
			positions = append(positions, prevPos)
		}
		out = append(out, posting{docOrdinal: prevDoc, positions: positions})
	}
	return out
}

func putUint16(w *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.Write(b[:])
}

func putUint32(w *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.Write(b[:])
}

func putUint64(w *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.Write(b[:])
}

func putUvarint(w *bytes.Buffer, v uint64) {
	var b [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(b[:], v)
	w.Write(b[:n])
}
