package invindex

import "fmt"

// DocAddress identifies a document within a sealed index by its commit-time
// ordinal, the same concept the external search library calls a doc
// address: an opaque handle a search returns, resolved back to stored
// fields via Index.ResolveID.
type DocAddress uint32

// Index is a sealed, read-only view over a Directory produced by
// Builder.Commit (or reopened later through vfsdir). Open never mutates
// the directory beyond the lock-path write concession LockFileName
// describes.
type Index struct {
	schema   Schema
	meta     metaDescriptor
	postings *postingsSegment
	storeIDs []uint64
}

// Open reads meta.json, postings.bin, and store.bin from dir and returns a
// ready-to-query Index. It is the Go analogue of the external search
// library's open-or-create entry point, narrowed to the open path since
// this package only ever opens directories Builder has already sealed.
func Open(dir Directory, schema Schema) (*Index, error) {
	metaBytes, err := dir.AtomicRead(MetaFileName)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrIndexBuild, MetaFileName, err)
	}
	meta, err := decodeMeta(metaBytes)
	if err != nil {
		return nil, err
	}

	postingsBytes, err := dir.AtomicRead("postings.bin")
	if err != nil {
		return nil, fmt.Errorf("%w: reading postings.bin: %v", ErrIndexBuild, err)
	}
	postings, err := decodePostings(postingsBytes)
	if err != nil {
		return nil, err
	}

	storeBytes, err := dir.AtomicRead("store.bin")
	if err != nil {
		return nil, fmt.Errorf("%w: reading store.bin: %v", ErrIndexBuild, err)
	}
	ids, err := decodeStore(storeBytes)
	if err != nil {
		return nil, err
	}

	if _, err := dir.OpenWrite(LockFileName); err != nil {
		return nil, fmt.Errorf("%w: acquiring lock path: %v", ErrIndexBuild, err)
	}

	return &Index{schema: schema, meta: meta, postings: postings, storeIDs: ids}, nil
}

// NumDocs returns the number of documents committed into the index.
func (ix *Index) NumDocs() uint64 { return ix.meta.NumDocs }

// ResolveID maps a DocAddress back to the value stored under the schema's
// id field.
func (ix *Index) ResolveID(addr DocAddress) (uint64, error) {
	if int(addr) >= len(ix.storeIDs) {
		return 0, fmt.Errorf("%w: doc address %d", ErrInvalidRange, addr)
	}
	return ix.storeIDs[addr], nil
}
