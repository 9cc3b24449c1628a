package invindex

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// storeMagic identifies store.bin: a flat array mapping doc ordinal (the
// position a document was committed in) back to the value it stored under
// the schema's id field, the minimum "fetch the stored fields of a
// DocAddress" support a phrase search needs (spec.md §4.6).
var storeMagic = [4]byte{'f', 't', 's', 't'}

const storeVersion = uint8(1)

func encodeStore(ids []uint64) []byte {
	var out bytes.Buffer
	out.Write(storeMagic[:])
	out.WriteByte(storeVersion)
	putUint32(&out, uint32(len(ids)))
	for _, id := range ids {
		putUint64(&out, id)
	}
	return out.Bytes()
}

func decodeStore(b []byte) ([]uint64, error) {
	if len(b) < 4+1+4 {
		return nil, fmt.Errorf("%w: store.bin truncated", ErrIndexBuild)
	}
	if !bytes.Equal(b[:4], storeMagic[:]) {
		return nil, fmt.Errorf("%w: store.bin bad magic", ErrIndexBuild)
	}
	if b[4] != storeVersion {
		return nil, fmt.Errorf("%w: store.bin unsupported version %d", ErrIndexBuild, b[4])
	}
	n := binary.LittleEndian.Uint32(b[5:9])
	body := b[9:]
	if uint64(len(body)) < uint64(n)*8 {
		return nil, fmt.Errorf("%w: store.bin short body", ErrIndexBuild)
	}
	ids := make([]uint64, n)
	for i := range ids {
		ids[i] = binary.LittleEndian.Uint64(body[i*8 : i*8+8])
	}
	return ids, nil
}
