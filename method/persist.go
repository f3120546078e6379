package method

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/viant/simspace/object"
)

// EncodeData serializes a dataset for index persistence:
// elemType(uint8), n(uint32), then for each object
// id(int64), label(int64), payloadLen(uint32), payload bytes.
func EncodeData[T object.Numeric](data object.Vector) []byte {
	size := 5
	for _, o := range data {
		size += 20 + o.Len()
	}
	out := make([]byte, 0, size)
	out = append(out, byte(object.TypeOf[T]()))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(data)))
	for _, o := range data {
		out = binary.LittleEndian.AppendUint64(out, uint64(int64(o.ID())))
		out = binary.LittleEndian.AppendUint64(out, uint64(int64(o.Label())))
		payload := o.Payload()
		out = binary.LittleEndian.AppendUint32(out, uint32(len(payload)))
		out = append(out, payload...)
	}
	return out
}

// DecodeData reverses EncodeData. The stored element type must be T.
func DecodeData[T object.Numeric](data []byte) (object.Vector, error) {
	if len(data) < 5 {
		return nil, errors.New("method: invalid index data")
	}
	if got, want := object.ElementType(data[0]), object.TypeOf[T](); got != want {
		return nil, fmt.Errorf("method: stored element type %s, want %s", got, want)
	}
	off := 1
	getU32 := func() uint32 { v := binary.LittleEndian.Uint32(data[off : off+4]); off += 4; return v }
	getI64 := func() int64 { v := int64(binary.LittleEndian.Uint64(data[off : off+8])); off += 8; return v }
	n := int(getU32())
	objs := make(object.Vector, 0, min(n, len(data)/20))
	for idx := 0; idx < n; idx++ {
		if off+20 > len(data) {
			return nil, errors.New("method: truncated index data")
		}
		id := getI64()
		label := getI64()
		plen := int(getU32())
		if off+plen > len(data) {
			return nil, errors.New("method: truncated object payload")
		}
		objs = append(objs, object.New(int(id), int(label), data[off:off+plen]))
		off += plen
	}
	return objs, nil
}
