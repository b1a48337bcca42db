package embedding

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EncodeVector packs a vector into the little-endian float32 BLOB layout used
// by the vectors table. There is no length prefix; the dimension is recovered
// from the BLOB size on decode. An empty vector encodes to a nil BLOB.
func EncodeVector(vec []float32) ([]byte, error) {
	if len(vec) == 0 {
		return nil, nil
	}
	b := make([]byte, 0, len(vec)*4)
	for _, v := range vec {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
	}
	return b, nil
}

// DecodeVector is the inverse of EncodeVector. A nil BLOB decodes to a nil
// vector; any other length must be a whole number of float32 values.
func DecodeVector(b []byte) ([]float32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("embedding: vector blob length %d is not a multiple of 4", len(b))
	}
	vec := make([]float32, len(b)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return vec, nil
}
