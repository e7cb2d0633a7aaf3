package letters

import (
	"encoding/json"
	"fmt"
)

// EncodeCollection serializes letters for the storage collaborator: a JSON
// array in insertion order. Timestamps marshal as RFC 3339 with sub-second
// precision, so the round trip is lossless well past the millisecond.
func EncodeCollection(ls []Letter) ([]byte, error) {
	if ls == nil {
		ls = []Letter{}
	}
	data, err := json.Marshal(ls)
	if err != nil {
		return nil, fmt.Errorf("encode letters: %w", err)
	}
	return data, nil
}

// DecodeCollection parses a blob previously produced by EncodeCollection.
func DecodeCollection(blob []byte) ([]Letter, error) {
	var ls []Letter
	if err := json.Unmarshal(blob, &ls); err != nil {
		return nil, fmt.Errorf("decode letters: %w", err)
	}
	return ls, nil
}
