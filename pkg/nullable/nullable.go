package nullable

import (
	"bytes"
	"encoding/json"
)

// Value tracks whether a JSON field was present, and if so whether it was null.
// Set is false when the key was absent from the document.
type Value[T any] struct {
	Set   bool
	Value *T
}

func Of[T any](v T) Value[T] {
	return Value[T]{Set: true, Value: &v}
}

func Null[T any]() Value[T] {
	return Value[T]{Set: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Value[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}

	if bytes.Equal(trimmed, []byte("null")) {
		n.Set = true
		n.Value = nil
		return nil
	}

	var parsed T
	if err := json.Unmarshal(trimmed, &parsed); err != nil {
		return err
	}
	n.Set = true
	n.Value = &parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n Value[T]) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

func (n Value[T]) IsNull() bool {
	return n.Set && n.Value == nil
}
