package dto

import "encoding/json"

// Nullable wraps an update-payload field so that an omitted field, an explicit
// JSON null, and a concrete value are three distinguishable states. A field
// that never appears in the payload keeps the zero value (Present false);
// UnmarshalJSON is only invoked for keys that are present.
type Nullable[T any] struct {
	Present bool
	Valid   bool
	Value   T
}

// NullableOf wraps a concrete value (used by tests and internal callers).
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Present: true, Valid: true, Value: v}
}

// NullableNull is a present-but-null field.
func NullableNull[T any]() Nullable[T] {
	return Nullable[T]{Present: true}
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Present = true
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}
