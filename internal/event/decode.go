package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload as T. In-process events already carry T
// (or *T); anything else, such as a map replayed from the dead-letter file,
// is converted through JSON.
func DecodePayload[T any](input interface{}) (T, error) {
	var zero T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return zero, fmt.Errorf("nil %T payload", v)
		}
		return *v, nil
	case json.RawMessage:
		return decodeJSON[T](v)
	case []byte:
		return decodeJSON[T](v)
	case nil:
		return zero, fmt.Errorf("empty payload, want %T", zero)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return zero, err
	}
	return decodeJSON[T](data)
}

func decodeJSON[T any](data []byte) (T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode %T payload: %w", out, err)
	}
	return out, nil
}
