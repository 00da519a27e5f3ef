package registry

import (
	"encoding/json"
	"errors"
)

// merge applies a partial update on top of an existing entity by going
// through its JSON representation, so that only the supplied fields
// change. The id field is never merged.
func merge[T any](entity T, fields map[string]any) (T, error) {
	var merged T

	data, err := json.Marshal(entity)
	if err != nil {
		return merged, err
	}

	var m map[string]any
	err = json.Unmarshal(data, &m)
	if err != nil {
		return merged, err
	}

	for k, v := range fields {
		if k == "id" {
			continue
		}
		if v == nil {
			delete(m, k)
			continue
		}
		m[k] = v
	}

	data, err = json.Marshal(m)
	if err != nil {
		return merged, err
	}

	err = json.Unmarshal(data, &merged)
	if err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return merged, &ValidationError{Field: typeErr.Field, Reason: "wrong type"}
		}
		return merged, err
	}

	return merged, nil
}
