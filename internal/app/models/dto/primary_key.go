package dto

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
)

// PrimaryKey is a related-row id in a request body. It accepts 7 and "7".
type PrimaryKey int64

// UnmarshalJSON decodes a JSON integer or a string holding one.
func (k *PrimaryKey) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	received := "number"
	if strings.HasPrefix(raw, `"`) {
		received = "string"
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	} else if raw == "null" {
		return nil
	} else if raw == "true" || raw == "false" {
		received = "bool"
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return &json.UnmarshalTypeError{Value: received, Type: reflect.TypeOf(*k)}
	}
	*k = PrimaryKey(id)
	return nil
}

// Int64 returns the id as stored
func (k PrimaryKey) Int64() int64 {
	return int64(k)
}
