package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
)

const maxBodyBytes = 1 << 20

// DecodeJSON reads a single JSON object into v. Fields v does not declare
// are ignored; known fields must have the declared type.
func DecodeJSON(body io.Reader, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain a single JSON object")
	}
	return nil
}

// TypeError reports the json field and expected type of a decode error
// caused by a value of the wrong type.
func TypeError(err error) (field, want string, ok bool) {
	var ute *json.UnmarshalTypeError
	if !errors.As(err, &ute) || ute.Field == "" {
		return "", "", false
	}
	return ute.Field, ute.Type.String(), true
}

// ParseID parses a positive integer path id.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
