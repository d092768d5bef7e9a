package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

var ErrMalformedRecord = errors.New("malformed record")

// opaqueID accepts an identifier transported either as a JSON number or as a
// JSON string and keeps it as its decimal/string form.
type opaqueID string

func (o *opaqueID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*o = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*o = opaqueID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("%w: id %s", ErrMalformedRecord, string(b))
	}
	*o = opaqueID(n.String())
	return nil
}

func (o opaqueID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseUint(string(o), 10, 64); err == nil {
		return []byte(o), nil
	}
	return json.Marshal(string(o))
}
