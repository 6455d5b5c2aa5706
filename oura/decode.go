package oura

import (
	"bytes"
	"errors"

	go_json "github.com/goccy/go-json"
)

var errInvalidJSON = errors.New("response body is not valid JSON")

// fieldValidator is implemented by domain types that require fields to be
// present after decoding. The returned map is field name to reason; an
// empty map means the value is valid.
type fieldValidator interface {
	validateFields() map[string]string
}

// decodeStrict unmarshals data into v, rejecting unknown fields, then
// runs the type's field validation if it declares one. Every failure is a
// *DecodeError.
func decodeStrict(data go_json.RawMessage, v any) error {
	dec := go_json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &DecodeError{Cause: err}
	}
	return validateFields(v)
}

func validateFields(v any) error {
	fv, ok := v.(fieldValidator)
	if !ok {
		return nil
	}
	if fields := fv.validateFields(); len(fields) > 0 {
		return &DecodeError{Fields: fields}
	}
	return nil
}
