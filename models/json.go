package models

import (
	"bytes"
	"strconv"
)

// FlexID is an int64 identifier that also accepts JSON string encodings.
// Clients of the original API sent ids both ways.
type FlexID int64

func (f *FlexID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = 0
		return nil
	}
	data = bytes.Trim(data, `"`)
	if len(data) == 0 {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*f = FlexID(n)
	return nil
}

// FlexFloat is a float64 that also accepts JSON string encodings, mirroring
// the numeric coercion applied to form-style inputs like price and rating.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = 0
		return nil
	}
	data = bytes.Trim(data, `"`)
	if len(data) == 0 {
		*f = 0
		return nil
	}
	n, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*f = FlexFloat(n)
	return nil
}
