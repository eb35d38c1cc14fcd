package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is a numeric request field that accepts a JSON number or a numeric
// string ("500"). Anything else fails decoding instead of silently becoming zero.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || !finite(f) {
			return fmt.Errorf("%q is not a number", s)
		}
		*n = Number(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil || !finite(f) {
		return fmt.Errorf("%s is not a number", data)
	}
	*n = Number(f)
	return nil
}

// finite rejects the Inf and NaN spellings ParseFloat accepts.
func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Float returns a pointer to the value as float64, preserving absence.
func (n *Number) Float() *float64 {
	if n == nil {
		return nil
	}
	f := float64(*n)
	return &f
}
