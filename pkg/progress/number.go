package progress

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

// Number is a float that tolerates malformed input: anything that is not a
// finite number, or a string holding one, decodes to zero.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number(ParseNumber(string(bytes.Trim(data, `"`))))
	return nil
}

func (n Number) Float() float64 {
	return float64(n)
}

func (n Number) Int() int {
	return int(n)
}

// ParseNumber coerces s to a float, falling back to zero.
func ParseNumber(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
