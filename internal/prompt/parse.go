package prompt

import (
	"strconv"
	"strings"
)

// Uint8 parses a decimal unsigned 8-bit literal. One leading '+' is allowed.
func Uint8(s string) (uint8, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 8)
	if err != nil {
		return 0, err
	}
	return uint8(n), nil
}
