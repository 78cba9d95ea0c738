package domain

import (
	"strconv"
	"strings"
)

// ParseChainID validates an operator-supplied chain identifier. A valid
// identifier is present, parses as a base-10 integer and is greater than zero.
// Absence and malformation are distinct failure causes.
func ParseChainID(raw string) (uint64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &ChainIDMissingError{}
	}

	// strconv.ParseUint accepts a leading "+", which we don't.
	if strings.HasPrefix(raw, "+") {
		return 0, &ChainIDInvalidError{Raw: raw}
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, &ChainIDInvalidError{Raw: raw}
	}

	return id, nil
}
