package utils

import (
	"fmt"
	"strconv"
)

// ParseID parses a positive integer row identifier. Ids are SERIAL columns, so
// anything beyond the int4 range is rejected rather than sent to the store.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be positive", s)
	}
	return id, nil
}
