package utils

import (
	"fmt"
	"strconv"
)

// ParseID converts a path parameter to a positive int64 id
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", value)
	}

	if id < 1 {
		return 0, fmt.Errorf("invalid id %d", id)
	}

	return id, nil
}
