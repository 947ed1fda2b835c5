package cli

import (
	"fmt"
	"strconv"
)

// ParseValues parses positional arguments into byte counts. Arguments are
// plain base-10 unsigned integers; humanized inputs like "1.5MB" are
// deliberately not accepted.
func ParseValues(args []string) ([]uint64, error) {
	values := make([]uint64, 0, len(args))
	for _, raw := range args {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid byte count: %q (expected a non-negative integer)", raw)
		}
		values = append(values, v)
	}
	return values, nil
}
