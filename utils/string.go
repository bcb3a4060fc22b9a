package utils

import (
	"strconv"
	"strings"

	"github.com/leisurelyrcxf/lazyselect/errors"
)

func TrimmedSplit(str string, sep string) []string {
	parts := strings.Split(str, sep)
	trimmedParts := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmedPart := strings.TrimSpace(part); trimmedPart != "" {
			trimmedParts = append(trimmedParts, trimmedPart)
		}
	}
	return trimmedParts
}

// ParseIntList parses a comma separated list such as "10000, 20000".
func ParseIntList(str string) ([]int, error) {
	parts := TrimmedSplit(str, ",")
	ints := make([]int, 0, len(parts))
	for _, part := range parts {
		i, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.Annotatef(errors.ErrInvalidArgument, "'%s' is not an integer", part)
		}
		ints = append(ints, i)
	}
	return ints, nil
}
