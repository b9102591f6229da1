package helpers

import (
	"fmt"
	"strconv"
)

// StringToUint parses a path id. Anything that is not a base-10 unsigned
// integer is an error, so bad ids surface as "not found" rather than a
// database lookup with a zero id.
func StringToUint(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}

// ParseBoolean is a total parser for the boolean-like values a JSON body may
// carry for flags such as isActive. Accepted: bool, the strings "true",
// "false", "1", "0", and the JSON numbers 0 and 1. Everything else is
// rejected, never coerced.
func ParseBoolean(value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		switch v {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		}
		return false, fmt.Errorf("invalid boolean string: %q", v)
	case float64:
		switch v {
		case 1:
			return true, nil
		case 0:
			return false, nil
		}
		return false, fmt.Errorf("invalid boolean number: %v", v)
	default:
		return false, fmt.Errorf("invalid boolean value of type %T", value)
	}
}
