package tools

import (
	"fmt"
	"strings"
)

// Validation helpers shared by the per-operation validators. Each operation
// hand-writes its Validate func from these; violations must surface before
// any network access, so the helpers only inspect the raw argument map.

// requirePositiveInt checks that args[key] is present and a positive whole
// number.
func requirePositiveInt(args map[string]any, key string) error {
	v, ok := args[key]
	if !ok {
		return fmt.Errorf("%s is required", key)
	}
	n, ok := asInt(v)
	if !ok || n <= 0 {
		return fmt.Errorf("%s must be a positive integer", key)
	}
	return nil
}

// requireString checks that args[key] is present and a non-empty string.
func requireString(args map[string]any, key string) error {
	v, ok := args[key]
	if !ok {
		return fmt.Errorf("%s is required", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return fmt.Errorf("%s must be a non-empty string", key)
	}
	return nil
}

// requirePositiveIntList checks that args[key] is a non-empty list of
// positive whole numbers.
func requirePositiveIntList(args map[string]any, key string) error {
	v, ok := args[key]
	if !ok {
		return fmt.Errorf("%s is required", key)
	}

	items, ok := v.([]any)
	if !ok {
		if native, isNative := v.([]int); isNative {
			if len(native) == 0 {
				return fmt.Errorf("%s must be a non-empty list", key)
			}
			for _, n := range native {
				if n <= 0 {
					return fmt.Errorf("all %s must be positive integers", key)
				}
			}
			return nil
		}
		return fmt.Errorf("%s must be a non-empty list", key)
	}

	if len(items) == 0 {
		return fmt.Errorf("%s must be a non-empty list", key)
	}
	for _, item := range items {
		n, ok := asInt(item)
		if !ok || n <= 0 {
			return fmt.Errorf("all %s must be positive integers", key)
		}
	}
	return nil
}

// optionalEnum checks that args[key], when present, is one of the allowed
// string values.
func optionalEnum(args map[string]any, key string, allowed ...string) error {
	v, ok := args[key]
	if !ok {
		return nil
	}
	s, isString := v.(string)
	if isString {
		for _, a := range allowed {
			if s == a {
				return nil
			}
		}
	}
	return fmt.Errorf("%s must be one of: %s", key, strings.Join(allowed, ", "))
}

// optionalStringList checks that args[key], when present, is a list of
// strings.
func optionalStringList(args map[string]any, key string) error {
	v, ok := args[key]
	if !ok {
		return nil
	}
	switch items := v.(type) {
	case []string:
		return nil
	case []any:
		for _, item := range items {
			if _, ok := item.(string); !ok {
				return fmt.Errorf("%s must be a list of strings", key)
			}
		}
		return nil
	default:
		return fmt.Errorf("%s must be a list", key)
	}
}

// optionalPerPage checks that args["perPage"], when present, is a whole
// number between 1 and 100.
func optionalPerPage(args map[string]any) error {
	return optionalPerPageKey(args, "perPage")
}

// optionalPerPageKey is optionalPerPage for operations that take the page
// size under a different argument name.
func optionalPerPageKey(args map[string]any, key string) error {
	v, ok := args[key]
	if !ok {
		return nil
	}
	n, ok := asInt(v)
	if !ok || n < 1 || n > 100 {
		return fmt.Errorf("%s must be an integer between 1 and 100", key)
	}
	return nil
}
