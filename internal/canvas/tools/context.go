package tools

import (
	"github.com/openlms/canvas-mcp/internal/canvas/api"
)

// Context is the per-call invocation bundle: the raw arguments plus a Canvas
// client bound to one (base URL, token) pair. The client is constructed
// eagerly at context creation and owned exclusively by this context for its
// lifetime; contexts are created per tool call and discarded afterwards.
type Context struct {
	Args map[string]any

	client *api.Client
}

// NewContext creates an invocation context bound to the given credentials.
func NewContext(apiURL, token string, args map[string]any, opts ...api.Option) *Context {
	if args == nil {
		args = make(map[string]any)
	}
	return &Context{
		Args:   args,
		client: api.NewClient(apiURL, token, opts...),
	}
}

// Client returns the Canvas API client bound to this context.
func (c *Context) Client() *api.Client {
	return c.client
}

// String returns a string argument.
func (c *Context) String(key string) (string, bool) {
	s, ok := c.Args[key].(string)
	return s, ok
}

// StringOr returns a string argument or the default when absent.
func (c *Context) StringOr(key, def string) string {
	if s, ok := c.String(key); ok {
		return s
	}
	return def
}

// Int returns an integer argument. JSON numbers arrive as float64, so whole
// floats are accepted alongside native ints.
func (c *Context) Int(key string) (int, bool) {
	return asInt(c.Args[key])
}

// IntOr returns an integer argument or the default when absent.
func (c *Context) IntOr(key string, def int) int {
	if n, ok := c.Int(key); ok {
		return n
	}
	return def
}

// Bool returns a boolean argument.
func (c *Context) Bool(key string) (bool, bool) {
	b, ok := c.Args[key].(bool)
	return b, ok
}

// BoolOr returns a boolean argument or the default when absent.
func (c *Context) BoolOr(key string, def bool) bool {
	if b, ok := c.Bool(key); ok {
		return b
	}
	return def
}

// StringSlice returns a list argument coerced to []string. Accepts []string
// directly or []any from decoded JSON; non-string elements are skipped.
func (c *Context) StringSlice(key string) []string {
	switch v := c.Args[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// IntSlice returns a list argument coerced to []int, skipping elements that
// are not whole numbers.
func (c *Context) IntSlice(key string) []int {
	switch v := c.Args[key].(type) {
	case []int:
		return v
	case []any:
		out := make([]int, 0, len(v))
		for _, item := range v {
			if n, ok := asInt(item); ok {
				out = append(out, n)
			}
		}
		return out
	default:
		return nil
	}
}

// asInt coerces JSON number representations to int. Fractional floats are
// rejected.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
		return 0, false
	default:
		return 0, false
	}
}
