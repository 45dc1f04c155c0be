// Package tools implements the Canvas tool catalogue: the operation registry,
// per-call invocation context, and the dispatcher that turns raw tool calls
// into uniform result/error envelopes.
package tools

import (
	"context"
	"fmt"
)

// ArgType describes an argument's JSON type for schema generation and
// tool listings. Validation is per-operation and hand-written; ArgType is
// metadata only.
type ArgType string

const (
	ArgString     ArgType = "string"
	ArgInt        ArgType = "integer"
	ArgBool       ArgType = "boolean"
	ArgStringList ArgType = "string[]"
	ArgIntList    ArgType = "integer[]"
)

// ArgSpec describes one argument of an operation.
type ArgSpec struct {
	Name        string  `json:"name"`
	Type        ArgType `json:"type"`
	Required    bool    `json:"required"`
	Description string  `json:"description"`
}

// Operation is one invocable tool: a unique name, human-readable metadata,
// an argument validator run before any network access, and an executor.
// Operations are created once at startup and never mutated.
type Operation struct {
	Name        string
	Description string
	Category    string
	Args        []ArgSpec

	// Validate checks raw arguments before execution. A nil Validate accepts
	// any arguments.
	Validate func(args map[string]any) error

	// Execute runs the operation with a per-call invocation context.
	Execute func(ctx context.Context, tc *Context) (any, error)
}

// Info is the listing form of an operation exposed by /tools.
type Info struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Args        []ArgSpec `json:"args,omitempty"`
}

// Registry maps unique operation names to operations, indexed additionally by
// category. It is populated once at startup and read-only afterwards; it has
// no internal locking.
type Registry struct {
	ops        map[string]*Operation
	order      []string
	byCategory map[string][]*Operation
	catOrder   []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		ops:        make(map[string]*Operation),
		byCategory: make(map[string][]*Operation),
	}
}

// Register adds an operation. It rejects an empty name or a name already
// present; uniqueness is enforced here, at startup, not at dispatch time.
func (r *Registry) Register(op *Operation) error {
	if op == nil || op.Name == "" {
		return fmt.Errorf("operation must define a name")
	}
	if _, exists := r.ops[op.Name]; exists {
		return fmt.Errorf("tool %q is already registered", op.Name)
	}

	r.ops[op.Name] = op
	r.order = append(r.order, op.Name)

	category := op.Category
	if category == "" {
		category = "general"
	}
	if _, seen := r.byCategory[category]; !seen {
		r.catOrder = append(r.catOrder, category)
	}
	r.byCategory[category] = append(r.byCategory[category], op)

	return nil
}

// MustRegister is Register but panics on failure. Used for the static
// catalogue, where a registration error is a programming mistake.
func (r *Registry) MustRegister(op *Operation) {
	if err := r.Register(op); err != nil {
		panic(err)
	}
}

// Get returns the operation registered under name.
func (r *Registry) Get(name string) (*Operation, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// All returns every registered operation in registration order.
func (r *Registry) All() []*Operation {
	ops := make([]*Operation, 0, len(r.order))
	for _, name := range r.order {
		ops = append(ops, r.ops[name])
	}
	return ops
}

// Names returns all registered operation names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Categories returns all category labels in first-registration order.
func (r *Registry) Categories() []string {
	cats := make([]string, len(r.catOrder))
	copy(cats, r.catOrder)
	return cats
}

// ByCategory returns the operations registered under a category.
func (r *Registry) ByCategory(category string) []*Operation {
	return r.byCategory[category]
}

// List returns listing metadata for every operation in registration order.
func (r *Registry) List() []Info {
	infos := make([]Info, 0, len(r.order))
	for _, op := range r.All() {
		infos = append(infos, Info{
			Name:        op.Name,
			Description: op.Description,
			Category:    op.Category,
			Args:        op.Args,
		})
	}
	return infos
}

// NewDefaultRegistry builds the full Canvas tool catalogue.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	registerCourseTools(r)
	registerAnnouncementTools(r)
	registerAssignmentTools(r)
	registerEnrollmentTools(r)
	registerQuizTools(r)
	registerDiscussionTools(r)
	return r
}
