package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/openlms/canvas-mcp/internal/canvas/api"
	"github.com/openlms/canvas-mcp/internal/canvas/common"
)

// Call is one inbound tool invocation: the operation name, its raw
// arguments, and the Canvas credentials to bind the invocation to.
type Call struct {
	Tool           string         `json:"tool"`
	Args           map[string]any `json:"args"`
	CanvasAPIURL   string         `json:"canvasApiUrl"`
	CanvasAPIToken string         `json:"canvasApiToken"`
}

// Envelope is the uniform response wrapper: exactly one of Result or Error
// is non-null, never both, never neither.
type Envelope struct {
	Result any     `json:"result"`
	Error  *string `json:"error"`
}

func errorEnvelope(message string) Envelope {
	return Envelope{Error: &message}
}

// Dispatcher resolves tool calls against a registry, validates arguments,
// executes operations, and wraps every outcome into an Envelope. It is the
// single point where classified faults become error strings; no fault ever
// escapes Dispatch.
type Dispatcher struct {
	registry   *Registry
	logger     *common.Logger
	clientOpts []api.Option
}

// NewDispatcher creates a dispatcher over the given registry. clientOpts are
// applied to the Canvas client constructed for each invocation context
// (timeout, per-page default, debug tracing).
func NewDispatcher(registry *Registry, logger *common.Logger, clientOpts ...api.Option) *Dispatcher {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Dispatcher{
		registry:   registry,
		logger:     logger,
		clientOpts: clientOpts,
	}
}

// Registry returns the dispatcher's registry, for tool listings.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Dispatch executes one tool call and returns its envelope. The sequence is
// lookup, argument validation (before any network access), context
// construction, execution. Executor panics are recovered into the envelope.
func (d *Dispatcher) Dispatch(ctx context.Context, call Call) (env Envelope) {
	logger := d.logger.WithCorrelationId(uuid.New().String())
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Str("tool", call.Tool).Str("panic", fmt.Sprintf("%v", r)).Msg("tool panicked")
			env = errorEnvelope(fmt.Sprintf("Unexpected error: %v", r))
		}
	}()

	op, ok := d.registry.Get(call.Tool)
	if !ok {
		logger.Warn().Str("tool", call.Tool).Msg("unknown tool")
		return errorEnvelope(fmt.Sprintf("Tool '%s' not found. Available tools: %s",
			call.Tool, strings.Join(d.registry.Names(), ", ")))
	}

	args := call.Args
	if args == nil {
		args = make(map[string]any)
	}

	if op.Validate != nil {
		if err := op.Validate(args); err != nil {
			logger.Warn().Str("tool", call.Tool).Err(err).Msg("invalid arguments")
			return errorEnvelope(fmt.Sprintf("Invalid arguments: %v", err))
		}
	}

	opts := append([]api.Option{api.WithLogger(logger)}, d.clientOpts...)
	tc := NewContext(call.CanvasAPIURL, call.CanvasAPIToken, args, opts...)

	result, err := op.Execute(ctx, tc)
	if err != nil {
		logger.Warn().Str("tool", call.Tool).Err(err).Dur("duration", time.Since(start)).Msg("tool failed")
		return errorEnvelope(formatToolError(err))
	}

	logger.Debug().Str("tool", call.Tool).Dur("duration", time.Since(start)).Msg("tool succeeded")
	return Envelope{Result: result}
}

// formatToolError renders an executor error as the envelope's error string.
// Classified Canvas faults keep their status code; anything else is reported
// as unexpected.
func formatToolError(err error) string {
	if apiErr, ok := api.AsError(err); ok {
		status := "Unknown"
		if apiErr.StatusCode != 0 {
			status = fmt.Sprintf("%d", apiErr.StatusCode)
		}
		return fmt.Sprintf("Canvas API Error [%s]: %s", status, apiErr.Message)
	}
	return fmt.Sprintf("Unexpected error: %v", err)
}
