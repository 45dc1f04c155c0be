package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/openlms/canvas-mcp/internal/canvas/common"
	"github.com/openlms/canvas-mcp/internal/canvas/tools"
)

// ToolsHandler exposes the tool catalogue and dispatch endpoints.
type ToolsHandler struct {
	dispatcher *tools.Dispatcher
	logger     *common.Logger
}

// NewToolsHandler creates a handler over the given dispatcher.
func NewToolsHandler(dispatcher *tools.Dispatcher, logger *common.Logger) *ToolsHandler {
	return &ToolsHandler{dispatcher: dispatcher, logger: logger}
}

// List handles GET /tools: the full catalogue grouped by category.
func (h *ToolsHandler) List(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	registry := h.dispatcher.Registry()

	byCategory := make(map[string][]tools.Info)
	for _, category := range registry.Categories() {
		infos := make([]tools.Info, 0)
		for _, op := range registry.ByCategory(category) {
			infos = append(infos, tools.Info{
				Name:        op.Name,
				Description: op.Description,
				Category:    op.Category,
				Args:        op.Args,
			})
		}
		byCategory[category] = infos
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"tools":       registry.List(),
		"total":       len(registry.Names()),
		"categories":  registry.Categories(),
		"by_category": byCategory,
	})
}

// Call handles POST /tools/call: decode, dispatch, envelope. Dispatch never
// fails, so every decodable request answers 200 with a result/error envelope.
func (h *ToolsHandler) Call(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var call tools.Call
	if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if call.Tool == "" {
		WriteError(w, http.StatusBadRequest, "Missing required field: tool")
		return
	}

	env := h.dispatcher.Dispatch(r.Context(), call)
	WriteJSON(w, http.StatusOK, env)
}

// Inspect handles GET /debug/tools/{name}: one tool's full metadata.
func (h *ToolsHandler) Inspect(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/debug/tools/")
	if name == "" || strings.Contains(name, "/") {
		WriteError(w, http.StatusNotFound, "Tool not found")
		return
	}

	op, ok := h.dispatcher.Registry().Get(name)
	if !ok {
		WriteError(w, http.StatusNotFound, "Tool not found: "+name)
		return
	}

	WriteJSON(w, http.StatusOK, tools.Info{
		Name:        op.Name,
		Description: op.Description,
		Category:    op.Category,
		Args:        op.Args,
	})
}

// Registry handles GET /debug/registry: registration-order names and
// categories, for diagnosing catalogue wiring.
func (h *ToolsHandler) Registry(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	registry := h.dispatcher.Registry()
	WriteJSON(w, http.StatusOK, map[string]any{
		"names":      registry.Names(),
		"categories": registry.Categories(),
		"total":      len(registry.Names()),
	})
}
