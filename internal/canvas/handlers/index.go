package handlers

import (
	"net/http"

	"github.com/openlms/canvas-mcp/internal/canvas/common"
)

// IndexHandler serves the service descriptor at the root path.
type IndexHandler struct {
	serviceName string
}

// NewIndexHandler creates a new index handler.
func NewIndexHandler(serviceName string) *IndexHandler {
	return &IndexHandler{serviceName: serviceName}
}

// ServeHTTP handles GET /.
func (h *IndexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteError(w, http.StatusNotFound, "The requested endpoint does not exist")
		return
	}
	if !RequireMethod(w, r, "GET") {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"service": h.serviceName,
		"version": common.GetVersion(),
		"endpoints": []string{
			"/health",
			"/version",
			"/tools",
			"/tools/call",
			"/debug/tools/{name}",
			"/debug/registry",
		},
	})
}
