package api

import "net/http"

// handleSupportStatus returns the status-definitions metadata verbatim.
func (s *Server) handleSupportStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    s.store.StatusDefinitions(),
	})
}

// endpointDoc describes one route for the machine-readable docs endpoint.
type endpointDoc struct {
	Method      string   `json:"method"`
	Path        string   `json:"path"`
	Description string   `json:"description"`
	QueryParams []string `json:"query_params,omitempty"`
}

// listQueryParams are the parameters understood by every list endpoint.
var listQueryParams = []string{"status", "search", "sort_by", "order"}

// handleDocs returns a static machine-readable description of the API.
func (s *Server) handleDocs(w http.ResponseWriter, _ *http.Request) {
	endpoints := []endpointDoc{
		{
			Method:      http.MethodGet,
			Path:        "/health",
			Description: "Liveness probe: status, timestamp, and version.",
		},
		{
			Method:      http.MethodGet,
			Path:        "/api/devices",
			Description: "List all MacBook models with optional filter, search, and sort.",
			QueryParams: append([]string{"type"}, listQueryParams...),
		},
		{
			Method:      http.MethodGet,
			Path:        "/api/devices/macbook-air",
			Description: "List MacBook Air models with optional filter, search, and sort.",
			QueryParams: listQueryParams,
		},
		{
			Method:      http.MethodGet,
			Path:        "/api/devices/macbook-pro",
			Description: "List MacBook Pro models with optional filter, search, and sort.",
			QueryParams: listQueryParams,
		},
		{
			Method:      http.MethodGet,
			Path:        "/api/devices/{modelID}",
			Description: "Look up a single model by its model identifier, e.g. MacBookAir10,1.",
		},
		{
			Method:      http.MethodGet,
			Path:        "/api/support-status",
			Description: "Support status definitions (supported, vintage, obsolete).",
		},
		{
			Method:      http.MethodGet,
			Path:        "/api/docs",
			Description: "This document.",
		},
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data": map[string]any{
			"service":     "macbook-catalog",
			"version":     s.version,
			"description": "Read-only catalog of MacBook hardware models (2010-2025) and their support lifecycle.",
			"endpoints":   endpoints,
			"sort_fields": []string{
				"model_name", "model_id", "release_date",
				"supported_end_date", "support_status", "latest_macos_supported",
			},
		},
	})
}

// handleRoot returns the service banner with links into the API.
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data": map[string]any{
			"service":      "macbook-catalog",
			"version":      s.version,
			"device_count": s.store.Count(),
			"links": map[string]string{
				"devices":        "/api/devices",
				"macbook_air":    "/api/devices/macbook-air",
				"macbook_pro":    "/api/devices/macbook-pro",
				"support_status": "/api/support-status",
				"docs":           "/api/docs",
				"health":         "/health",
			},
		},
	})
}
