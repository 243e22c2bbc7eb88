package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/fleetsmith/macbook-catalog/internal/catalog"
)

// ListEnvelope is the success response body for device list endpoints.
type ListEnvelope struct {
	Success  bool             `json:"success"`
	Count    int              `json:"count"`
	Data     []catalog.Device `json:"data"`
	Metadata map[string]any   `json:"metadata,omitempty"`
}

// DeviceEnvelope is the success response body for a single-device lookup.
type DeviceEnvelope struct {
	Success bool           `json:"success"`
	Data    catalog.Device `json:"data"`
}

// runPipeline applies the query operators to a device slice in the fixed
// order: status filter → search → sort. Group selection happens before this,
// in the handler. Each operator is the identity when its parameter is absent,
// so the pipeline runs unconditionally.
func runPipeline(devices []catalog.Device, q url.Values) []catalog.Device {
	devices = catalog.FilterByStatus(devices, q.Get("status"))
	devices = catalog.Search(devices, q.Get("search"))
	devices = catalog.SortBy(devices, q.Get("sort_by"), q.Get("order"))
	return devices
}

// listMetadata builds the metadata block attached to list responses.
func (s *Server) listMetadata() map[string]any {
	return map[string]any{
		"support_status_definitions": s.store.StatusDefinitions(),
		"notes":                      s.store.Notes(),
	}
}

// handleListDevices returns all devices, with optional query filters.
//
// Query parameters:
//   - type: restrict to one family ("air" or "pro"; anything else means both)
//   - status: filter by exact support status (supported, vintage, obsolete)
//   - search: case-insensitive substring match on name, model ID, or status
//   - sort_by: order by field (model_name, model_id, release_date,
//     supported_end_date, support_status, latest_macos_supported)
//   - order: "asc" or "desc" (default desc)
func (s *Server) handleListDevices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	devices := s.store.Devices(catalog.ParseGroup(q.Get("type")))
	devices = runPipeline(devices, q)

	writeJSON(w, http.StatusOK, ListEnvelope{
		Success:  true,
		Count:    len(devices),
		Data:     devices,
		Metadata: s.listMetadata(),
	})
}

// handleListAir returns MacBook Air devices through the same pipeline,
// minus the type parameter.
func (s *Server) handleListAir(w http.ResponseWriter, r *http.Request) {
	s.listGroup(w, r, catalog.GroupAir)
}

// handleListPro returns MacBook Pro devices through the same pipeline.
func (s *Server) handleListPro(w http.ResponseWriter, r *http.Request) {
	s.listGroup(w, r, catalog.GroupPro)
}

// listGroup runs the pipeline over a fixed device family.
func (s *Server) listGroup(w http.ResponseWriter, r *http.Request, g catalog.Group) {
	devices := runPipeline(s.store.Devices(g), r.URL.Query())

	writeJSON(w, http.StatusOK, ListEnvelope{
		Success:  true,
		Count:    len(devices),
		Data:     devices,
		Metadata: s.listMetadata(),
	})
}

// handleGetDevice returns a single device by model ID.
func (s *Server) handleGetDevice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "modelID")

	dev, err := s.store.Lookup(id)
	if err != nil {
		if errors.Is(err, catalog.ErrModelNotFound) {
			writeNotFound(w, fmt.Sprintf("no device with model_id %q", id))
			return
		}
		writeInternalError(w, "failed to look up device")
		return
	}

	writeJSON(w, http.StatusOK, DeviceEnvelope{
		Success: true,
		Data:    *dev,
	})
}
