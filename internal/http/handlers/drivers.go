package handlers

import (
	"net/http"
	"strings"

	"live-orders-dispatch/internal/domain"
	"live-orders-dispatch/internal/http/middleware/staffauth"
	"live-orders-dispatch/internal/logx"
)

// DriverHandler serves the driver directory endpoints.
type DriverHandler struct {
	logger logx.Logger
	uc     directoryUsecase
}

// NewDriverHandler wires a directory usecase into HTTP handlers.
func NewDriverHandler(logger logx.Logger, uc directoryUsecase) *DriverHandler {
	return &DriverHandler{logger: logx.OrNop(logger), uc: uc}
}

// List handles GET /api/drivers.
func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.ListDriversWithAreas(r.Context())
	if err != nil {
		writeInternal(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toDriverDTOs(list))
}

// Create handles POST /api/drivers.
func (h *DriverHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDriverRequest
	if !decodeJSON(h.logger, w, r, &req) {
		return
	}

	id, out, err := h.uc.AddDriver(r.Context(), staffauth.ActorFrom(r.Context()), req.Name, req.Phone)
	if err != nil {
		writeInternal(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, outcomeStatus(out, http.StatusCreated), createDriverResponse{
		outcomeResponse: toOutcomeResponse(out),
		ID:              id,
	})
}

// Areas handles GET /api/drivers/{id}/areas.
func (h *DriverHandler) Areas(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	d, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeInternal(h.logger, w, r, err)
		return
	}
	if d == nil {
		writeError(h.logger, w, r, http.StatusNotFound, "driver not found")
		return
	}

	areas, err := h.uc.AreasFor(r.Context(), id)
	if err != nil {
		writeInternal(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, areasResponse{DriverID: id, Areas: areas})
}

// AddAreas handles POST /api/drivers/{id}/areas. The body carries either a list or
// the comma-separated form; both are merged.
func (h *DriverHandler) AddAreas(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeJSON(h.logger, w, r, http.StatusBadRequest, toOutcomeResponse(domain.Skipped(domain.ReasonInvalidDriverID)))
		return
	}
	var req addAreasRequest
	if !decodeJSON(h.logger, w, r, &req) {
		return
	}

	areas := req.Areas
	if strings.TrimSpace(req.AreasCSV) != "" {
		areas = append(areas, domain.ParseAreaList(req.AreasCSV)...)
	}

	out, err := h.uc.SetAreas(r.Context(), staffauth.ActorFrom(r.Context()), id, areas)
	if err != nil {
		writeInternal(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, outcomeStatus(out, http.StatusOK), toOutcomeResponse(out))
}

// Toggle handles POST /api/drivers/{id}/toggle.
func (h *DriverHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeJSON(h.logger, w, r, http.StatusBadRequest, toOutcomeResponse(domain.Skipped(domain.ReasonInvalidDriverID)))
		return
	}

	out, err := h.uc.ToggleActive(r.Context(), staffauth.ActorFrom(r.Context()), id)
	if err != nil {
		writeInternal(h.logger, w, r, err)
		return
	}

	resp := toggleResponse{outcomeResponse: toOutcomeResponse(out)}
	if out.IsApplied() {
		// best effort: the flip is already stored
		if d, err := h.uc.Get(r.Context(), id); err == nil && d != nil {
			active := d.Active
			resp.Active = &active
		}
	}
	writeJSON(h.logger, w, r, outcomeStatus(out, http.StatusOK), resp)
}
