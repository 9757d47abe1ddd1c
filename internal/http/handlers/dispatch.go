package handlers

import (
	"net/http"

	"live-orders-dispatch/internal/domain"
	"live-orders-dispatch/internal/http/middleware/staffauth"
	"live-orders-dispatch/internal/logx"
)

// DispatchHandler serves the manual and automatic dispatch endpoints.
type DispatchHandler struct {
	logger logx.Logger
	uc     dispatchUsecase
}

// NewDispatchHandler wires a dispatch usecase into HTTP handlers.
func NewDispatchHandler(logger logx.Logger, uc dispatchUsecase) *DispatchHandler {
	return &DispatchHandler{logger: logx.OrNop(logger), uc: uc}
}

// Assign handles POST /api/orders/{id}/assign with {"driver_id": N}.
func (h *DispatchHandler) Assign(w http.ResponseWriter, r *http.Request) {
	orderID, err := idFromURL(r, "id")
	if err != nil {
		h.invalidOrder(w, r, domain.DispatchManual)
		return
	}
	var req assignRequest
	if !decodeJSON(h.logger, w, r, &req) {
		return
	}

	res, err := h.uc.AssignAndSend(r.Context(), staffauth.ActorFrom(r.Context()), orderID, req.DriverID)
	h.respond(w, r, res, err)
}

// AutoAssign handles POST /api/orders/{id}/auto-assign.
func (h *DispatchHandler) AutoAssign(w http.ResponseWriter, r *http.Request) {
	orderID, err := idFromURL(r, "id")
	if err != nil {
		h.invalidOrder(w, r, domain.DispatchAuto)
		return
	}

	res, err := h.uc.AutoAssignAndSend(r.Context(), staffauth.ActorFrom(r.Context()), orderID)
	h.respond(w, r, res, err)
}

func (h *DispatchHandler) respond(w http.ResponseWriter, r *http.Request, res domain.DispatchResult, err error) {
	if err != nil {
		writeInternal(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, outcomeStatus(res.Outcome, http.StatusOK), toDispatchResponse(res))
}

func (h *DispatchHandler) invalidOrder(w http.ResponseWriter, r *http.Request, mode domain.DispatchMode) {
	writeJSON(h.logger, w, r, http.StatusBadRequest, dispatchResponse{
		outcomeResponse: toOutcomeResponse(domain.Skipped(domain.ReasonInvalidOrderID)),
		Mode:            mode,
	})
}
