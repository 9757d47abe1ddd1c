package handlers

import (
	"net/http"

	"live-orders-dispatch/internal/logx"
)

// OrdersHandler serves the live-operations view.
type OrdersHandler struct {
	logger logx.Logger
	uc     liveOrdersUsecase
}

// NewOrdersHandler wires a live orders usecase into HTTP handlers.
func NewOrdersHandler(logger logx.Logger, uc liveOrdersUsecase) *OrdersHandler {
	return &OrdersHandler{logger: logx.OrNop(logger), uc: uc}
}

// Live handles GET /api/orders/live.
func (h *OrdersHandler) Live(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.Live(r.Context())
	if err != nil {
		writeInternal(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toLiveOrderDTOs(list))
}

// Board handles GET /api/board: live orders plus the driver roster.
func (h *OrdersHandler) Board(w http.ResponseWriter, r *http.Request) {
	b, err := h.uc.Board(r.Context())
	if err != nil {
		writeInternal(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, boardResponse{
		Orders:  toLiveOrderDTOs(b.Orders),
		Drivers: toDriverDTOs(b.Drivers),
	})
}
