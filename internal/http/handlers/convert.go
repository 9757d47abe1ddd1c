package handlers

import "live-orders-dispatch/internal/domain"

func toOutcomeResponse(out domain.Outcome) outcomeResponse {
	return outcomeResponse{Status: out.Status, Reason: out.Reason}
}

func toDriverDTO(d domain.DriverWithAreas) driverDTO {
	areas := d.Areas
	if areas == nil {
		areas = []string{}
	}
	return driverDTO{
		ID:        d.ID,
		Name:      d.Name,
		Phone:     d.Phone,
		Active:    d.Active,
		Areas:     areas,
		CreatedAt: d.CreatedAt,
	}
}

func toDriverDTOs(list []domain.DriverWithAreas) []driverDTO {
	out := make([]driverDTO, len(list))
	for i, d := range list {
		out[i] = toDriverDTO(d)
	}
	return out
}

func toDispatchResponse(res domain.DispatchResult) dispatchResponse {
	resp := dispatchResponse{
		outcomeResponse: toOutcomeResponse(res.Outcome),
		AttemptID:       res.AttemptID,
		Mode:            res.Mode,
		OrderID:         res.OrderID,
		DriverID:        res.DriverID,
	}
	if !res.NotifiedAt.IsZero() {
		at := res.NotifiedAt
		resp.NotifiedAt = &at
	}
	return resp
}

func toLiveOrderDTO(o domain.LiveOrder) liveOrderDTO {
	return liveOrderDTO{
		ID:         o.ID,
		Address:    o.AddressLine1,
		Postcode:   o.Postcode,
		Area:       domain.OutwardCode(o.Postcode),
		Total:      domain.FormatMoney(o.TotalMinor),
		TotalMinor: o.TotalMinor,
		Notes:      o.Notes,
		Status:     o.DeliveryStatus,
		DriverID:   o.AssignedDriverID,
		DriverName: o.DriverName,
		NotifiedAt: o.NotifiedAt,
		CreatedAt:  o.CreatedAt,
	}
}

func toLiveOrderDTOs(list []domain.LiveOrder) []liveOrderDTO {
	out := make([]liveOrderDTO, len(list))
	for i, o := range list {
		out[i] = toLiveOrderDTO(o)
	}
	return out
}
