package v1handler

import (
	"net/http"
	"time"
	"tracker/internal/tracker"
	"tracker/pkg/domain"
	"tracker/pkg/serrors"

	"github.com/go-chi/chi/v5"
)

// IdentifyResponse lists the carriers whose formats accept a tracking number.
type IdentifyResponse struct {
	TrackingNumber string           `json:"trackingNumber"`
	Carriers       []domain.Carrier `json:"carriers"`
}

// Track returns the normalized tracking history of a shipment.
//
//	GET /track/{number}?carrier=ups&minDate=2024-01-01T00:00:00Z
func (h Handler) Track(w http.ResponseWriter, r *http.Request) {
	req := tracker.Request{
		TrackingNumber: chi.URLParam(r, "number"),
		Carrier:        r.URL.Query().Get("carrier"),
	}
	if v := r.URL.Query().Get("minDate"); v != "" {
		minDate, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "minDate must be an RFC 3339 timestamp"))

			return
		}
		req.MinDate = minDate
	}

	res, err := h.deps.Tracker.Track(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, res)
}

// Identify reports which carriers could have issued a tracking number.
//
//	GET /identify/{number}
func (h Handler) Identify(w http.ResponseWriter, r *http.Request) {
	number := domain.NormalizeTrackingNumber(chi.URLParam(r, "number"))
	carriers := h.deps.Tracker.Identify(number)
	if carriers == nil {
		carriers = []domain.Carrier{}
	}

	writeJSON(r.Context(), w, http.StatusOK, IdentifyResponse{TrackingNumber: number, Carriers: carriers})
}
