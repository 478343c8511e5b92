package routes_generate_post

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"routeplanner/internal/generated/dto"
	"routeplanner/internal/service/routeplan"
	"routeplanner/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP triggers route generation. POST carries optional explicit
// parameters; a bare GET (the cron trigger) infers the wave from the clock.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := h.parseParams(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.GenerateRoutes(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, routeplan.ErrInvalidDate),
			errors.Is(err, routeplan.ErrInvalidTimeSlot):
			w.WriteHeader(http.StatusBadRequest)
		default:
			details := err.Error()
			h.writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
				Error:   "route generation failed",
				Details: &details,
			})
		}
		return
	}

	response := dto.GenerateRoutesResponse{
		Success: true,
		Message: fmt.Sprintf("routes generated for %s %s",
			result.Date.Format("2006-01-02"), result.TimeSlot),
		RouteID:       result.RouteID,
		PickupStops:   result.PickupStops,
		DeliveryStops: result.DeliveryStops,
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *Handler) parseParams(r *http.Request) (routeplan.GenerateParams, error) {
	var params routeplan.GenerateParams
	if r.Method != http.MethodPost {
		return params, nil
	}

	var request dto.GenerateRoutesRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		// An empty body means "infer everything", same as the GET trigger.
		if errors.Is(err, io.EOF) {
			return params, nil
		}
		return params, err
	}

	params.Date = request.RequestedDate
	params.TimeSlot = request.RequestedTimeSlot
	return params, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
