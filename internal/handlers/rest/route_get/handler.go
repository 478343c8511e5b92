package route_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"routeplanner/internal/entities"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	routeEntity, err := h.service.GetRoute(r.Context(), vars["date"], vars["slot"])
	if err != nil {
		switch {
		case errors.Is(err, routeplan.ErrInvalidDate),
			errors.Is(err, routeplan.ErrInvalidTimeSlot):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, routeplan.ErrRouteNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Route{
		ID:            routeEntity.ID,
		RouteDate:     routeEntity.Date.Format("2006-01-02"),
		TimeSlot:      dto.RouteTimeSlot(routeEntity.TimeSlot),
		PickupRoute:   toStopDTOs(routeEntity.PickupRoute),
		DeliveryRoute: toStopDTOs(routeEntity.DeliveryRoute),
		Status:        routeEntity.Status.String(),
		CreatedAt:     routeEntity.CreatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toStopDTOs(stops []entities.Stop) []dto.Stop {
	result := make([]dto.Stop, 0, len(stops))
	for _, s := range stops {
		result = append(result, dto.Stop{
			ID:            s.ID,
			Type:          s.Kind.String(),
			OrderID:       s.OrderID,
			Address:       s.Address,
			Latitude:      s.Latitude,
			Longitude:     s.Longitude,
			ContactName:   s.ContactName,
			ProductTitle:  s.ProductTitle,
			PreferredTime: s.PreferredTime,
		})
	}
	return result
}
