package route

import (
	"encoding/json"
	"fmt"

	"routeplanner/internal/entities"
)

func stopsToJSON(stops []entities.Stop) ([]byte, error) {
	models := make([]StopDB, 0, len(stops))
	for _, s := range stops {
		models = append(models, StopDB{
			ID:            s.ID,
			Kind:          s.Kind.String(),
			OrderID:       s.OrderID,
			Address:       s.Address,
			Latitude:      s.Latitude,
			Longitude:     s.Longitude,
			ContactName:   s.ContactName,
			ProductTitle:  s.ProductTitle,
			PreferredTime: s.PreferredTime,
		})
	}
	return json.Marshal(models)
}

func stopsFromJSON(raw []byte) ([]entities.Stop, error) {
	var models []StopDB
	if err := json.Unmarshal(raw, &models); err != nil {
		return nil, fmt.Errorf("malformed stored route stops: %w", err)
	}

	stops := make([]entities.Stop, 0, len(models))
	for _, m := range models {
		stops = append(stops, entities.Stop{
			ID:            m.ID,
			Kind:          entities.StopKind(m.Kind),
			OrderID:       m.OrderID,
			Address:       m.Address,
			Latitude:      m.Latitude,
			Longitude:     m.Longitude,
			ContactName:   m.ContactName,
			ProductTitle:  m.ProductTitle,
			PreferredTime: m.PreferredTime,
		})
	}
	return stops, nil
}

func ToDomain(r *RouteDB) (*entities.Route, error) {
	if r == nil {
		return nil, nil
	}

	pickupStops, err := stopsFromJSON(r.PickupRoute)
	if err != nil {
		return nil, fmt.Errorf("route %s pickup stops: %w", r.ID, err)
	}
	deliveryStops, err := stopsFromJSON(r.DeliveryRoute)
	if err != nil {
		return nil, fmt.Errorf("route %s delivery stops: %w", r.ID, err)
	}

	return &entities.Route{
		ID:            r.ID,
		Date:          r.RouteDate,
		TimeSlot:      entities.TimeSlot(r.TimeSlot),
		PickupRoute:   pickupStops,
		DeliveryRoute: deliveryStops,
		Status:        entities.RouteStatusType(r.Status),
		CreatedAt:     r.CreatedAt,
	}, nil
}
