package routeplan

import (
	"routeplanner/internal/entities"
	"routeplanner/pkg/logger"
)

const (
	skipReasonMissingCoordinates = "missing_coordinates"
	skipReasonMalformedDetails   = "malformed_details"
)

// ExtractStops projects orders into pickup and delivery stops, preserving the
// input order. Stops without usable coordinates are dropped here so the
// optimizer never sees unroutable points; a malformed delivery_details payload
// skips only that order's delivery stop.
func ExtractStops(log plannerLogger, orders []entities.Order, displayNames map[string]string) (pickups, deliveries []entities.Stop) {
	for _, order := range orders {
		if !hasCoordinates(order.Product.Latitude, order.Product.Longitude) {
			StopsSkippedTotal.WithLabelValues(skipReasonMissingCoordinates).Inc()
		} else {
			pickups = append(pickups, entities.Stop{
				ID:           entities.StopID(entities.StopPickup, order.ID),
				Kind:         entities.StopPickup,
				OrderID:      order.ID,
				Address:      order.Product.Location,
				Latitude:     order.Product.Latitude,
				Longitude:    order.Product.Longitude,
				ContactName:  displayNames[order.SellerID],
				ProductTitle: order.Product.Title,
			})
		}

		details, err := order.DeliveryDetails.Normalize()
		if err != nil {
			log.With(
				logger.NewField("order_id", order.ID),
				logger.NewField("error", err),
			).Warn("skipping delivery stop with malformed delivery details")
			StopsSkippedTotal.WithLabelValues(skipReasonMalformedDetails).Inc()
			continue
		}
		if details == nil {
			continue
		}
		if !hasCoordinates(details.Latitude, details.Longitude) {
			StopsSkippedTotal.WithLabelValues(skipReasonMissingCoordinates).Inc()
			continue
		}

		stop := entities.Stop{
			ID:           entities.StopID(entities.StopDelivery, order.ID),
			Kind:         entities.StopDelivery,
			OrderID:      order.ID,
			Address:      details.Address,
			Latitude:     details.Latitude,
			Longitude:    details.Longitude,
			ContactName:  displayNames[order.BuyerID],
			ProductTitle: order.Product.Title,
		}

		if details.PreferredTime != nil {
			if isValidPreferredTime(*details.PreferredTime) {
				stop.PreferredTime = details.PreferredTime
			} else {
				log.With(
					logger.NewField("order_id", order.ID),
					logger.NewField("preferred_time", *details.PreferredTime),
				).Warn("ignoring unsortable preferred time, expected zero-padded HH:MM")
			}
		}

		deliveries = append(deliveries, stop)
	}

	return pickups, deliveries
}

// hasCoordinates treats (0,0) as "not geocoded", matching how the checkout
// writes rows it could not geocode.
func hasCoordinates(lat, lng float64) bool {
	return lat != 0 && lng != 0
}
