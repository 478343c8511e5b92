package routeplan

import "errors"

var (
	ErrInvalidTimeSlot = errors.New("invalid time slot")
	ErrInvalidDate     = errors.New("invalid date")

	ErrRouteNotFound = errors.New("route not found")
)
