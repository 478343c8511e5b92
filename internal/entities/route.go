package entities

import "time"

type Route struct {
	ID            string
	Date          time.Time
	TimeSlot      TimeSlot
	PickupRoute   []Stop
	DeliveryRoute []Stop
	Status        RouteStatusType
	CreatedAt     time.Time
}

type RouteStatusType string

const (
	RoutePlanned    RouteStatusType = "planned"
	RouteInProgress RouteStatusType = "in_progress"
	RouteCompleted  RouteStatusType = "completed"
)

const DefaultRouteStatus = RoutePlanned

func (s RouteStatusType) String() string {
	return string(s)
}

type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
)

func (t TimeSlot) String() string {
	return string(t)
}

func (t TimeSlot) Valid() bool {
	return t == SlotMorning || t == SlotAfternoon
}
