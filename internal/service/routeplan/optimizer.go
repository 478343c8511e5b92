package routeplan

import (
	"sort"

	"routeplanner/internal/entities"
	"routeplanner/internal/pkg/geo"
)

// SequenceStops orders stops for a single sub-route. Stops carrying a
// preferred time are pinned to the front, ascending; the rest are sequenced
// greedily by nearest-neighbor starting from the depot. This is a heuristic,
// not a TSP solver: the result is a reasonable local ordering, not a minimal
// tour. Output length always equals input length.
func SequenceStops(depot geo.Point, stops []entities.Stop) []entities.Stop {
	if len(stops) <= 1 {
		return stops
	}

	var scheduled, unscheduled []entities.Stop
	for _, s := range stops {
		if s.PreferredTime != nil {
			scheduled = append(scheduled, s)
		} else {
			unscheduled = append(unscheduled, s)
		}
	}

	// Preferred times are validated HH:MM, so the lexicographic order is the
	// time-of-day order.
	sort.SliceStable(scheduled, func(i, j int) bool {
		return *scheduled[i].PreferredTime < *scheduled[j].PreferredTime
	})

	route := make([]entities.Stop, 0, len(stops))
	route = append(route, scheduled...)

	current := depot
	for len(unscheduled) > 0 {
		nearest := 0
		nearestDist := geo.HaversineKm(current, stopPoint(unscheduled[0]))
		for i := 1; i < len(unscheduled); i++ {
			// Strict < keeps ties on the first-encountered stop, so the
			// result is deterministic for a fixed input order.
			if d := geo.HaversineKm(current, stopPoint(unscheduled[i])); d < nearestDist {
				nearest = i
				nearestDist = d
			}
		}

		next := unscheduled[nearest]
		route = append(route, next)
		current = stopPoint(next)
		unscheduled = append(unscheduled[:nearest], unscheduled[nearest+1:]...)
	}

	return route
}

func stopPoint(s entities.Stop) geo.Point {
	return geo.Point{Latitude: s.Latitude, Longitude: s.Longitude}
}
