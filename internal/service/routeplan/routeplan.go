package routeplan

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"routeplanner/internal/entities"
	"routeplanner/internal/pkg/geo"
	"routeplanner/pkg/logger"
)

const dateLayout = "2006-01-02"

type Planner struct {
	orderRepository   OrderRepository
	profileRepository ProfileRepository
	routeRepository   RouteRepository
	txManager         TxManager
	depot             geo.Point
	log               plannerLogger
}

func New(
	orderRepository OrderRepository,
	profileRepository ProfileRepository,
	routeRepository RouteRepository,
	txManager TxManager,
	depot geo.Point,
	log plannerLogger,
) *Planner {
	return &Planner{
		orderRepository:   orderRepository,
		profileRepository: profileRepository,
		routeRepository:   routeRepository,
		txManager:         txManager,
		depot:             depot,
		log:               log,
	}
}

// GenerateParams carries the optional manual-trigger parameters. Nil fields
// fall back to wall-clock inference.
type GenerateParams struct {
	Date     *string
	TimeSlot *string
}

type GenerateResult struct {
	RouteID       string
	Date          time.Time
	TimeSlot      entities.TimeSlot
	PickupStops   int
	DeliveryStops int
	TotalAmount   decimal.Decimal
}

// GenerateRoutes runs the full pipeline for one (date, time_slot) wave:
// fetch eligible orders, resolve display names in bulk, extract stops,
// sequence pickups and deliveries independently from the depot, and replace
// the stored route. Zero eligible orders still produce a valid empty route.
func (p *Planner) GenerateRoutes(ctx context.Context, params GenerateParams) (*GenerateResult, error) {
	date, slot, err := p.resolveTarget(params)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	from, to := SlotWindow(date, slot)

	result := GenerateResult{
		Date:        date,
		TimeSlot:    slot,
		TotalAmount: decimal.Zero,
	}

	err = p.txManager.Do(ctx, func(ctx context.Context) error {
		orders, err := p.orderRepository.ListRoutable(ctx, from, to)
		if err != nil {
			return fmt.Errorf("list routable orders: %w", err)
		}

		displayNames, err := p.profileRepository.GetDisplayNames(ctx, participantIDs(orders))
		if err != nil {
			return fmt.Errorf("resolve display names: %w", err)
		}

		pickups, deliveries := ExtractStops(p.log, orders, displayNames)

		routeEntity := entities.Route{
			Date:          date,
			TimeSlot:      slot,
			PickupRoute:   SequenceStops(p.depot, pickups),
			DeliveryRoute: SequenceStops(p.depot, deliveries),
			Status:        entities.DefaultRouteStatus,
		}

		persisted, err := p.routeRepository.Upsert(ctx, routeEntity)
		if err != nil {
			return fmt.Errorf("persist route: %w", err)
		}

		for _, order := range orders {
			result.TotalAmount = result.TotalAmount.Add(order.Amount)
		}

		result.RouteID = persisted.ID
		result.PickupStops = len(persisted.PickupRoute)
		result.DeliveryStops = len(persisted.DeliveryRoute)
		return nil
	})
	if err != nil {
		return nil, err
	}

	RoutesGeneratedTotal.WithLabelValues(slot.String()).Inc()
	StopsPlannedTotal.WithLabelValues(entities.StopPickup.String()).Add(float64(result.PickupStops))
	StopsPlannedTotal.WithLabelValues(entities.StopDelivery.String()).Add(float64(result.DeliveryStops))
	RouteGenerationDuration.Observe(time.Since(started).Seconds())

	p.log.With(
		logger.NewField("route_id", result.RouteID),
		logger.NewField("route_date", date.Format(dateLayout)),
		logger.NewField("time_slot", slot.String()),
		logger.NewField("pickup_stops", result.PickupStops),
		logger.NewField("delivery_stops", result.DeliveryStops),
		logger.NewField("total_amount", result.TotalAmount.String()),
	).Info("route generated")

	return &result, nil
}

// GetRoute returns the stored route for a (date, time_slot) pair.
func (p *Planner) GetRoute(ctx context.Context, date, slot string) (*entities.Route, error) {
	routeDate, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, date)
	}

	timeSlot := entities.TimeSlot(slot)
	if !timeSlot.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimeSlot, slot)
	}

	return p.routeRepository.GetByDateAndSlot(ctx, routeDate, timeSlot)
}

func (p *Planner) resolveTarget(params GenerateParams) (time.Time, entities.TimeSlot, error) {
	now := time.Now().UTC()

	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if params.Date != nil {
		parsed, err := time.Parse(dateLayout, *params.Date)
		if err != nil {
			return time.Time{}, "", fmt.Errorf("%w: %s", ErrInvalidDate, *params.Date)
		}
		date = parsed
	}

	slot := InferSlot(now)
	if params.TimeSlot != nil {
		slot = entities.TimeSlot(*params.TimeSlot)
		if !slot.Valid() {
			return time.Time{}, "", fmt.Errorf("%w: %s", ErrInvalidTimeSlot, *params.TimeSlot)
		}
	}

	return date, slot, nil
}

func participantIDs(orders []entities.Order) []string {
	seen := make(map[string]struct{}, len(orders)*2)
	ids := make([]string, 0, len(orders)*2)
	for _, order := range orders {
		for _, id := range []string{order.BuyerID, order.SellerID} {
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
