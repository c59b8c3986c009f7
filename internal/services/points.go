package points

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	interf "github.com/davidcortesdev/differentroads-loyalty/internal/interfaces"
	model "github.com/davidcortesdev/differentroads-loyalty/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const accrualCategory = "trip_completed"

type PointsService struct {
	logger       *zap.Logger
	db           interf.LedgerStorage
	cache        interf.BalanceCache
	reservations interf.ReservationService
}

func NewPointService(logger *zap.Logger, db interf.LedgerStorage, cache interf.BalanceCache, reservations interf.ReservationService) (service *PointsService) {
	return &PointsService{logger, db, cache, reservations}
}

type TripEvent struct {
	ReservationId string  `json:"reservationId"`
	TravelerId    string  `json:"travelerId"`
	Amount        float64 `json:"amount"`
}

// Accrual for a completed trip: 3% of the trip price, pending until the
// cooldown window passes.
func (p *PointsService) TripCompleted(ctx context.Context, tripJson string) error {
	trip := &TripEvent{}
	if err := json.Unmarshal([]byte(tripJson), trip); err != nil {
		return err
	}
	if trip.TravelerId == "" {
		return fmt.Errorf("invalid trip event: travelerId field is required")
	}
	if trip.ReservationId == "" {
		return fmt.Errorf("invalid trip event: reservationId field is required")
	}

	points := PointsFromAmount(trip.Amount)
	if points == 0 {
		return nil
	}
	return p.TnxAccrualCreate(ctx, trip.TravelerId, points, trip.ReservationId)
}

// TnxAccrualCreate appends a pending ACCUMULATE entry with a commit date in
// the future (POINTS_DAYS_COUNT days, default 14).
func (p *PointsService) TnxAccrualCreate(ctx context.Context, travelerId string, points int, reservationId string) error {
	var dayscount int
	var err error
	daysenv := os.Getenv("POINTS_DAYS_COUNT")
	if daysenv == "" {
		dayscount = 14
	} else {
		dayscount, err = strconv.Atoi(daysenv)
		if err != nil {
			dayscount = 14
		}
	}

	account, err := p.db.GetTravelerUUID(ctx, travelerId)
	if err != nil {
		return err
	}

	tnx := model.PointsTransaction{
		UUID:          uuid.New(),
		PointAccount:  account,
		TravelerID:    travelerId,
		ReservationID: reservationId,
		TypeTnx:       model.ACCUMULATE,
		Category:      accrualCategory,
		Concept:       "Puntos por viaje completado",
		Points:        points,
		CommitDate:    time.Now().Add(time.Duration(dayscount) * 24 * time.Hour),
	}
	return p.db.TnxCreate(ctx, tnx)
}

type RedeemRequest struct {
	ReservationId string `json:"reservationId"`
	TravelerId    string `json:"travelerId"`
	Points        int    `json:"points"`
}

// Redeem commits a redemption against a reservation. The confirmation-step
// guards run here: the reservation must be active and the discount may not
// exceed the booking's price nor the traveler's balance.
func (p *PointsService) Redeem(ctx context.Context, req RedeemRequest) (model.ValidationResult, error) {
	if req.TravelerId == "" || req.ReservationId == "" || req.Points <= 0 {
		return model.ValidationResult{}, fmt.Errorf("invalid redeem request")
	}

	reservation, err := p.reservations.GetReservation(ctx, req.ReservationId)
	if err != nil {
		return model.ValidationResult{}, err
	}
	if v := ValidateReservationState(reservation); !v.Valid {
		return v, nil
	}
	if v := ValidateRedemptionAmount(req.Points, reservation); !v.Valid {
		return v, nil
	}

	// the tier cap holds at commit too, not only in the preview
	category, err := p.GetCategory(ctx, req.TravelerId)
	if err != nil {
		return model.ValidationResult{}, err
	}
	if v := ValidateCategoryLimit(req.Points, category.ID); !v.Valid {
		return v, nil
	}

	balance, err := p.GetBalance(ctx, req.TravelerId)
	if err != nil {
		return model.ValidationResult{}, err
	}
	if v := ValidatePointsBalance(req.Points, balance); !v.Valid {
		return v, nil
	}

	if err = p.db.Redeem(ctx, req.TravelerId, req.Points, req.ReservationId); err != nil {
		return model.ValidationResult{}, err
	}
	if err = p.InvalidateBalance(ctx, req.TravelerId); err != nil {
		p.logger.Error(err.Error())
	}
	return model.ValidationResult{Valid: true, Kind: model.ErrNone}, nil
}

type DistributionRequest struct {
	ReservationId string                 `json:"reservationId"`
	TravelerId    string                 `json:"travelerId"` // the redeeming account holder
	TotalPoints   int                    `json:"totalPoints"`
	Travelers     []model.TravelerData   `json:"travelers"`
	Category      model.TravelerCategory `json:"category"`
}

// PreviewDistribution computes the per-traveler split the UI shows before a
// redemption is confirmed, together with the validation verdict for it.
func (p *PointsService) PreviewDistribution(ctx context.Context, req DistributionRequest) (model.DistributionSummary, model.ValidationResult, error) {
	dist := DistributePoints(req.TotalPoints, req.Travelers, MaxPointsPerPerson)
	summary := BuildSummary(dist, req.Travelers)

	reservation, err := p.reservations.GetReservation(ctx, req.ReservationId)
	if err != nil {
		return summary, model.ValidationResult{}, err
	}
	balance, err := p.GetBalance(ctx, req.TravelerId)
	if err != nil {
		return summary, model.ValidationResult{}, err
	}

	v := ValidateRedemption(reservation, dist, req.Travelers, balance, req.Category)
	return summary, v, nil
}

type CancellationEvent struct {
	ReservationId string `json:"reservationId"`
	TravelerId    string `json:"travelerId"`
}

// ProcessCancellation undoes the redemption of a cancelled reservation by
// appending an offsetting accrual. A reservation is reversed at most once:
// a second cancellation event is answered with ErrAlreadyReversed.
func (p *PointsService) ProcessCancellation(ctx context.Context, cancelJson string) (reservationId string, err error) {
	event := &CancellationEvent{}
	if err = json.Unmarshal([]byte(cancelJson), event); err != nil {
		return "", err
	}
	if event.ReservationId == "" {
		return "", fmt.Errorf("invalid cancellation event: reservationId field is required")
	}

	pointsUsed, err := p.db.GetRedeemedPoints(ctx, event.ReservationId)
	if err != nil {
		return event.ReservationId, err
	}
	if !CanProcessReversal(event.TravelerId, pointsUsed) {
		// nothing was redeemed against this booking
		return event.ReservationId, nil
	}

	reversed, err := p.db.HasReversal(ctx, event.ReservationId)
	if err != nil {
		return event.ReservationId, err
	}
	if reversed {
		return event.ReservationId, fmt.Errorf("reservation %s: %w", event.ReservationId, model.ErrAlreadyReversed)
	}

	for _, tnx := range ProcessCancellationReversal(event.ReservationId, event.TravelerId, pointsUsed) {
		account, err := p.db.GetTravelerUUID(ctx, tnx.TravelerID)
		if err != nil {
			return event.ReservationId, err
		}
		tnx.PointAccount = account
		if err = p.db.TnxCreate(ctx, tnx); err != nil {
			return event.ReservationId, err
		}
	}
	if err = p.InvalidateBalance(ctx, event.TravelerId); err != nil {
		p.logger.Error(err.Error())
	}
	return event.ReservationId, nil
}

// activation of matured accruals
func (p *PointsService) CommitOnDate(ctx context.Context) error {
	return p.db.TnxCommitOnDate(ctx, time.Now())
}

// balance, cache-aside
func (p *PointsService) GetBalance(ctx context.Context, traveler string) (points int, err error) {
	if p.cache != nil {
		points, err = p.cache.GetBalance(ctx, traveler)
		if err != nil {
			points, err = p.db.GetBalance(ctx, traveler)
			if err != nil {
				return 0, err
			}
			_ = p.cache.SetBalance(ctx, traveler, points)
		}
		return points, nil
	}
	return p.db.GetBalance(ctx, traveler)
}

func (p *PointsService) InvalidateBalance(ctx context.Context, traveler string) error {
	if p.cache != nil {
		return p.cache.InvalidateBalance(ctx, traveler)
	}
	return nil
}

// transaction history
func (p *PointsService) GetTnx(ctx context.Context, traveler string, from time.Time, to time.Time) (tnxs []model.PointsTransaction, err error) {
	return p.db.GetTnx(ctx, traveler, from, to)
}

// current tier, from the count of committed trip accruals
func (p *PointsService) GetCategory(ctx context.Context, traveler string) (model.CategoryConfig, error) {
	trips, err := p.db.GetTripsCount(ctx, traveler)
	if err != nil {
		return GetCategoryConfig(model.TROTAMUNDOS), err
	}
	return GetCategoryConfig(DetermineCategoryByTrips(trips)), nil
}

func (p *PointsService) Log(err error) {
	p.logger.Error(err.Error())
}
