package points

import (
	"time"

	model "github.com/davidcortesdev/differentroads-loyalty/internal/models"
	"github.com/google/uuid"
)

type ReversalReason string

const (
	ReasonCancellation ReversalReason = "cancellation"
	ReasonRefund       ReversalReason = "refund"
	ReasonAdjustment   ReversalReason = "adjustment"
)

var reversalConcepts = map[ReversalReason]string{
	ReasonCancellation: "Devolución de puntos por cancelación de la reserva",
	ReasonRefund:       "Devolución de puntos por reembolso",
	ReasonAdjustment:   "Ajuste de puntos",
}

const reversalCategory = "reversal"

// CreateReversal builds the offsetting entry for a previously applied
// redemption. Reversals are synchronous bookkeeping: they are confirmed on
// creation and never wait for settlement.
func CreateReversal(originalReservationId, travelerId string, pointsToReverse int, reason ReversalReason) model.PointsTransaction {
	concept, ok := reversalConcepts[reason]
	if !ok {
		concept = reversalConcepts[ReasonAdjustment]
	}
	now := time.Now()
	return model.PointsTransaction{
		UUID:          uuid.New(),
		TravelerID:    travelerId,
		ReservationID: originalReservationId,
		TypeTnx:       model.ACCUMULATE,
		Category:      reversalCategory,
		Concept:       concept,
		Points:        pointsToReverse,
		CommitDate:    now,
		Commit:        true,
		ReversalOf:    originalReservationId,
	}
}

// ProcessCancellationReversal returns the entries to append when a
// reservation is cancelled. Bookings that never redeemed points are a no-op.
func ProcessCancellationReversal(reservationId, travelerId string, pointsUsed int) []model.PointsTransaction {
	if pointsUsed <= 0 {
		return []model.PointsTransaction{}
	}
	return []model.PointsTransaction{
		CreateReversal(reservationId, travelerId, pointsUsed, ReasonCancellation),
	}
}

// CanProcessReversal covers the local preconditions only. Duplicate
// detection needs the ledger and lives in PointsService.ProcessCancellation.
func CanProcessReversal(travelerId string, pointsToReverse int) bool {
	return travelerId != "" && pointsToReverse > 0
}
