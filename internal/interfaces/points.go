package points

import (
	"context"
	"time"

	model "github.com/davidcortesdev/differentroads-loyalty/internal/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=./../services/mock_points_test.go -package=points . LedgerStorage,BalanceCache,ReservationService

type LedgerStorage interface {
	TnxCreate(ctx context.Context, tnx model.PointsTransaction) error
	TnxCommitOnDate(ctx context.Context, date time.Time) error
	Redeem(ctx context.Context, traveler string, points int, reservationId string) (err error)
	GetBalance(ctx context.Context, traveler string) (points int, err error)
	GetTnx(ctx context.Context, traveler string, from time.Time, to time.Time) (tnxs []model.PointsTransaction, err error)
	GetRedeemedPoints(ctx context.Context, reservationId string) (points int, err error)
	HasReversal(ctx context.Context, reservationId string) (bool, error)
	GetTripsCount(ctx context.Context, traveler string) (trips int, err error)
	GetTravelerUUID(ctx context.Context, traveler string) (account uuid.UUID, err error)
}

type BalanceCache interface {
	GetBalance(ctx context.Context, traveler string) (points int, err error)
	SetBalance(ctx context.Context, traveler string, points int) (err error)
	InvalidateBalance(ctx context.Context, traveler string) error
}

type ReservationService interface {
	GetReservation(ctx context.Context, reservationId string) (model.Reservation, error)
}
