package points

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrInsufficientBalance = errors.New("not enough points")
	ErrAlreadyReversed     = errors.New("reservation already reversed")
)

// Loyalty tier of a traveler
type TravelerCategory string

const (
	TROTAMUNDOS TravelerCategory = "TROTAMUNDOS"
	VIAJERO     TravelerCategory = "VIAJERO"
	NOMADA      TravelerCategory = "NOMADA"
)

// Static configuration of a tier
type CategoryConfig struct {
	ID            TravelerCategory `json:"id"`
	Name          string           `json:"name"`
	MaxDiscount   int              `json:"maxDiscount"`   // max redeemable per purchase, currency units
	PointsPerUnit int              `json:"pointsPerUnit"` // always 1: one point == one currency unit
	MinTrips      int              `json:"minTrips"`      // trips required to reach the tier
	Benefits      []string         `json:"benefits"`
}

// Participant of a reservation eligible for point allocation
type TravelerData struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"` // empty means unverified, cannot hold points
	MaxPoints int    `json:"maxPoints"`
	Assigned  int    `json:"assigned"`
}

const (
	ACCUMULATE = 0
	REDEEM     = 1
)

// Ledger entry. Never mutated after creation, corrections are
// new offsetting transactions.
type PointsTransaction struct {
	UUID          uuid.UUID
	PointAccount  uuid.UUID // account UUID of the traveler
	TravelerID    string
	ReservationID string
	TypeTnx       int    // ACCUMULATE / REDEEM
	Category      string // business event tag: trip_completed, redemption, reversal...
	Concept       string // human description
	Points        int
	CommitDate    time.Time // date the points become effective
	Commit        bool      // points already on the balance
	ReversalOf    string    // reservation id of the redemption this entry offsets
}

type ErrorKind string

const (
	ErrNone                ErrorKind = "none"
	ErrInsufficientPoints  ErrorKind = "insufficient_balance"
	ErrPerPersonLimit      ErrorKind = "per_person_limit"
	ErrCategoryLimit       ErrorKind = "category_limit"
	ErrInactiveReservation ErrorKind = "inactive_reservation"
	ErrDistribution        ErrorKind = "distribution_error"
)

type ValidationResult struct {
	Valid   bool      `json:"valid"`
	Message string    `json:"message"`
	Kind    ErrorKind `json:"errorType"`
	Details []string  `json:"details,omitempty"`
}

// Allocation target. Lead marks the reservation titleholder, who absorbs
// any share that cannot be assigned to a named co-traveler.
type Recipient struct {
	TravelerID string
	Lead       bool
}

var LeadRecipient = Recipient{Lead: true}

type Distribution map[Recipient]int

func (d Distribution) Total() (total int) {
	for _, p := range d {
		total += p
	}
	return total
}

// Derived view for the UI, not persisted
type DistributionSummary struct {
	TotalPoints   int             `json:"totalPoints"`
	TravelerCount int             `json:"travelerCount"` // travelers with a nonzero share
	LeadPoints    int             `json:"leadPoints"`
	Breakdown     []TravelerShare `json:"breakdown"`
}

type TravelerShare struct {
	Name     string `json:"name"`
	Points   int    `json:"points"`
	Discount int    `json:"discount"` // currency units, 1:1 with points
}

// Reservation record as served by the reservations backend
type Reservation struct {
	ID          string  `json:"id"`
	TotalAmount float64 `json:"totalAmount"`
	Status      string  `json:"status"`
}

func (r Reservation) Active() bool {
	return r.ID != "" && r.Status != "CANCELLED"
}
