package points

import (
	"fmt"

	model "github.com/davidcortesdev/differentroads-loyalty/internal/models"
)

// Display name of the titleholder in user-facing messages
const LeadTravelerName = "Titular de la reserva"

func valid() model.ValidationResult {
	return model.ValidationResult{Valid: true, Kind: model.ErrNone}
}

func invalid(kind model.ErrorKind, message string, details ...string) model.ValidationResult {
	return model.ValidationResult{Valid: false, Kind: kind, Message: message, Details: details}
}

// Requested total must fit in the traveler's balance.
func ValidatePointsBalance(requested, available int) model.ValidationResult {
	if requested > available {
		return invalid(model.ErrInsufficientPoints,
			fmt.Sprintf("Saldo insuficiente: solicitados %d puntos, disponibles %d", requested, available))
	}
	return valid()
}

// Requested total must fit in the tier's per-purchase discount cap.
func ValidateCategoryLimit(requested int, category model.TravelerCategory) model.ValidationResult {
	cfg := GetCategoryConfig(category)
	if requested > cfg.MaxDiscount {
		return invalid(model.ErrCategoryLimit,
			fmt.Sprintf("La categoría %s permite un máximo de %d€ de descuento por compra", cfg.Name, cfg.MaxDiscount))
	}
	return valid()
}

// Per-traveler cap and the email precondition, checked over a proposed
// distribution. The first violated rule is the result, further ones are
// reported as details.
func ValidateDistribution(dist model.Distribution, travelers []model.TravelerData, maxPerPerson int) model.ValidationResult {
	byID := make(map[string]model.TravelerData, len(travelers))
	for _, t := range travelers {
		byID[t.ID] = t
	}

	var first *model.ValidationResult
	var details []string

	record := func(v model.ValidationResult) {
		if first == nil {
			v2 := v
			first = &v2
			return
		}
		details = append(details, v.Message)
	}

	seen := map[string]bool{}
	for _, t := range travelers {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		p := dist[model.Recipient{TravelerID: t.ID}]
		if p == 0 {
			continue
		}
		if p > maxPerPerson {
			record(invalid(model.ErrPerPersonLimit,
				fmt.Sprintf("%s supera el límite de %d puntos por persona", displayName(t), maxPerPerson)))
			continue
		}
		if t.Email == "" {
			record(invalid(model.ErrDistribution,
				fmt.Sprintf("%s no tiene un email verificado para recibir puntos", displayName(t))))
		}
	}
	// allocations to ids not present in the traveler list are distribution bugs
	for r, p := range dist {
		if r.Lead || p == 0 {
			continue
		}
		if _, ok := byID[r.TravelerID]; !ok {
			record(invalid(model.ErrDistribution,
				fmt.Sprintf("Asignación a un viajero desconocido: %s", r.TravelerID)))
		}
	}
	if lead := dist[model.LeadRecipient]; lead > maxPerPerson {
		record(invalid(model.ErrPerPersonLimit,
			fmt.Sprintf("%s supera el límite de %d puntos por persona", LeadTravelerName, maxPerPerson)))
	}

	if first != nil {
		first.Details = details
		return *first
	}
	return valid()
}

// A truthy reservation id is the most fundamental precondition.
func ValidateReservationState(reservation model.Reservation) model.ValidationResult {
	if !reservation.Active() {
		return invalid(model.ErrInactiveReservation, "La reserva no está activa")
	}
	return valid()
}

// Confirmation-step guard: the discount cannot exceed the booking's price.
func ValidateRedemptionAmount(requested int, reservation model.Reservation) model.ValidationResult {
	if float64(requested) > reservation.TotalAmount {
		return invalid(model.ErrInsufficientPoints,
			fmt.Sprintf("El descuento (%d€) no puede superar el importe de la reserva (%.2f€)", requested, reservation.TotalAmount))
	}
	return valid()
}

// ValidateRedemption composes the checks in the order the UI surfaces them:
// reservation validity first, then the distribution rules. Short-circuits on
// the first failure.
func ValidateRedemption(reservation model.Reservation, dist model.Distribution, travelers []model.TravelerData, available int, category model.TravelerCategory) model.ValidationResult {
	if v := ValidateReservationState(reservation); !v.Valid {
		return v
	}
	requested := dist.Total()
	if v := ValidatePointsBalance(requested, available); !v.Valid {
		return v
	}
	if v := ValidateCategoryLimit(requested, category); !v.Valid {
		return v
	}
	return ValidateDistribution(dist, travelers, MaxPointsPerPerson)
}

func displayName(t model.TravelerData) string {
	if t.Name == "" {
		return LeadTravelerName
	}
	return t.Name
}
