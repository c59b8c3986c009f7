package points

import (
	"math"

	model "github.com/davidcortesdev/differentroads-loyalty/internal/models"
)

// DistributePoints splits totalPoints across the travelers of a reservation.
// Travelers without a verified email or with a zero cap are skipped, their
// share ends up on the titleholder. The sum of the returned allocations is
// always exactly totalPoints.
func DistributePoints(totalPoints int, travelers []model.TravelerData, maxPerPerson int) model.Distribution {
	dist := model.Distribution{}
	if totalPoints <= 0 {
		return dist
	}

	// a repeated traveler id is the same person: first occurrence wins
	var eligible []model.TravelerData
	seen := map[string]bool{}
	for _, t := range travelers {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		if t.Email != "" && t.MaxPoints > 0 {
			eligible = append(eligible, t)
		}
	}
	if len(eligible) == 0 {
		dist[model.LeadRecipient] = totalPoints
		return dist
	}

	base := totalPoints / len(eligible)
	remainder := totalPoints % len(eligible)

	left := totalPoints
	for i, t := range eligible {
		share := base
		if i < remainder {
			share++ // largest-remainder: first travelers take the extra units
		}
		share = min(share, t.MaxPoints, maxPerPerson, left)
		if share > 0 {
			dist[model.Recipient{TravelerID: t.ID}] += share
			left -= share
		}
	}
	// whatever clamping kept back goes to the titleholder
	if left > 0 {
		dist[model.LeadRecipient] += left
	}
	return dist
}

// MaxPointsForTraveler is the interactive upper bound while the user moves
// one traveler's slider: it never allows breaking the allocations already
// committed to the others.
func MaxPointsForTraveler(travelerId string, travelers []model.TravelerData, current model.Distribution, availablePoints int, category model.TravelerCategory) int {
	personal := MaxPointsPerPerson
	for _, t := range travelers {
		if t.ID == travelerId && t.MaxPoints < personal {
			personal = t.MaxPoints
		}
	}

	var others int
	for r, p := range current {
		if r.TravelerID != travelerId || r.Lead {
			others += p
		}
	}

	limit := min(personal, availablePoints-others, MaxDiscountForCategory(category)-others)
	if limit < 0 {
		return 0
	}
	return limit
}

// PointsFromAmount is the accrual for a priced trip: 3% of the amount,
// rounded down.
func PointsFromAmount(amount float64) int {
	if amount <= 0 {
		return 0
	}
	return int(math.Floor(amount * AccrualRate))
}

// BuildSummary derives the per-traveler breakdown the UI shows before the
// redemption is confirmed.
func BuildSummary(dist model.Distribution, travelers []model.TravelerData) model.DistributionSummary {
	summary := model.DistributionSummary{TotalPoints: dist.Total()}
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
		summary.TravelerCount++
		summary.Breakdown = append(summary.Breakdown, model.TravelerShare{Name: t.Name, Points: p, Discount: p})
	}
	if lead := dist[model.LeadRecipient]; lead > 0 {
		summary.LeadPoints = lead
		summary.TravelerCount++
		summary.Breakdown = append(summary.Breakdown, model.TravelerShare{Name: LeadTravelerName, Points: lead, Discount: lead})
	}
	return summary
}
