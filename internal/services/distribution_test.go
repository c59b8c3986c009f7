package points

import (
	"testing"

	model "github.com/davidcortesdev/differentroads-loyalty/internal/models"
	"github.com/stretchr/testify/require"
)

func traveler(id, email string, maxPoints int) model.TravelerData {
	return model.TravelerData{ID: id, Name: "Viajero " + id, Email: email, MaxPoints: maxPoints}
}

func TestDistributeSumPreserved(t *testing.T) {
	travelers := []model.TravelerData{
		traveler("A", "a@mail.com", 50),
		traveler("B", "b@mail.com", 50),
		traveler("C", "", 50), // no email, folds into the lead
		traveler("D", "d@mail.com", 10),
	}

	for total := 0; total <= 200; total++ {
		dist := DistributePoints(total, travelers, MaxPointsPerPerson)
		require.Equal(t, total, dist.Total(), "total=%d", total)
	}
}

func TestDistributeLargestRemainder(t *testing.T) {
	travelers := []model.TravelerData{
		traveler("A", "a@mail.com", 50),
		traveler("B", "b@mail.com", 50),
		traveler("C", "c@mail.com", 50),
	}

	dist := DistributePoints(100, travelers, MaxPointsPerPerson)

	require.Equal(t, 100, dist.Total())
	require.Equal(t, 34, dist[model.Recipient{TravelerID: "A"}])
	require.Equal(t, 33, dist[model.Recipient{TravelerID: "B"}])
	require.Equal(t, 33, dist[model.Recipient{TravelerID: "C"}])
	require.Equal(t, 0, dist[model.LeadRecipient])
	for r, p := range dist {
		require.LessOrEqual(t, p, 50, "recipient=%v", r)
	}
}

func TestDistributeNoEmailNeverAssigned(t *testing.T) {
	travelers := []model.TravelerData{
		traveler("A", "a@mail.com", 50),
		traveler("B", "", 50),
		traveler("C", "", 50),
	}

	for total := 0; total <= 150; total += 7 {
		dist := DistributePoints(total, travelers, MaxPointsPerPerson)
		require.Equal(t, 0, dist[model.Recipient{TravelerID: "B"}], "total=%d", total)
		require.Equal(t, 0, dist[model.Recipient{TravelerID: "C"}], "total=%d", total)
		require.Equal(t, total, dist.Total(), "total=%d", total)
	}
}

func TestDistributeNoEligible(t *testing.T) {
	travelers := []model.TravelerData{
		traveler("A", "", 50),
		traveler("B", "b@mail.com", 0), // zero cap is not eligible either
	}

	dist := DistributePoints(80, travelers, MaxPointsPerPerson)
	require.Equal(t, 80, dist[model.LeadRecipient])
	require.Equal(t, 80, dist.Total())
}

func TestDistributeClampedToTravelerCap(t *testing.T) {
	travelers := []model.TravelerData{
		traveler("A", "a@mail.com", 10),
		traveler("B", "b@mail.com", 50),
	}

	dist := DistributePoints(60, travelers, MaxPointsPerPerson)

	require.Equal(t, 60, dist.Total())
	require.Equal(t, 10, dist[model.Recipient{TravelerID: "A"}])
	require.Equal(t, 30, dist[model.Recipient{TravelerID: "B"}])
	// the clamped remainder lands on the titleholder
	require.Equal(t, 20, dist[model.LeadRecipient])
}

// a repeated id is the same person: one share, nothing silently dropped
func TestDistributeDuplicateTravelerID(t *testing.T) {
	travelers := []model.TravelerData{
		traveler("A", "a@mail.com", 50),
		traveler("A", "a@mail.com", 50),
	}

	dist := DistributePoints(10, travelers, MaxPointsPerPerson)
	require.Equal(t, 10, dist.Total())
	require.Equal(t, 10, dist[model.Recipient{TravelerID: "A"}])

	// the per-person cap holds for the merged recipient too
	dist = DistributePoints(80, travelers, MaxPointsPerPerson)
	require.Equal(t, 80, dist.Total())
	require.Equal(t, 50, dist[model.Recipient{TravelerID: "A"}])
	require.Equal(t, 30, dist[model.LeadRecipient])
}

func TestDistributeZeroPoints(t *testing.T) {
	dist := DistributePoints(0, []model.TravelerData{traveler("A", "a@mail.com", 50)}, MaxPointsPerPerson)
	require.Equal(t, 0, dist.Total())
	require.Empty(t, dist)
}

func TestPointsFromAmount(t *testing.T) {
	tests := []struct {
		amount   float64
		expected int
	}{
		{0, 0},
		{-10, 0},
		{1000, 30},
		{999, 29},
		{33.33, 0},
		{34, 1},
		{100000, 3000},
		{2550.50, 76},
	}

	for _, ts := range tests {
		require.Equal(t, ts.expected, PointsFromAmount(ts.amount), "amount=%v", ts.amount)
	}
}

func TestMaxPointsForTraveler(t *testing.T) {
	travelers := []model.TravelerData{
		traveler("A", "a@mail.com", 50),
		traveler("B", "b@mail.com", 50),
	}
	current := model.Distribution{
		model.Recipient{TravelerID: "B"}: 30,
	}

	tests := []struct {
		name      string
		traveler  string
		available int
		category  model.TravelerCategory
		expected  int
	}{
		{"bounded by remaining pool", "A", 60, model.NOMADA, 30},
		{"bounded by category cap", "A", 200, model.TROTAMUNDOS, 20},
		{"bounded by personal cap", "A", 200, model.NOMADA, 50},
		{"others already exhaust the pool", "A", 30, model.NOMADA, 0},
	}

	for _, ts := range tests {
		t.Run(ts.name, func(t *testing.T) {
			result := MaxPointsForTraveler(ts.traveler, travelers, current, ts.available, ts.category)
			require.Equal(t, ts.expected, result)
		})
	}
}

func TestBuildSummary(t *testing.T) {
	travelers := []model.TravelerData{
		traveler("A", "a@mail.com", 50),
		traveler("B", "", 50),
	}
	dist := DistributePoints(70, travelers, MaxPointsPerPerson)
	summary := BuildSummary(dist, travelers)

	require.Equal(t, 70, summary.TotalPoints)
	require.Equal(t, 2, summary.TravelerCount) // A and the titleholder
	require.Equal(t, 20, summary.LeadPoints)   // A is capped at 50, the rest folds in
	for _, share := range summary.Breakdown {
		require.Equal(t, share.Points, share.Discount) // 1 point == 1 currency unit
	}
}

func TestBuildSummaryDuplicateTravelerID(t *testing.T) {
	travelers := []model.TravelerData{
		traveler("A", "a@mail.com", 50),
		traveler("A", "a@mail.com", 50),
	}
	dist := DistributePoints(10, travelers, MaxPointsPerPerson)
	summary := BuildSummary(dist, travelers)

	require.Equal(t, 10, summary.TotalPoints)
	require.Equal(t, 1, summary.TravelerCount)
	require.Len(t, summary.Breakdown, 1)
	require.Equal(t, 10, summary.Breakdown[0].Points)
}
