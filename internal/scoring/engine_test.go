package scoring

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jtalface/open-government-platform/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upvote(neighborhoodID *uuid.UUID, userID string) models.Vote {
	return models.Vote{UserID: userID, Value: 1, NeighborhoodID: neighborhoodID}
}

func downvote(neighborhoodID *uuid.UUID, userID string) models.Vote {
	return models.Vote{UserID: userID, Value: -1, NeighborhoodID: neighborhoodID}
}

// workedExampleVotes — фикстура из четырех голосов: A(N1,+1), B(N1,+1),
// C(N2,+1), D(без района,-1)
func workedExampleVotes(n1, n2 uuid.UUID) []models.Vote {
	return []models.Vote{
		upvote(&n1, "A"),
		upvote(&n1, "B"),
		upvote(&n2, "C"),
		downvote(nil, "D"),
	}
}

func TestComputeStats_WorkedExample(t *testing.T) {
	n1 := uuid.New()
	n2 := uuid.New()

	stats := ComputeStats(workedExampleVotes(n1, n2))

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 3, stats.Upvotes)
	assert.Equal(t, 1, stats.Downvotes)
	assert.Equal(t, models.NeighborhoodVotes{Upvotes: 2, Downvotes: 0}, stats.ByNeighborhood[n1])
	assert.Equal(t, models.NeighborhoodVotes{Upvotes: 1, Downvotes: 0}, stats.ByNeighborhood[n2])
	// Голос без района не попадает в разбивку по районам
	assert.Len(t, stats.ByNeighborhood, 2)
}

func TestComputeStats_OrderIndependent(t *testing.T) {
	n1 := uuid.New()
	n2 := uuid.New()
	votes := workedExampleVotes(n1, n2)

	reversed := make([]models.Vote, len(votes))
	for i, v := range votes {
		reversed[len(votes)-1-i] = v
	}

	assert.Equal(t, ComputeStats(votes), ComputeStats(reversed))
}

func TestComputeStats_Conservation(t *testing.T) {
	n1 := uuid.New()
	votes := []models.Vote{
		upvote(&n1, "A"),
		downvote(&n1, "B"),
		downvote(nil, "C"),
	}
	stats := ComputeStats(votes)
	assert.Equal(t, stats.Total, stats.Upvotes+stats.Downvotes)
}

// upsert имитирует семантику журнала: одна строка на пользователя,
// повторный голос перезаписывает значение, но не снимок района
func upsert(votes []models.Vote, vote models.Vote) []models.Vote {
	for i := range votes {
		if votes[i].UserID == vote.UserID {
			votes[i].Value = vote.Value
			return votes
		}
	}
	return append(votes, vote)
}

func TestComputeStats_FlipSymmetry(t *testing.T) {
	n1 := uuid.New()

	var ledger []models.Vote
	ledger = upsert(ledger, upvote(&n1, "A"))
	ledger = upsert(ledger, downvote(&n1, "A"))
	afterFlip := ComputeStats(ledger)

	onlyDown := ComputeStats([]models.Vote{downvote(&n1, "A")})
	assert.Equal(t, onlyDown, afterFlip)
	assert.Equal(t, 1, afterFlip.Total)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.Upvotes)
	assert.Equal(t, 0, stats.Downvotes)
	assert.Empty(t, stats.ByNeighborhood)
}

func TestScore_WorkedExample(t *testing.T) {
	n1 := uuid.New()
	n2 := uuid.New()
	stats := ComputeStats(workedExampleVotes(n1, n2))
	weights := DefaultWeights()

	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// globalScore = 3-1 = 2, neighborhoodScore(N1) = 2-0 = 2,
	// rawScore = 2*2.0 + 2*1.0 = 6
	score := Score(stats, &n1, createdAt, weights, createdAt)
	assert.InDelta(t, 6.0, score, 1e-9)

	// Через 30 дней (= константа затухания): 6 * e^-1
	after30d := createdAt.Add(30 * 24 * time.Hour)
	score = Score(stats, &n1, createdAt, weights, after30d)
	assert.InDelta(t, 6.0*math.Exp(-1), score, 1e-9)
	assert.InDelta(t, 2.207, score, 1e-3)
}

func TestScore_NoNeighborhoodFallsBackToGlobal(t *testing.T) {
	n1 := uuid.New()
	n2 := uuid.New()
	stats := ComputeStats(workedExampleVotes(n1, n2))
	weights := DefaultWeights()
	now := time.Now()

	// Без района счёт = globalScore * globalVoteWeight
	score := Score(stats, nil, now, weights, now)
	assert.InDelta(t, 2.0, score, 1e-9)
}

func TestScore_NeighborhoodWithoutVotes(t *testing.T) {
	n1 := uuid.New()
	other := uuid.New()
	stats := ComputeStats([]models.Vote{upvote(&other, "A")})
	now := time.Now()

	// Район инцидента без единого голоса из него — ноль, не ошибка
	score := Score(stats, &n1, now, DefaultWeights(), now)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestScore_NeverNegative(t *testing.T) {
	n1 := uuid.New()
	stats := ComputeStats([]models.Vote{
		downvote(&n1, "A"),
		downvote(&n1, "B"),
		downvote(nil, "C"),
	})
	now := time.Now()

	score := Score(stats, &n1, now, DefaultWeights(), now)
	assert.Equal(t, 0.0, score)
}

func TestScore_DecayBounds(t *testing.T) {
	n1 := uuid.New()
	stats := ComputeStats([]models.Vote{upvote(&n1, "A")})
	weights := DefaultWeights()
	createdAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	// decay(0) == 1: в момент создания счёт равен сырому
	fresh := Score(stats, &n1, createdAt, weights, createdAt)
	assert.InDelta(t, 3.0, fresh, 1e-9)

	// Монотонно не возрастает с возрастом
	prev := fresh
	for days := 1; days <= 120; days *= 2 {
		score := Score(stats, &n1, createdAt, weights, createdAt.Add(time.Duration(days)*24*time.Hour))
		require.Less(t, score, prev, "score must strictly decrease at age %d days", days)
		require.GreaterOrEqual(t, score, 0.0)
		prev = score
	}
}

func TestScore_Deterministic(t *testing.T) {
	n1 := uuid.New()
	n2 := uuid.New()
	stats := ComputeStats(workedExampleVotes(n1, n2))
	createdAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	now := createdAt.Add(13 * 24 * time.Hour)

	first := Score(stats, &n1, createdAt, DefaultWeights(), now)
	second := Score(stats, &n1, createdAt, DefaultWeights(), now)
	assert.Equal(t, first, second)
}

func TestSortRanked(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	older := &models.Incident{ImportanceScore: 5, CreatedAt: base}
	newer := &models.Incident{ImportanceScore: 5, CreatedAt: base.Add(time.Hour)}
	top := &models.Incident{ImportanceScore: 9, CreatedAt: base}

	incidents := []*models.Incident{older, top, newer}
	SortRanked(incidents)

	// Важность по убыванию, при равенстве — новее первыми
	assert.Equal(t, []*models.Incident{top, newer, older}, incidents)
}
