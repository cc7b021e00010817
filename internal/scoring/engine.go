package scoring

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jtalface/open-government-platform/internal/models"
)

// DefaultWeights — коэффициенты по умолчанию, когда у муниципалитета
// нет собственных настроек
func DefaultWeights() models.ScoreWeights {
	return models.ScoreWeights{
		NeighborhoodVoteWeight: 2.0,
		GlobalVoteWeight:       1.0,
		DecayConstantDays:      30,
	}
}

// ComputeStats пересчитывает агрегат целиком из текущего набора голосов.
// Результат детерминирован и не зависит от порядка голосов на входе.
// Голоса без района учитываются только в глобальных счетчиках.
func ComputeStats(votes []models.Vote) models.VoteStats {
	stats := models.ZeroVoteStats()
	for _, v := range votes {
		if v.Value > 0 {
			stats.Upvotes++
		} else {
			stats.Downvotes++
		}
		if v.NeighborhoodID != nil {
			nv := stats.ByNeighborhood[*v.NeighborhoodID]
			if v.Value > 0 {
				nv.Upvotes++
			} else {
				nv.Downvotes++
			}
			stats.ByNeighborhood[*v.NeighborhoodID] = nv
		}
	}
	stats.Total = stats.Upvotes + stats.Downvotes
	return stats
}

// Score вычисляет важность инцидента: локальный консенсус района взвешивается
// сильнее глобального, итог затухает экспоненциально с возрастом.
// Чистая функция без ввода-вывода; "сейчас" передается явно, чтобы тесты
// могли подставлять фиксированное время.
//
// decay = exp(-ageDays / DecayConstantDays) — это e-folding, а не период
// полураспада: при возрасте, равном константе, остаётся ~37%, не 50%.
func Score(stats models.VoteStats, neighborhoodID *uuid.UUID, createdAt time.Time, weights models.ScoreWeights, now time.Time) float64 {
	neighborhoodScore := 0
	if neighborhoodID != nil {
		// Район без единого голоса из него даёт 0, это не ошибка
		nv := stats.ByNeighborhood[*neighborhoodID]
		neighborhoodScore = nv.Upvotes - nv.Downvotes
	}

	globalScore := stats.Upvotes - stats.Downvotes

	rawScore := float64(neighborhoodScore)*weights.NeighborhoodVoteWeight +
		float64(globalScore)*weights.GlobalVoteWeight

	ageDays := now.Sub(createdAt).Hours() / 24
	if ageDays < 0 {
		ageDays = 0
	}

	decayConst := weights.DecayConstantDays
	if decayConst <= 0 {
		decayConst = DefaultWeights().DecayConstantDays
	}
	decay := math.Exp(-ageDays / decayConst)

	return math.Max(0, rawScore*decay)
}

// SortRanked упорядочивает инциденты по убыванию важности, при равенстве —
// более новые первыми
func SortRanked(incidents []*models.Incident) {
	sort.SliceStable(incidents, func(i, j int) bool {
		if incidents[i].ImportanceScore != incidents[j].ImportanceScore {
			return incidents[i].ImportanceScore > incidents[j].ImportanceScore
		}
		return incidents[i].CreatedAt.After(incidents[j].CreatedAt)
	})
}
