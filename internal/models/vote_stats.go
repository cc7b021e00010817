package models

import "github.com/google/uuid"

// NeighborhoodVotes — голоса "за" и "против" из одного района
type NeighborhoodVotes struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
}

// VoteStats — денормализованный агрегат голосов по инциденту.
// Это материализованное представление журнала голосов: оно всегда
// пересчитывается целиком из текущего набора Vote и никогда не
// патчится инкрементально. Инвариант: Total == Upvotes + Downvotes.
type VoteStats struct {
	Total          int                              `json:"total"`
	Upvotes        int                              `json:"upvotes"`
	Downvotes      int                              `json:"downvotes"`
	ByNeighborhood map[uuid.UUID]NeighborhoodVotes `json:"by_neighborhood,omitempty"`
}

// ZeroVoteStats возвращает пустой агрегат для только что созданного инцидента
func ZeroVoteStats() VoteStats {
	return VoteStats{ByNeighborhood: map[uuid.UUID]NeighborhoodVotes{}}
}
