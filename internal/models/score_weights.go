package models

// ScoreWeights — настраиваемые на уровне муниципалитета коэффициенты ранжирования.
// DecayConstantDays — возраст в днях, при котором множитель затухания достигает
// 1/e (e-folding, не период полураспада).
type ScoreWeights struct {
	NeighborhoodVoteWeight float64 `json:"neighborhood_vote_weight"`
	GlobalVoteWeight       float64 `json:"global_vote_weight"`
	DecayConstantDays      float64 `json:"decay_constant_days"`
}
