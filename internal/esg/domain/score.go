package domain

// ScoreReport is the opaque result of an engine run. Scores are computed by
// the backend; the server only relays them.
type ScoreReport struct {
	PillarScores map[string]float64
	FinalScore   float64
}
