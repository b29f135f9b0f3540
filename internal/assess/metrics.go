package assess

// Metrics are the five composite 0-100 scores derived from tier counts.
// They are heuristic summaries tuned for the report's radar presentation,
// not statistically derived measurements. The coefficients are an external
// contract: downstream consumers compare scores across reports, so any
// change here changes externally visible numbers.
type Metrics struct {
	DataProtection     int
	AccessControl      int
	SecurityMonitoring int
	Privacy            int
	Encryption         int
}

// Synthesize derives the composite metrics from the tier counts and the
// number of classified sensitivities. Every score is clamped to [0, 100].
func Synthesize(counts TierCounts, sensitivityCount int) Metrics {
	return Metrics{
		DataProtection:     clampScore(counts.High*30 + 50),
		AccessControl:      clampScore(counts.Medium*20 + 60),
		SecurityMonitoring: clampScore(counts.Low*10 + 70),
		Privacy:            clampScore(sensitivityCount*15 + 55),
		Encryption:         clampScore(counts.High*25 + 45),
	}
}

func clampScore(n int) int {
	if n > 100 {
		return 100
	}
	if n < 0 {
		return 0
	}
	return n
}
