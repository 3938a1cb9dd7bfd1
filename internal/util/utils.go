package util

import (
	"math"

	"github.com/cpusched/cpu-scheduler/internal/core"
)

type Averages struct {
	WaitingTime    float64
	TurnAroundTime float64
	CompletionTime float64
	ResponseTime   float64
}

// CalculateAverage averages the timing fields of results. All averages are 0 for an
// empty slice.
func CalculateAverage(results []core.Result) Averages {
	if len(results) == 0 {
		return Averages{}
	}

	var waitingTimeSum float64
	var turnAroundTimeSum float64
	var completionTimeSum float64
	var responseTimeSum float64

	for _, r := range results {
		waitingTimeSum += r.WaitingTime
		turnAroundTimeSum += r.TurnaroundTime
		completionTimeSum += r.CompletionTime
		responseTimeSum += r.ResponseTime
	}

	count := float64(len(results))
	return Averages{
		WaitingTime:    waitingTimeSum / count,
		TurnAroundTime: turnAroundTimeSum / count,
		CompletionTime: completionTimeSum / count,
		ResponseTime:   responseTimeSum / count,
	}
}

// maxFractional bounds the magnitudes that can still carry a fractional part.
const maxFractional = 1 << 53

// Round2 rounds v to two decimal places, halves away from zero. Values too large to
// have a fractional part are returned unchanged, so scaling never overflows.
func Round2(v float64) float64 {
	if math.Abs(v) >= maxFractional || math.IsNaN(v) {
		return v
	}
	return math.Round(v*100) / 100
}

// Ratio returns num/den, or 0 when den is 0.
func Ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
