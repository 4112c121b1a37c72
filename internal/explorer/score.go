package explorer

import (
	"strconv"
	"strings"

	"github.com/HerbHall/motorscope/pkg/catalog"
)

// innovationBonus is added to the innovation score per listed innovation.
// The bonus is not capped, so scores can exceed 10.
const innovationBonus = 0.05

// Score returns the ranking value of e under mode.
func Score(e *catalog.Engine, mode PriorityMode) float64 {
	switch mode {
	case Performance:
		return e.PerformanceScore
	case Efficiency:
		return e.EfficiencyScore
	default:
		return (e.PerformanceScore+e.EfficiencyScore)/2 + float64(len(e.Innovations))*innovationBonus
	}
}

// FormatScore renders a score with one decimal and a French decimal comma.
func FormatScore(score float64) string {
	return strings.Replace(strconv.FormatFloat(score, 'f', 1, 64), ".", ",", 1)
}
