package scoring

import (
	"fmt"
	"math"
	"strings"
)

// explain renders the per-factor breakdown. The cycle warning is attached to
// every task whenever the batch contains any cycle, not only to cycle members.
func (f factors) explain(blocks int, hasCycles bool) string {
	bits := []string{
		fmt.Sprintf("Urgency: %d%%", percent(f.urgency)),
		fmt.Sprintf("Importance: %d%%", percent(f.importance)),
		fmt.Sprintf("Effort advantage: %d%%", percent(f.effort)),
		fmt.Sprintf("Blocks %d other task(s)", blocks),
	}
	if hasCycles {
		bits = append(bits, CycleWarning)
	}
	return strings.Join(bits, explanationSep)
}

func percent(v float64) int {
	return int(math.RoundToEven(v * 100))
}
