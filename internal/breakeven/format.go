package breakeven

import (
	"fmt"
	"strings"
)

// FormatResult renders one solver result for the console.
func FormatResult(r *Result) string {
	var b strings.Builder

	b.WriteString("BREAK-EVEN ANALYSIS\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")

	switch r.Dimension {
	case DimensionOccupancy:
		fmt.Fprintf(&b, "Minimum occupancy: %s%%\n", r.Value.Round(2))
	case DimensionRent:
		fmt.Fprintf(&b, "Minimum monthly rent: ¥%s\n", r.Value.Round(0))
	case DimensionPrice:
		fmt.Fprintf(&b, "Maximum purchase price: ¥%s\n", r.Value.Round(0))
	}

	fmt.Fprintf(&b, "Cumulative cash flow at break-even: ¥%s\n", r.AchievedCumulative.Round(0))
	fmt.Fprintf(&b, "Iterations: %d\n", r.Iterations)
	if !r.Converged {
		b.WriteString("Warning: search hit the iteration cap before converging\n")
	}
	return b.String()
}
