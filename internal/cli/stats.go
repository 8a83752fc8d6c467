package cli

import (
	"strings"

	"daybook/internal/ledger"
)

const barWidth = 20

// renderBreakdown prints per-category income and expense totals.
func renderBreakdown(groups []ledger.CategoryBreakdown) {
	printlnFn("Income / expense by category:")
	for _, g := range groups {
		printfFn("  %s  income %.2f  expense %.2f\n", g.Category, g.Income, g.Expense)
	}
}

// renderDistribution prints the expense distribution as percentages of the
// total with a proportional bar, largest first.
func renderDistribution(dist []ledger.CategoryTotal) {
	if len(dist) == 0 {
		return
	}

	var total float64
	for _, d := range dist {
		total += d.Total
	}

	printlnFn("Expense distribution:")
	max := dist[0].Total
	for _, d := range dist {
		percent := 0.0
		if total > 0 {
			percent = d.Total / total * 100
		}
		width := 0
		if max > 0 {
			width = int(d.Total / max * barWidth)
		}
		printfFn("  %-6s %8.2f  %5.1f%%  %s\n", d.Category, d.Total, percent, strings.Repeat("#", width))
	}
}
