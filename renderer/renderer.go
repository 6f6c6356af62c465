// Package renderer turns computed P&L reports into markdown for display.
package renderer

import (
	"fmt"
	"strings"

	"github.com/qmartel/pnl"
)

// timestampFormat is how ledger timestamps appear in the report.
const timestampFormat = "2006-01-02 15:04:05"

// ReportMarkdown renders the full report: the per-trade realized P&L
// ledger, the open positions and the final running total.
func ReportMarkdown(r *pnl.Report) string {
	var b strings.Builder
	b.WriteString(TransactionsMarkdown(r.Rows))
	b.WriteString("\n")
	if len(r.Positions) > 0 {
		b.WriteString(PositionsMarkdown(r.Positions))
	} else {
		b.WriteString("No open positions.\n")
	}
	fmt.Fprintf(&b, "\n**Final realized P&L:** %s\n", formatPnL(r.Realized))
	return b.String()
}

// TransactionsMarkdown renders the realized P&L ledger table.
func TransactionsMarkdown(rows []pnl.ReportRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Realized P&L by Transaction\n\n")
	fmt.Fprintln(&b, "| Date | Instrument | Asset | Option | Side | Qty | Price | Closed Qty | Realized P&L | Running P&L |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|:---|---:|---:|---:|---:|---:|")
	for _, row := range rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			row.Timestamp.Format(timestampFormat),
			row.Instrument,
			row.Asset,
			orDash(row.OptionKind),
			row.Side,
			row.Quantity,
			formatPrice(row.Price, row.Asset),
			row.ClosedQty,
			formatPnL(row.Realized),
			formatPnL(row.Running),
		)
	}
	return b.String()
}

// PositionsMarkdown renders the open positions table.
func PositionsMarkdown(rows []pnl.PositionRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Open Positions\n\n")
	fmt.Fprintln(&b, "| Instrument | Asset | Option | Side | Qty | Avg Price | Expiry |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|---:|---:|---:|")
	for _, row := range rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			row.Instrument,
			row.Asset,
			orDash(row.OptionKind),
			row.Side,
			row.Quantity,
			formatPrice(row.AveragePrice, row.Asset),
			formatExpiry(row.Expiry),
		)
	}
	return b.String()
}
