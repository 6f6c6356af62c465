package pnl

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/qmartel/pnl/date"
)

// ReportRow is one line of the realized-P&L ledger: a real fill, or a
// synthetic expiration that actually closed quantity.
type ReportRow struct {
	Timestamp  time.Time
	Instrument string
	Asset      Asset
	OptionKind string
	Side       Side
	// Quantity is the trade's own quantity for a real trade, and the
	// closed quantity for an Expire trade.
	Quantity  Quantity
	Price     Money
	ClosedQty Quantity
	Realized  Money
	Running   Money
}

// PositionRow summarizes one still-open bucket after replay.
type PositionRow struct {
	Instrument   string
	Asset        Asset
	OptionKind   string
	Side         Side
	Quantity     Quantity
	AveragePrice Money
	Expiry       date.Date
}

// Report is the result of one full replay: the ordered ledger, the open
// positions and the final realized total.
type Report struct {
	AsOf      date.Date
	Rows      []ReportRow
	Positions []PositionRow
	Realized  Money
}

// NewReport computes the realized P&L report for the trades as of the given
// cutoff date. It merges synthetic expirations into the stream, sorts once
// by (timestamp, sequence) and replays the whole stream through the FIFO
// matching engine. Expirations that close nothing are left out of the
// ledger.
func NewReport(trades []Trade, asOf date.Date) *Report {
	all := slices.Clone(trades)
	all = append(all, SyntheticExpirations(trades, asOf)...)
	SortTrades(all)

	report := &Report{AsOf: asOf}
	var positions Positions
	var running Money
	for _, t := range all {
		var realized Money
		var closedQty Quantity
		positions, realized, closedQty = positions.Apply(t)
		if t.Side == Expire && closedQty.IsZero() {
			continue
		}
		running = running.Add(realized)
		displayQty := t.Quantity
		if t.Side == Expire {
			displayQty = closedQty
		}
		report.Rows = append(report.Rows, ReportRow{
			Timestamp:  t.Timestamp,
			Instrument: t.Instrument,
			Asset:      t.Asset,
			OptionKind: t.OptionKind,
			Side:       t.Side,
			Quantity:   displayQty,
			Price:      t.Price,
			ClosedQty:  closedQty,
			Realized:   realized,
			Running:    running,
		})
	}
	report.Realized = running
	report.Positions = positionRows(positions, firstTradeByKey(trades))
	return report
}

// firstTradeByKey indexes the first trade ever seen per match key; it seeds
// the display metadata of open position rows.
func firstTradeByKey(trades []Trade) map[string]Trade {
	index := make(map[string]Trade, len(trades))
	for _, t := range trades {
		if _, ok := index[t.MatchKey]; !ok {
			index[t.MatchKey] = t
		}
	}
	return index
}

// positionRows summarizes every open bucket into a display row, sorted by
// (asset, instrument, side) for deterministic output.
func positionRows(positions Positions, index map[string]Trade) []PositionRow {
	var rows []PositionRow
	for key, lots := range positions {
		total := lots.TotalQuantity()
		if !total.IsPositive() {
			continue
		}
		row := PositionRow{
			Instrument:   key,
			Side:         lots[0].Side,
			Quantity:     total,
			AveragePrice: lots.AveragePrice(),
		}
		if t, ok := index[key]; ok {
			row.Instrument = t.Instrument
			row.Asset = t.Asset
			row.OptionKind = t.OptionKind
			row.Expiry = t.Expiry
		}
		rows = append(rows, row)
	}
	slices.SortFunc(rows, func(a, b PositionRow) int {
		if c := strings.Compare(a.Asset.String(), b.Asset.String()); c != 0 {
			return c
		}
		if c := strings.Compare(a.Instrument, b.Instrument); c != 0 {
			return c
		}
		return cmp.Compare(a.Side, b.Side)
	})
	return rows
}
