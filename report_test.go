package pnl

import (
	"testing"

	"github.com/qmartel/pnl/date"
)

func TestNewReport_StockRoundTrip(t *testing.T) {
	trades := []Trade{
		stockTrade(1, "2025-01-02 09:30:00", "ABC", Buy, 10, 5),
		stockTrade(2, "2025-01-02 10:00:00", "ABC", Sell, 4, 7),
		stockTrade(3, "2025-01-03 10:00:00", "ABC", Sell, 6, 6),
	}

	report := NewReport(trades, date.MustParse("2025-02-01"))

	if len(report.Rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(report.Rows))
	}
	if got := report.Rows[1]; !got.Realized.Equal(M(8)) || !got.ClosedQty.Equal(Q(4)) {
		t.Errorf("partial sell realized %s closed %s, want +$8.00 / 4", got.Realized, got.ClosedQty)
	}
	if got := report.Rows[2]; !got.Realized.Equal(M(6)) || !got.Running.Equal(M(14)) {
		t.Errorf("final sell realized %s running %s, want +$6.00 / +$14.00", got.Realized, got.Running)
	}
	if !report.Realized.Equal(M(14)) {
		t.Errorf("total = %s, want %s", report.Realized, M(14))
	}
	if len(report.Positions) != 0 {
		t.Errorf("positions = %+v, want none", report.Positions)
	}
}

func TestNewReport_OpenPositionAveragePrice(t *testing.T) {
	trades := []Trade{
		stockTrade(1, "2025-01-02 09:30:00", "ABC", Buy, 10, 5),
		stockTrade(2, "2025-01-02 10:00:00", "ABC", Sell, 4, 7),
		stockTrade(3, "2025-01-03 10:00:00", "ABC", Buy, 2, 8),
	}

	report := NewReport(trades, date.MustParse("2025-02-01"))

	if len(report.Positions) != 1 {
		t.Fatalf("positions = %+v, want one row", report.Positions)
	}
	pos := report.Positions[0]
	if pos.Instrument != "ABC" || pos.Side != Buy {
		t.Errorf("position = %+v", pos)
	}
	if !pos.Quantity.Equal(Q(8)) {
		t.Errorf("quantity = %s, want 8", pos.Quantity)
	}
	// (6*5 + 2*8) / 8 = 5.75
	if !pos.AveragePrice.Equal(M(5.75)) {
		t.Errorf("average price = %s, want %s", pos.AveragePrice, M(5.75))
	}
}

func TestNewReport_OptionExpires(t *testing.T) {
	june := date.MustParse("2025-06-20")
	trades := []Trade{
		optionTrade(1, "2025-06-02 10:00:00", "XYZ250620C00010000", Buy, 1, 2.50, june),
	}

	report := NewReport(trades, date.MustParse("2025-07-01"))

	if len(report.Rows) != 2 {
		t.Fatalf("got %d rows, want buy + expire", len(report.Rows))
	}
	exp := report.Rows[1]
	if exp.Side != Expire {
		t.Fatalf("second row side = %v, want Expire", exp.Side)
	}
	if !exp.Realized.Equal(M(-250)) {
		t.Errorf("expire realized = %s, want %s", exp.Realized, M(-250))
	}
	if !exp.Quantity.Equal(Q(1)) || !exp.ClosedQty.Equal(Q(1)) {
		t.Errorf("expire row quantities = %s/%s, want closed quantity 1", exp.Quantity, exp.ClosedQty)
	}
	if !report.Realized.Equal(M(-250)) {
		t.Errorf("total = %s, want %s", report.Realized, M(-250))
	}
	if len(report.Positions) != 0 {
		t.Errorf("positions = %+v, want cleared", report.Positions)
	}
}

func TestNewReport_NoopExpirationInvisible(t *testing.T) {
	june := date.MustParse("2025-06-20")
	trades := []Trade{
		optionTrade(1, "2025-06-02 10:00:00", "XYZ250620C00010000", Buy, 1, 2.50, june),
		optionTrade(2, "2025-06-03 10:00:00", "XYZ250620C00010000", Sell, 1, 3.00, june),
	}

	report := NewReport(trades, date.MustParse("2025-07-01"))

	// The position was flat before expiry: the synthetic trade closes
	// nothing and must not appear in the ledger.
	if len(report.Rows) != 2 {
		t.Fatalf("got %d rows, want 2 real ones", len(report.Rows))
	}
	for _, row := range report.Rows {
		if row.Side == Expire {
			t.Errorf("no-op expiration emitted: %+v", row)
		}
	}
	// (3.00 - 2.50) * 1 * 100
	if !report.Realized.Equal(M(50)) {
		t.Errorf("total = %s, want %s", report.Realized, M(50))
	}
}

func TestNewReport_ExpirationSettlesAfterSameDayActivity(t *testing.T) {
	june := date.MustParse("2025-06-20")
	trades := []Trade{
		optionTrade(1, "2025-06-02 10:00:00", "XYZ250620C00010000", Buy, 2, 2.50, june),
		// Sold on the expiry day itself: the sale must settle before the
		// synthetic expiration does.
		optionTrade(2, "2025-06-20 15:59:00", "XYZ250620C00010000", Sell, 1, 4.00, june),
	}

	report := NewReport(trades, june)

	if len(report.Rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(report.Rows))
	}
	last := report.Rows[2]
	if last.Side != Expire || !last.ClosedQty.Equal(Q(1)) {
		t.Errorf("last row = %+v, want Expire closing the remaining 1", last)
	}
	// (4.00-2.50)*1*100 - 2.50*1*100
	if !report.Realized.Equal(M(-100)) {
		t.Errorf("total = %s, want %s", report.Realized, M(-100))
	}
}

func TestNewReport_TimestampTieBrokenBySeq(t *testing.T) {
	trades := []Trade{
		stockTrade(2, "2025-01-02 09:30:00", "ABC", Sell, 5, 6),
		stockTrade(1, "2025-01-02 09:30:00", "ABC", Buy, 5, 5),
	}

	report := NewReport(trades, date.MustParse("2025-02-01"))

	if report.Rows[0].Side != Buy {
		t.Fatal("lower sequence should replay first on identical timestamps")
	}
	if !report.Realized.Equal(M(5)) {
		t.Errorf("total = %s, want %s", report.Realized, M(5))
	}
}

func TestNewReport_PositionsSorted(t *testing.T) {
	september := date.MustParse("2025-09-19")
	trades := []Trade{
		stockTrade(1, "2025-01-02 09:30:00", "ZZZ", Buy, 1, 1),
		stockTrade(2, "2025-01-02 09:31:00", "AAA", Buy, 1, 1),
		optionTrade(3, "2025-01-02 09:32:00", "AAPL250919C00190000", Buy, 1, 2, september),
	}

	report := NewReport(trades, date.MustParse("2025-02-01"))

	if len(report.Positions) != 3 {
		t.Fatalf("positions = %+v, want 3 rows", report.Positions)
	}
	// Assets sort alphabetically ("Option" < "Stock"), instruments within.
	if report.Positions[0].Asset != Option {
		t.Errorf("first position = %+v, want the option", report.Positions[0])
	}
	if report.Positions[1].Instrument != "AAA" || report.Positions[2].Instrument != "ZZZ" {
		t.Errorf("stocks out of order: %+v", report.Positions[1:])
	}
}

func TestNewReport_Empty(t *testing.T) {
	report := NewReport(nil, date.Today())
	if len(report.Rows) != 0 || len(report.Positions) != 0 {
		t.Errorf("report = %+v, want empty", report)
	}
	if !report.Realized.IsZero() {
		t.Errorf("total = %s, want zero", report.Realized)
	}
}
