// Package webull ingests Webull CSV order exports and normalizes their rows
// into pnl.Trade records.
//
// The feed is best effort: rows that are not filled orders, or that miss a
// usable side, quantity, price or timestamp, are silently dropped. Files
// whose name contains "Options" additionally group multi-leg strategy
// orders: a parent row carries the free-text order name and no symbol, and
// the sibling rows sharing its "Placed Time" are its legs.
package webull

import (
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/qmartel/pnl"
	"github.com/qmartel/pnl/date"
	"github.com/shopspring/decimal"
)

// Row is one raw CSV row keyed by (trimmed) header name.
type Row map[string]string

// Normalizer converts raw rows into trades, assigning strictly increasing
// sequence numbers across everything it processes. The zero value starts
// numbering at 1.
type Normalizer struct {
	seq int64
}

// LoadDir discovers every .csv file under dir (recursively, in sorted path
// order) and normalizes their rows into a single trade list.
func LoadDir(dir string) ([]pnl.Trade, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".csv" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %q: %w", dir, err)
	}
	slices.Sort(paths)

	var n Normalizer
	var trades []pnl.Trade
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		rows, err := ReadRows(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		trades = append(trades, n.File(filepath.Base(path), rows)...)
	}
	return trades, nil
}

// ReadRows parses a CSV stream into header-keyed rows. Header cells are
// trimmed; ragged records are tolerated. A stream without the "Side" and
// "Filled" columns is not an order export and yields no rows.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if !slices.Contains(header, "Side") || !slices.Contains(header, "Filled") {
		return nil, nil
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(Row, len(header))
		for i, h := range header {
			if i < len(record) {
				row[h] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// File normalizes the rows of one export file. The file name decides the
// classification mode: names containing "Options" hold option and strategy
// orders, everything else holds stock orders.
func (n *Normalizer) File(name string, rows []Row) []pnl.Trade {
	if strings.Contains(name, "Options") {
		return n.optionsFile(rows)
	}
	return n.stockFile(rows)
}

func (n *Normalizer) stockFile(rows []Row) []pnl.Trade {
	var trades []pnl.Trade
	for _, row := range rows {
		c, ok := coreFields(row)
		if !ok {
			continue
		}
		symbol := strings.TrimSpace(row["Symbol"])
		if symbol == "" {
			continue
		}
		trades = append(trades, pnl.Trade{
			Seq:        n.next(),
			Timestamp:  c.timestamp,
			Instrument: symbol,
			MatchKey:   "stock:" + symbol,
			Asset:      pnl.Stock,
			Side:       c.side,
			Quantity:   pnl.Q(c.qty),
			Price:      pnl.M(c.price),
			Multiplier: pnl.Stock.Multiplier(),
		})
	}
	return trades
}

func (n *Normalizer) optionsFile(rows []Row) []pnl.Trade {
	// Parent strategy rows carry a name and no symbol; their placed time
	// identifies the sibling leg rows.
	parentTimes := make(map[string]bool)
	for _, row := range rows {
		name := strings.TrimSpace(row["Name"])
		symbol := strings.TrimSpace(row["Symbol"])
		placed := strings.TrimSpace(row["Placed Time"])
		if name != "" && symbol == "" && placed != "" {
			parentTimes[placed] = true
		}
	}
	meta := strategyMetaByPlaced(rows, parentTimes)

	var trades []pnl.Trade
	for _, row := range rows {
		c, ok := coreFields(row)
		if !ok {
			continue
		}
		name := strings.TrimSpace(row["Name"])
		symbol := strings.TrimSpace(row["Symbol"])
		placed := strings.TrimSpace(row["Placed Time"])

		if name != "" && symbol == "" {
			trades = append(trades, n.strategyTrade(name, c, meta[placed]))
			continue
		}
		if parentTimes[placed] && name == "" {
			// Leg of an identified strategy: consumed by the parent,
			// never classified as a single option.
			continue
		}
		if symbol != "" {
			trades = append(trades, n.optionTrade(symbol, c))
		}
	}
	return trades
}

// next returns the next sequence number.
func (n *Normalizer) next() int64 {
	n.seq++
	return n.seq
}

// core holds the fields every accepted row must provide.
type core struct {
	side      pnl.Side
	qty       decimal.Decimal
	price     decimal.Decimal
	timestamp time.Time
}

// coreFields extracts and validates the common fields of a row. It reports
// false for any row that must be dropped: not filled, unusable side,
// non-positive quantity, unparseable price, or no usable timestamp.
func coreFields(row Row) (core, bool) {
	status := strings.ToLower(strings.TrimSpace(row["Status"]))
	if status != "" && status != "filled" {
		return core{}, false
	}
	side, err := pnl.ParseSide(row["Side"])
	if err != nil {
		return core{}, false
	}
	qty, ok := parseDecimal(row["Filled"])
	if !ok || !qty.IsPositive() {
		return core{}, false
	}
	priceField := row["Avg Price"]
	if priceField == "" {
		priceField = row["Price"]
	}
	price, ok := parseDecimal(priceField)
	if !ok {
		return core{}, false
	}
	timeField := row["Filled Time"]
	if timeField == "" {
		timeField = row["Placed Time"]
	}
	timestamp, ok := parseTime(timeField)
	if !ok {
		return core{}, false
	}
	return core{side: side, qty: qty, price: price, timestamp: timestamp}, true
}

// strategyMeta is the structural identity of one strategy order, collected
// from its leg rows.
type strategyMeta struct {
	root   string
	expiry date.Date
	legs   []pnl.Leg
}

// strategyMetaByPlaced collects strategy metadata from leg rows, keyed by
// the parent's placed time. The first parseable leg fixes root and expiry;
// later legs that disagree are not reconciled.
func strategyMetaByPlaced(rows []Row, parentTimes map[string]bool) map[string]*strategyMeta {
	meta := make(map[string]*strategyMeta)
	for _, row := range rows {
		placed := strings.TrimSpace(row["Placed Time"])
		symbol := strings.TrimSpace(row["Symbol"])
		if !parentTimes[placed] || symbol == "" {
			continue
		}
		sym, ok := pnl.ParseOptionSymbol(symbol)
		if !ok {
			continue
		}
		m := meta[placed]
		if m == nil {
			m = &strategyMeta{}
			meta[placed] = m
		}
		if m.root == "" {
			m.root = sym.Root
		}
		if m.expiry.IsZero() {
			m.expiry = sym.Expiry
		}
		m.legs = append(m.legs, pnl.Leg{Flag: sym.Flag, Strike: sym.Strike})
	}
	return meta
}

func (n *Normalizer) strategyTrade(name string, c core, meta *strategyMeta) pnl.Trade {
	if meta == nil {
		meta = &strategyMeta{}
	}
	kind := pnl.StrategyKind(name)
	return pnl.Trade{
		Seq:        n.next(),
		Timestamp:  c.timestamp,
		Instrument: pnl.StrategyDisplay(name, meta.root, meta.expiry),
		MatchKey:   pnl.StrategyKey(name, kind, meta.root, meta.expiry, meta.legs),
		Asset:      pnl.OptionStrategy,
		OptionKind: kind,
		Side:       c.side,
		Quantity:   pnl.Q(c.qty),
		Price:      pnl.M(c.price),
		Multiplier: pnl.OptionStrategy.Multiplier(),
		Expiry:     meta.expiry,
	}
}

func (n *Normalizer) optionTrade(symbol string, c core) pnl.Trade {
	trade := pnl.Trade{
		Seq:        n.next(),
		Timestamp:  c.timestamp,
		Instrument: symbol,
		MatchKey:   "option:" + symbol,
		Asset:      pnl.Option,
		OptionKind: "Option",
		Side:       c.side,
		Quantity:   pnl.Q(c.qty),
		Price:      pnl.M(c.price),
		Multiplier: pnl.Option.Multiplier(),
	}
	if sym, ok := pnl.ParseOptionSymbol(symbol); ok {
		trade.Instrument = sym.Display()
		trade.OptionKind = sym.Kind()
		trade.Expiry = sym.Expiry
	}
	return trade
}
