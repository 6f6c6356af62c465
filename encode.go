package pnl

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonObjectWriter helps construct a JSON object with a specific field order.
// Its zero value is ready to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append marshals the value and appends it to the object under the given key.
func (w *jsonObjectWriter) Append(key string, v any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	data, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal field %q: %w", key, err)
		return w
	}
	fmt.Fprintf(w, "%q:%s,", key, data)
	return w
}

// Optional appends a string field only when the value is non-empty.
func (w *jsonObjectWriter) Optional(key, value string) *jsonObjectWriter {
	if value == "" {
		return w
	}
	return w.Append(key, value)
}

// MarshalJSON closes the object, trimming the trailing field separator.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	body := bytes.TrimSuffix(w.Bytes(), []byte(","))
	return append(append([]byte("{"), body...), '}'), nil
}

// jsonTimestampFormat keeps ledger timestamps human readable in exports.
const jsonTimestampFormat = "2006-01-02 15:04:05"

func (r ReportRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("timestamp", r.Timestamp.Format(jsonTimestampFormat))
	w.Append("instrument", r.Instrument)
	w.Append("asset", r.Asset.String())
	w.Optional("optionKind", r.OptionKind)
	w.Append("side", r.Side.String())
	w.Append("quantity", r.Quantity)
	w.Append("price", r.Price)
	w.Append("closedQuantity", r.ClosedQty)
	w.Append("realized", r.Realized)
	w.Append("running", r.Running)
	return w.MarshalJSON()
}

func (r PositionRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("instrument", r.Instrument)
	w.Append("asset", r.Asset.String())
	w.Optional("optionKind", r.OptionKind)
	w.Append("side", r.Side.String())
	w.Append("quantity", r.Quantity)
	w.Append("averagePrice", r.AveragePrice)
	if !r.Expiry.IsZero() {
		w.Append("expiry", r.Expiry)
	}
	return w.MarshalJSON()
}

func (r *Report) MarshalJSON() ([]byte, error) {
	rows := r.Rows
	if rows == nil {
		rows = []ReportRow{}
	}
	positions := r.Positions
	if positions == nil {
		positions = []PositionRow{}
	}
	var w jsonObjectWriter
	w.Append("asOf", r.AsOf)
	w.Append("trades", rows)
	w.Append("positions", positions)
	w.Append("realized", r.Realized)
	return w.MarshalJSON()
}

var _ json.Marshaler = (*Report)(nil)
