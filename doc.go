// Package pnl computes realized profit-and-loss from a chronological stream
// of brokerage trade fills covering stocks, single options, and multi-leg
// option strategies.
//
// The core functionalities include:
//   - Trade classification: deriving a stable match key that groups all
//     fills of the same fungible position (stock symbol, raw option symbol,
//     or a canonicalized strategy signature).
//   - FIFO matching: replaying trades in chronological order against a
//     per-key lot ledger, closing the oldest opposite-side lots first and
//     producing exact decimal realized P&L.
//   - Expiration synthesis: forcing open option positions to settle at
//     price zero once their expiry passes a cutoff date.
//   - Reporting: an ordered per-trade ledger with a running total, plus a
//     snapshot of the remaining open positions.
//
// This package serves as the foundational logic for the `wbpnl` command-line
// tool. All monetary amounts and quantities are exact decimals; the engine
// never uses floating point on the money path.
package pnl
