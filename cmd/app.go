// Package cmd implements the CLI application reporting realized P&L from
// Webull order exports.
package cmd

import (
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/qmartel/pnl"
	"github.com/qmartel/pnl/date"
	"github.com/qmartel/pnl/webull"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&positionsCmd{}, "reports")
	c.Register(&totalCmd{}, "reports")
}

// defaultDataDir resolves the data directory default, overridable through
// the environment so a .env file can point at the export folder.
func defaultDataDir() string {
	if dir := os.Getenv("WBPNL_DATA_DIR"); dir != "" {
		return dir
	}
	return "data"
}

// computeReport loads every export under dataDir and replays it as of the
// given cutoff date.
func computeReport(dataDir, asOf string) (*pnl.Report, error) {
	cutoff := date.Today()
	if asOf != "" {
		var err error
		cutoff, err = date.Parse(asOf)
		if err != nil {
			return nil, fmt.Errorf("invalid -as-of date: %w", err)
		}
	}
	trades, err := webull.LoadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("loading trades from %q: %w", dataDir, err)
	}
	return pnl.NewReport(trades, cutoff), nil
}
