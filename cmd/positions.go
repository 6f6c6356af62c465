package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/qmartel/pnl/renderer"
)

// positionsCmd holds the flags for the 'positions' subcommand.
type positionsCmd struct {
	dataDir string
	asOf    string
	plain   bool
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "open positions snapshot" }
func (*positionsCmd) Usage() string {
	return `wbpnl positions [-data-dir <dir>] [-as-of <date>] [-plain]

  Prints the positions still open after replaying every order export,
  with their quantity and average entry price.
`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dataDir, "data-dir", defaultDataDir(), "Directory scanned recursively for Webull CSV exports")
	f.StringVar(&c.asOf, "as-of", "", "Include expirations on or before this date (YYYY-MM-DD, defaults to today)")
	f.BoolVar(&c.plain, "plain", false, "Disable terminal styling of the markdown output")
}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := computeReport(c.dataDir, c.asOf)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if len(report.Positions) == 0 {
		fmt.Println("No open positions.")
		return subcommands.ExitSuccess
	}
	renderMarkdown(os.Stdout, renderer.PositionsMarkdown(report.Positions), c.plain)
	return subcommands.ExitSuccess
}
