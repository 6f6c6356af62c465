package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/qmartel/pnl/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	dataDir string
	asOf    string
	format  string
	plain   bool
}

func (*reportCmd) Name() string { return "report" }
func (*reportCmd) Synopsis() string {
	return "realized P&L ledger, open positions and final total"
}
func (*reportCmd) Usage() string {
	return `wbpnl report [-data-dir <dir>] [-as-of <date>] [-format md|json] [-plain]

  Replays every order export under the data directory in chronological
  order and prints the per-trade realized P&L ledger, the remaining open
  positions and the final realized total. Option positions whose expiry is
  on or before the as-of date are settled at price zero.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dataDir, "data-dir", defaultDataDir(), "Directory scanned recursively for Webull CSV exports")
	f.StringVar(&c.asOf, "as-of", "", "Include expirations on or before this date (YYYY-MM-DD, defaults to today)")
	f.StringVar(&c.format, "format", "md", "Output format (md, json)")
	f.BoolVar(&c.plain, "plain", false, "Disable terminal styling of the markdown output")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := computeReport(c.dataDir, c.asOf)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch c.format {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(data))
	case "md":
		renderMarkdown(os.Stdout, renderer.ReportMarkdown(report), c.plain)
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q, want md or json\n", c.format)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
