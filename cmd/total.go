package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// totalCmd holds the flags for the 'total' subcommand.
type totalCmd struct {
	dataDir string
	asOf    string
}

func (*totalCmd) Name() string     { return "total" }
func (*totalCmd) Synopsis() string { return "final realized P&L total only" }
func (*totalCmd) Usage() string {
	return `wbpnl total [-data-dir <dir>] [-as-of <date>]

  Prints only the final realized P&L total, for scripting.
`
}

func (c *totalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dataDir, "data-dir", defaultDataDir(), "Directory scanned recursively for Webull CSV exports")
	f.StringVar(&c.asOf, "as-of", "", "Include expirations on or before this date (YYYY-MM-DD, defaults to today)")
}

func (c *totalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := computeReport(c.dataDir, c.asOf)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(report.Realized.SignedString())
	return subcommands.ExitSuccess
}
