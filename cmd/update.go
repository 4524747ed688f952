package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/assetbloc"
	"github.com/google/subcommands"
)

type updateCmd struct {
	feeds string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "refresh asset values from appraisal feeds" }
func (*updateCmd) Usage() string {
	return `abc -as <identity> update -feeds <file>

  Fetches the latest appraisal for each configured feed and records the new
  asset values. Restricted to the administrator.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.feeds, "feeds", "feeds.json", "Valuation feed definitions (JSON)")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	actor, err := identity()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	feeds, err := assetbloc.LoadFeeds(c.feeds)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ledger.UpdateValuations(actor, feeds); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: some feeds failed: %v\n", err)
	}
	if err := assetbloc.SaveLedger(*dataPath, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated valuations in ledger %q\n", ledger.Name())
	return subcommands.ExitSuccess
}
