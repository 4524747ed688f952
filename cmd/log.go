package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/assetbloc"
	"github.com/etnz/assetbloc/renderer"
	"github.com/google/subcommands"
)

type logCmd struct {
	actor string
	asset int64
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list the transactions in the ledger" }
func (*logCmd) Usage() string {
	return `abc log [-actor <identity>] [-asset <id>]

  Lists the ledger's transactions in application order, optionally filtered by
  actor or asset.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.actor, "actor", "", "Only show transactions by this identity.")
	f.Int64Var(&c.asset, "asset", 0, "Only show transactions scoped to this asset.")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var filters []func(assetbloc.Transaction) bool
	if c.actor != "" {
		filters = append(filters, assetbloc.ByActor(c.actor))
	}
	if c.asset > 0 {
		filters = append(filters, assetbloc.ByAsset(c.asset))
	}

	printMarkdown(renderer.Log(ledger, filters...))
	return subcommands.ExitSuccess
}
