package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/assetbloc/renderer"
	"github.com/google/subcommands"
)

// --- Assets Command ---

type assetsCmd struct{}

func (*assetsCmd) Name() string             { return "assets" }
func (*assetsCmd) Synopsis() string         { return "list the registered assets" }
func (*assetsCmd) SetFlags(f *flag.FlagSet) {}
func (*assetsCmd) Usage() string {
	return `abc assets

  Lists all registered assets with their values, rents and occupants.
`
}

func (c *assetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	assets := slices.Collect(ledger.Assets())
	printMarkdown(renderer.Assets(assets))
	return subcommands.ExitSuccess
}

// --- Asset Command ---

type assetCmd struct {
	id int64
}

func (*assetCmd) Name() string     { return "asset" }
func (*assetCmd) Synopsis() string { return "show one asset and its shareholders" }
func (*assetCmd) Usage() string {
	return `abc asset -id <id>

  Shows the asset's registered record, remaining supply and shareholders.
`
}

func (c *assetCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Asset id")
}

func (c *assetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	report, err := ledger.AssetReport(c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AssetReport(report))
	return subcommands.ExitSuccess
}

// --- Balance Command ---

type balanceCmd struct {
	of string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show an account statement" }
func (*balanceCmd) Usage() string {
	return `abc -as <identity> balance [-of <identity>]

  Shows the account's cash balance and holdings. Defaults to the identity
  running the command.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.of, "of", "", "Account to report on, defaults to the current identity")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	addr := c.of
	if addr == "" {
		var err error
		if addr, err = identity(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	statement, err := ledger.Statement(addr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Statement(statement))
	return subcommands.ExitSuccess
}

// --- Owners Command ---

type ownersCmd struct {
	asset int64
}

func (*ownersCmd) Name() string     { return "owners" }
func (*ownersCmd) Synopsis() string { return "list the shareholders of an asset" }
func (*ownersCmd) Usage() string {
	return `abc owners -asset <id>

  Lists the asset's shareholders with their share counts.
`
}

func (c *ownersCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.asset, "asset", 0, "Asset id")
}

func (c *ownersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.asset <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	owners, err := ledger.AssetOwners(c.asset)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Owners(owners))
	return subcommands.ExitSuccess
}

// --- RentDue Command ---

type rentDueCmd struct {
	asset int64
}

func (*rentDueCmd) Name() string     { return "rent-due" }
func (*rentDueCmd) Synopsis() string { return "show the rent the current occupant owes" }
func (*rentDueCmd) Usage() string {
	return `abc -as <identity> rent-due -asset <id>

  Shows the rent the asset's occupant owes per period. The asset must be
  occupied and the identity must be one of its shareholders.
`
}

func (c *rentDueCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.asset, "asset", 0, "Asset id")
}

func (c *rentDueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	actor, err := identity()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if c.asset <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	due, err := ledger.RentDue(actor, c.asset)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	renter, _, _ := ledger.Occupant(c.asset)
	fmt.Printf("Asset %d is rented by %s for %s per period.\n", c.asset, renter, due)
	return subcommands.ExitSuccess
}

// --- Audit Command ---

type auditCmd struct{}

func (*auditCmd) Name() string             { return "audit" }
func (*auditCmd) Synopsis() string         { return "audit the vault against the accounts" }
func (*auditCmd) SetFlags(f *flag.FlagSet) {}
func (*auditCmd) Usage() string {
	return `abc -as <identity> audit

  Reports the vault balance against the sum of account balances and checks
  every asset's supply. Restricted to the administrator.
`
}

func (c *auditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	actor, err := identity()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	report, err := ledger.Audit(actor)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Audit(report))
	return subcommands.ExitSuccess
}
