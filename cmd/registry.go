package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/assetbloc"
	"github.com/google/subcommands"
)

// --- AddAsset Command ---

type addAssetCmd struct {
	date     string
	name     string
	location string
	value    float64
	param    int64
	rent     float64
	memo     string
}

func (*addAssetCmd) Name() string     { return "add-asset" }
func (*addAssetCmd) Synopsis() string { return "register a new asset" }
func (*addAssetCmd) Usage() string {
	return `abc -as <identity> add-asset -name <name> -value <value> -rent <rent> [-location <location>] [-param <n>] [-d <date>] [-m <memo>]

  Registers a new asset divided into 100 shares sold against its value.
  Restricted to the administrator.
`
}

func (c *addAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.name, "name", "", "Asset name")
	f.StringVar(&c.location, "location", "", "Asset location")
	f.Float64Var(&c.value, "value", 0, "Asset value, in the ledger currency")
	f.Int64Var(&c.param, "param", 0, "Opaque registration parameter")
	f.Float64Var(&c.rent, "rent", 0, "Rent per period, in the ledger currency")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

func (c *addAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	actor, err := identity()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if c.name == "" || c.value <= 0 || c.rent < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	tx := assetbloc.NewAddAsset(day, c.memo, actor, c.name, c.location,
		assetbloc.M(c.value, ""), c.param, assetbloc.M(c.rent, ""))
	return applyAndSave(tx)
}

// --- EditAsset Command ---

type editAssetCmd struct {
	date     string
	asset    int64
	name     string
	location string
	value    float64
	param    int64
	rent     float64
	memo     string
}

func (*editAssetCmd) Name() string     { return "edit-asset" }
func (*editAssetCmd) Synopsis() string { return "edit a registered asset" }
func (*editAssetCmd) Usage() string {
	return `abc -as <identity> edit-asset -asset <id> [-name <name>] [-location <location>] [-value <value>] [-param <n>] [-rent <rent>] [-d <date>] [-m <memo>]

  Updates a registered asset. Omitted fields keep their current values.
  Restricted to the administrator.
`
}

func (c *editAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD)")
	f.Int64Var(&c.asset, "asset", 0, "Asset id")
	f.StringVar(&c.name, "name", "", "New asset name")
	f.StringVar(&c.location, "location", "", "New asset location")
	f.Float64Var(&c.value, "value", 0, "New asset value, in the ledger currency")
	f.Int64Var(&c.param, "param", 0, "New registration parameter")
	f.Float64Var(&c.rent, "rent", 0, "New rent per period, in the ledger currency")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

func (c *editAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	actor, err := identity()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if c.asset <= 0 || c.value < 0 || c.rent < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	tx := assetbloc.NewEditAsset(day, c.memo, actor, c.asset, c.name, c.location,
		assetbloc.M(c.value, ""), c.param, assetbloc.M(c.rent, ""))
	return applyAndSave(tx)
}
