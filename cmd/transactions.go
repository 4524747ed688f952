package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/assetbloc"
	"github.com/google/subcommands"
)

// --- Init Command ---

type initCmd struct {
	currency string
	memo     string
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "initialize a ledger and become its administrator" }
func (*initCmd) Usage() string {
	return `abc -as <identity> init -currency <code> [-m <memo>]

  Initializes the ledger with its currency. The identity running the command
  becomes the administrator.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "", "Ledger currency code (e.g. EUR)")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	actor, err := identity()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if c.currency == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return applyAndSave(assetbloc.NewInit(assetbloc.Today(), c.memo, actor, c.currency))
}

// --- Deposit Command ---

type depositCmd struct {
	date   string
	amount float64
	memo   string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "deposit cash into your account" }
func (*depositCmd) Usage() string {
	return `abc -as <identity> deposit -amount <amount> [-d <date>] [-m <memo>]

  Deposits cash into the identity's account. The account is created on first
  deposit.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD)")
	f.Float64Var(&c.amount, "amount", 0, "Amount to deposit, in the ledger currency")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	actor, err := identity()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return applyAndSave(assetbloc.NewDeposit(day, c.memo, actor, assetbloc.M(c.amount, "")))
}

// --- Withdraw Command ---

type withdrawCmd struct {
	date   string
	amount float64
	memo   string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "withdraw cash from your account" }
func (*withdrawCmd) Usage() string {
	return `abc -as <identity> withdraw [-amount <amount>] [-d <date>] [-m <memo>]

  Withdraws cash from the identity's account. Without an amount, the whole
  balance is withdrawn.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD)")
	f.Float64Var(&c.amount, "amount", 0, "Amount to withdraw, if missing the whole balance is withdrawn")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	actor, err := identity()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if c.amount < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return applyAndSave(assetbloc.NewWithdraw(day, c.memo, actor, assetbloc.M(c.amount, "")))
}

// --- Buy Command ---

type buyCmd struct {
	date   string
	asset  int64
	amount float64
	memo   string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "invest in an asset's shares" }
func (*buyCmd) Usage() string {
	return `abc -as <identity> buy -asset <id> -amount <amount> [-d <date>] [-m <memo>]

  Invests the amount in the asset. The share count is derived from the asset's
  current value and debited from the unsold supply; the amount is debited from
  the identity's cash balance.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD)")
	f.Int64Var(&c.asset, "asset", 0, "Asset id")
	f.Float64Var(&c.amount, "amount", 0, "Amount to invest, in the ledger currency")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	actor, err := identity()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if c.asset <= 0 || c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return applyAndSave(assetbloc.NewBuy(day, c.memo, actor, c.asset, assetbloc.M(c.amount, "")))
}

// --- Sell Command ---

type sellCmd struct {
	date   string
	asset  int64
	amount float64
	memo   string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell asset shares back to the pool" }
func (*sellCmd) Usage() string {
	return `abc -as <identity> sell -asset <id> -amount <amount> [-d <date>] [-m <memo>]

  Sells shares back to the pool. The share count is derived from the asset's
  current value; the amount is credited to the identity's cash balance.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD)")
	f.Int64Var(&c.asset, "asset", 0, "Asset id")
	f.Float64Var(&c.amount, "amount", 0, "Amount to divest, in the ledger currency")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	actor, err := identity()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if c.asset <= 0 || c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return applyAndSave(assetbloc.NewSell(day, c.memo, actor, c.asset, assetbloc.M(c.amount, "")))
}

// --- Lock Command ---

type lockCmd struct {
	date    string
	asset   int64
	amount  float64
	periods int64
	memo    string
}

func (*lockCmd) Name() string     { return "lock" }
func (*lockCmd) Synopsis() string { return "lock part of a shareholding" }
func (*lockCmd) Usage() string {
	return `abc -as <identity> lock -asset <id> -amount <amount> -periods <n> [-d <date>] [-m <memo>]

  Locks the shares matching the amount for a number of rental periods. Locked
  shares cannot be sold. A new lock replaces the previous one.
`
}

func (c *lockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD)")
	f.Int64Var(&c.asset, "asset", 0, "Asset id")
	f.Float64Var(&c.amount, "amount", 0, "Value of the shares to lock, in the ledger currency")
	f.Int64Var(&c.periods, "periods", 0, "Number of rental periods the lock covers")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

func (c *lockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	actor, err := identity()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if c.asset <= 0 || c.amount <= 0 || c.periods <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return applyAndSave(assetbloc.NewLock(day, c.memo, actor, c.asset, assetbloc.M(c.amount, ""), c.periods))
}

// --- Unlock Command ---

type unlockCmd struct {
	date  string
	asset int64
	memo  string
}

func (*unlockCmd) Name() string     { return "unlock" }
func (*unlockCmd) Synopsis() string { return "release the lock on a shareholding" }
func (*unlockCmd) Usage() string {
	return `abc -as <identity> unlock -asset <id> [-d <date>] [-m <memo>]

  Clears the lock on the identity's shareholding, whatever its expiry.
`
}

func (c *unlockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD)")
	f.Int64Var(&c.asset, "asset", 0, "Asset id")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

func (c *unlockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	actor, err := identity()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if c.asset <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return applyAndSave(assetbloc.NewUnlock(day, c.memo, actor, c.asset))
}

// --- Rent Command ---

type rentCmd struct {
	date    string
	asset   int64
	payment float64
	memo    string
}

func (*rentCmd) Name() string     { return "rent" }
func (*rentCmd) Synopsis() string { return "rent an asset by paying its asking rent" }
func (*rentCmd) Usage() string {
	return `abc -as <identity> rent -asset <id> [-payment <amount>] [-d <date>] [-m <memo>]

  Pays the asset's rent and records the identity as its occupant. The payment
  is distributed to the shareholders pro rata. Without a payment, the asking
  rent is paid.
`
}

func (c *rentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD)")
	f.Int64Var(&c.asset, "asset", 0, "Asset id")
	f.Float64Var(&c.payment, "payment", 0, "Rent payment, if missing the asking rent is paid")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

func (c *rentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	actor, err := identity()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if c.asset <= 0 || c.payment < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return applyAndSave(assetbloc.NewRent(day, c.memo, actor, c.asset, assetbloc.M(c.payment, "")))
}

// --- KickOut Command ---

type kickoutCmd struct {
	date  string
	asset int64
	memo  string
}

func (*kickoutCmd) Name() string     { return "kickout" }
func (*kickoutCmd) Synopsis() string { return "evict the occupant of an asset" }
func (*kickoutCmd) Usage() string {
	return `abc -as <identity> kickout -asset <id> [-d <date>] [-m <memo>]

  Evicts the asset's occupant. Restricted to the administrator.
`
}

func (c *kickoutCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD)")
	f.Int64Var(&c.asset, "asset", 0, "Asset id")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

func (c *kickoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	actor, err := identity()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if c.asset <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return applyAndSave(assetbloc.NewKickOut(day, c.memo, actor, c.asset))
}
