// Package cmd implements the CLI application to manage a fractional asset
// ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/assetbloc"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")
	c.Register(&logCmd{}, "ledger")

	c.Register(&addAssetCmd{}, "registry")
	c.Register(&editAssetCmd{}, "registry")
	c.Register(&updateCmd{}, "registry")

	c.Register(&depositCmd{}, "transactions")
	c.Register(&withdrawCmd{}, "transactions")
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&lockCmd{}, "transactions")
	c.Register(&unlockCmd{}, "transactions")
	c.Register(&rentCmd{}, "transactions")
	c.Register(&kickoutCmd{}, "transactions")

	c.Register(&assetsCmd{}, "reports")
	c.Register(&assetCmd{}, "reports")
	c.Register(&balanceCmd{}, "reports")
	c.Register(&ownersCmd{}, "reports")
	c.Register(&rentDueCmd{}, "reports")
	c.Register(&auditCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataPath = flag.String("data", ".", "Path to the folder holding ledger files")
var ledgerName = flag.String("ledger", "", "Ledger to operate on. Defaults to the only ledger if one exists.")
var identityFlag = flag.String("as", os.Getenv("ABC_IDENTITY"), "Identity running the command. Defaults to $ABC_IDENTITY.")

// LoadLedger loads the selected ledger from the data path.
func LoadLedger() (*assetbloc.Ledger, error) {
	return assetbloc.FindLedger(*dataPath, *ledgerName)
}

// identity returns the identity running the command, or an error when none is
// configured.
func identity() (string, error) {
	if *identityFlag == "" {
		return "", fmt.Errorf("no identity: use -as or set ABC_IDENTITY")
	}
	return *identityFlag, nil
}

// applyAndSave loads the ledger, applies the transactions and saves it back.
func applyAndSave(txs ...assetbloc.Transaction) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ledger.Apply(txs...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := assetbloc.SaveLedger(*dataPath, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for _, tx := range txs {
		fmt.Printf("Recorded %s transaction in ledger %q\n", tx.What(), ledger.Name())
	}
	return subcommands.ExitSuccess
}

// parseDay parses a transaction date flag, accepting relative forms like
// "-1d".
func parseDay(str string) (assetbloc.Date, error) {
	if str == "" {
		return assetbloc.Today(), nil
	}
	return assetbloc.ParseDate(str)
}
