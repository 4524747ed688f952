package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/assetbloc"
)

// Transaction renders a transaction to a string.
func Transaction(tx assetbloc.Transaction) string {
	switch v := tx.(type) {
	case assetbloc.Init:
		return fmt.Sprintf("Initialized ledger in %s, administrator %s", v.Currency, v.By())
	case assetbloc.AddAsset:
		return fmt.Sprintf("Registered asset %q valued %s, rent %s", v.Name, v.Value, v.Rent)
	case assetbloc.EditAsset:
		return fmt.Sprintf("Edited asset %d, value %s, rent %s", v.AssetID, v.Value, v.Rent)
	case assetbloc.Deposit:
		return fmt.Sprintf("%s deposited %s", v.By(), v.Amount)
	case assetbloc.Withdraw:
		return fmt.Sprintf("%s withdrew %s", v.By(), v.Amount)
	case assetbloc.Buy:
		return fmt.Sprintf("%s bought %s worth of asset %d", v.By(), v.Amount, v.AssetID)
	case assetbloc.Sell:
		return fmt.Sprintf("%s sold %s worth of asset %d", v.By(), v.Amount, v.AssetID)
	case assetbloc.Lock:
		return fmt.Sprintf("%s locked %s worth of asset %d for %d periods", v.By(), v.Amount, v.AssetID, v.Periods)
	case assetbloc.Unlock:
		return fmt.Sprintf("%s unlocked their shares of asset %d", v.By(), v.AssetID)
	case assetbloc.Rent:
		return fmt.Sprintf("%s rented asset %d for %s", v.By(), v.AssetID, v.Payment)
	case assetbloc.KickOut:
		return fmt.Sprintf("Evicted the occupant of asset %d", v.AssetID)
	default:
		return string(tx.What())
	}
}

// Log renders the ledger's transaction log as a markdown table.
func Log(ledger *assetbloc.Ledger, filters ...func(assetbloc.Transaction) bool) string {
	r := &mdRenderer{Builder: &strings.Builder{}}
	r.Printf("## Transactions\n\n")
	r.Printf("| # | Date | Command | Detail |\n")
	r.Printf("|---:|:---|:---|:---|\n")
	for i, tx := range ledger.Transactions(filters...) {
		r.Printf("| %d | %s | %s | %s |\n", i, tx.When(), tx.What(), Transaction(tx))
	}
	return r.String()
}
