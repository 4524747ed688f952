package assetbloc

import "testing"

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// day is the fixed date used by all test transactions.
var day = MustParse("2025-06-01")

// newTestLedger returns a ledger initialized by "admin" with a single
// registered asset (id 1) valued at 2 EUR asking 1 EUR of rent.
func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	ledger := NewLedger()
	err := ledger.Apply(
		NewInit(day, "", "admin", "EUR"),
		NewAddAsset(day, "", "admin", "Villa Surya", "Bali", EUR(2), 0, EUR(1)),
	)
	if err != nil {
		t.Fatalf("cannot build test ledger: %v", err)
	}
	return ledger
}

// deposit credits the actor's account, failing the test on error.
func deposit(t *testing.T, ledger *Ledger, actor string, amount Money) {
	t.Helper()
	if err := ledger.Apply(NewDeposit(day, "", actor, amount)); err != nil {
		t.Fatalf("cannot deposit %v for %q: %v", amount, actor, err)
	}
}

// buy purchases shares for the actor, failing the test on error.
func buy(t *testing.T, ledger *Ledger, actor string, assetID int64, amount Money) {
	t.Helper()
	if err := ledger.Apply(NewBuy(day, "", actor, assetID, amount)); err != nil {
		t.Fatalf("cannot buy %v of asset %d for %q: %v", amount, assetID, actor, err)
	}
}
