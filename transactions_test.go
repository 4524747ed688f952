package assetbloc

import (
	"errors"
	"testing"
)

func TestValidationFailures(t *testing.T) {
	ledger := newTestLedger(t)
	deposit(t, ledger, "alice", EUR(2))
	buy(t, ledger, "alice", 1, EUR(1))

	tests := []struct {
		name string
		tx   Transaction
		want error // nil means any error is accepted
	}{
		{"second init", NewInit(day, "", "eve", "USD"), nil},
		{"missing actor", NewDeposit(day, "", "", EUR(1)), nil},
		{"add-asset by non-admin", NewAddAsset(day, "", "alice", "Shack", "", EUR(1), 0, NO(0)), ErrUnauthorized},
		{"add-asset without name", NewAddAsset(day, "", "admin", "", "", EUR(1), 0, NO(0)), nil},
		{"add-asset worthless", NewAddAsset(day, "", "admin", "Shack", "", NO(0), 0, NO(0)), nil},
		{"edit-asset by non-admin", NewEditAsset(day, "", "alice", 1, "Loft", "", NO(0), 0, NO(0)), ErrUnauthorized},
		{"edit unknown asset", NewEditAsset(day, "", "admin", 99, "Loft", "", NO(0), 0, NO(0)), ErrNotFound},
		{"deposit in foreign currency", NewDeposit(day, "", "alice", M(1, "USD")), nil},
		{"deposit nothing", NewDeposit(day, "", "alice", NO(0)), nil},
		{"withdraw without account", NewWithdraw(day, "", "ghost", EUR(1)), ErrNotFound},
		{"overdraw", NewWithdraw(day, "", "alice", EUR(5)), ErrInsufficientFunds},
		{"buy unknown asset", NewBuy(day, "", "alice", 99, EUR(1)), ErrNotFound},
		{"buy more than supply", NewBuy(day, "", "alice", 1, EUR(1.5)), ErrInsufficientSupply},
		{"sell more than held", NewSell(day, "", "alice", 1, EUR(2)), ErrInsufficientShares},
		{"sell by stranger", NewSell(day, "", "eve", 1, EUR(1)), ErrInsufficientShares},
		{"lock by stranger", NewLock(day, "", "eve", 1, EUR(1), 1), ErrNotShareholder},
		{"lock more than held", NewLock(day, "", "alice", 1, EUR(2), 1), ErrInsufficientShares},
		{"lock without periods", NewLock(day, "", "alice", 1, EUR(1), 0), nil},
		{"unlock by stranger", NewUnlock(day, "", "eve", 1), ErrNotShareholder},
		{"rent below asking", NewRent(day, "", "carol", 1, EUR(0.5)), ErrInsufficientFunds},
		{"rent above asking", NewRent(day, "", "carol", 1, EUR(2)), ErrInsufficientFunds},
		{"kick-out by non-admin", NewKickOut(day, "", "alice", 1), ErrUnauthorized},
		{"kick-out vacant asset", NewKickOut(day, "", "admin", 1), ErrNoOccupant},
	}

	before := 0
	for range ledger.Transactions() {
		before++
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ledger.Apply(tc.tx)
			if err == nil {
				t.Fatal("Apply succeeded, want an error")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Errorf("Apply error = %v, want %v", err, tc.want)
			}
		})
	}

	// Rejected transactions leave the ledger untouched.
	after := 0
	for range ledger.Transactions() {
		after++
	}
	if after != before {
		t.Errorf("transaction count = %d, want %d", after, before)
	}
	balance, _ := ledger.Balance("alice")
	if !balance.Equal(EUR(1)) {
		t.Errorf("Balance = %v, want %v", balance, EUR(1))
	}
}

// TestCurrencyQuickFix checks that amounts recorded without a currency are
// resolved to the ledger currency during validation.
func TestCurrencyQuickFix(t *testing.T) {
	ledger := newTestLedger(t)
	deposit(t, ledger, "alice", NO(2))

	balance, _ := ledger.Balance("alice")
	if balance.Currency() != "EUR" {
		t.Errorf("Balance currency = %q, want EUR", balance.Currency())
	}

	for _, tx := range ledger.Transactions(ByCommand(CmdDeposit)) {
		d := tx.(Deposit)
		if d.Amount.Currency() != "EUR" {
			t.Errorf("recorded deposit currency = %q, want EUR", d.Amount.Currency())
		}
	}
}

// TestDateQuickFix checks that a transaction without a date is stamped with
// the current day during validation.
func TestDateQuickFix(t *testing.T) {
	ledger := newTestLedger(t)
	if err := ledger.Apply(NewDeposit(Date{}, "", "alice", EUR(1))); err != nil {
		t.Fatalf("Deposit failed: %v", err)
	}
	for _, tx := range ledger.Transactions(ByCommand(CmdDeposit)) {
		if tx.When().IsZero() {
			t.Error("recorded deposit has a zero date")
		}
	}
}

// TestEditAssetSingleField checks that zero-valued fields are resolved to the
// asset's current values, so one field can be updated in isolation.
func TestEditAssetSingleField(t *testing.T) {
	ledger := newTestLedger(t)

	err := ledger.Apply(NewEditAsset(day, "", "admin", 1, "", "", EUR(3), 0, NO(0)))
	if err != nil {
		t.Fatalf("EditAsset failed: %v", err)
	}

	a, _ := ledger.Asset(1)
	if a.Name != "Villa Surya" || a.Location != "Bali" {
		t.Errorf("descriptive fields changed: %+v", a)
	}
	if !a.Value.Equal(EUR(3)) {
		t.Errorf("Value = %v, want %v", a.Value, EUR(3))
	}
	if !a.Rent.Equal(EUR(1)) {
		t.Errorf("Rent = %v, want %v", a.Rent, EUR(1))
	}

	// New purchases price shares against the updated valuation.
	deposit(t, ledger, "alice", EUR(3))
	buy(t, ledger, "alice", 1, EUR(1.5))
	h, _ := ledger.Shareholding("alice", 1)
	if !h.Held.Equal(S(50)) {
		t.Errorf("Held = %v, want 50", h.Held)
	}
}

func TestTransactionEqual(t *testing.T) {
	a := NewBuy(day, "", "alice", 1, EUR(1))
	b := NewBuy(day, "", "alice", 1, EUR(1))
	c := NewBuy(day, "", "alice", 1, EUR(2))

	if !a.Equal(b) {
		t.Error("identical buys are not equal")
	}
	if a.Equal(c) {
		t.Error("different amounts compare equal")
	}
	if a.Equal(NewSell(day, "", "alice", 1, EUR(1))) {
		t.Error("buy compares equal to a sell")
	}
}
