package assetbloc

import (
	"errors"
	"testing"
)

func TestRentDistribution(t *testing.T) {
	ledger := newTestLedger(t)
	deposit(t, ledger, "alice", EUR(1))
	deposit(t, ledger, "bob", EUR(0.5))
	buy(t, ledger, "alice", 1, EUR(1)) // 50 shares
	buy(t, ledger, "bob", 1, EUR(0.5)) // 25 shares

	if err := ledger.Apply(NewRent(day, "", "carol", 1, EUR(1))); err != nil {
		t.Fatalf("Rent failed: %v", err)
	}

	// alice gets her pro rata cut, bob the remainder, and the two cuts add up
	// to the payment exactly.
	aliceCut := EUR(1).Prorate(S(50), S(75))
	bobCut := EUR(1).Sub(aliceCut)

	balance, _ := ledger.Balance("alice")
	if !balance.Equal(aliceCut) {
		t.Errorf("alice balance = %v, want %v", balance, aliceCut)
	}
	balance, _ = ledger.Balance("bob")
	if !balance.Equal(bobCut) {
		t.Errorf("bob balance = %v, want %v", balance, bobCut)
	}
	if !aliceCut.Add(bobCut).Equal(EUR(1)) {
		t.Errorf("distributed total = %v, want %v", aliceCut.Add(bobCut), EUR(1))
	}

	renter, rented, err := ledger.Occupant(1)
	if err != nil {
		t.Fatalf("Occupant() error: %v", err)
	}
	if !rented || renter != "carol" {
		t.Errorf("Occupant = %q %v, want carol true", renter, rented)
	}
}

func TestRentSoleOwnerGetsAll(t *testing.T) {
	ledger := newTestLedger(t)
	deposit(t, ledger, "alice", EUR(1))
	buy(t, ledger, "alice", 1, EUR(1))

	if err := ledger.Apply(NewRent(day, "", "carol", 1, EUR(1))); err != nil {
		t.Fatalf("Rent failed: %v", err)
	}
	balance, _ := ledger.Balance("alice")
	if !balance.Equal(EUR(1)) {
		t.Errorf("alice balance = %v, want %v", balance, EUR(1))
	}
}

// TestRentAskingQuickFix checks that a zero payment resolves to the asset's
// asking rent.
func TestRentAskingQuickFix(t *testing.T) {
	ledger := newTestLedger(t)
	deposit(t, ledger, "alice", EUR(1))
	buy(t, ledger, "alice", 1, EUR(1))

	if err := ledger.Apply(NewRent(day, "", "carol", 1, NO(0))); err != nil {
		t.Fatalf("Rent failed: %v", err)
	}
	balance, _ := ledger.Balance("alice")
	if !balance.Equal(EUR(1)) {
		t.Errorf("alice balance = %v, want %v", balance, EUR(1))
	}
}

func TestRentWithoutShareholders(t *testing.T) {
	ledger := newTestLedger(t)
	err := ledger.Apply(NewRent(day, "", "carol", 1, EUR(1)))
	if !errors.Is(err, ErrNotShareholder) {
		t.Errorf("Rent error = %v, want ErrNotShareholder", err)
	}
}

func TestRentDue(t *testing.T) {
	ledger := newTestLedger(t)
	deposit(t, ledger, "alice", EUR(1))
	buy(t, ledger, "alice", 1, EUR(1))

	// No occupant yet.
	if _, err := ledger.RentDue("alice", 1); !errors.Is(err, ErrNoOccupant) {
		t.Errorf("RentDue error = %v, want ErrNoOccupant", err)
	}

	if err := ledger.Apply(NewRent(day, "", "carol", 1, EUR(1))); err != nil {
		t.Fatalf("Rent failed: %v", err)
	}

	due, err := ledger.RentDue("alice", 1)
	if err != nil {
		t.Fatalf("RentDue() error: %v", err)
	}
	if !due.Equal(EUR(1)) {
		t.Errorf("RentDue = %v, want %v", due, EUR(1))
	}

	// Only shareholders may query.
	if _, err := ledger.RentDue("eve", 1); !errors.Is(err, ErrNotShareholder) {
		t.Errorf("RentDue by eve error = %v, want ErrNotShareholder", err)
	}
	if _, err := ledger.RentDue("alice", 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("RentDue on unknown asset error = %v, want ErrNotFound", err)
	}
}

func TestKickOut(t *testing.T) {
	ledger := newTestLedger(t)
	deposit(t, ledger, "alice", EUR(1))
	buy(t, ledger, "alice", 1, EUR(1))
	if err := ledger.Apply(NewRent(day, "", "carol", 1, EUR(1))); err != nil {
		t.Fatalf("Rent failed: %v", err)
	}

	if err := ledger.Apply(NewKickOut(day, "", "admin", 1)); err != nil {
		t.Fatalf("KickOut failed: %v", err)
	}
	renter, rented, _ := ledger.Occupant(1)
	if rented || renter != "" {
		t.Errorf("Occupant = %q %v, want vacant", renter, rented)
	}

	// A new occupant can move in after an eviction.
	if err := ledger.Apply(NewRent(day, "", "dave", 1, EUR(1))); err != nil {
		t.Fatalf("Rent after eviction failed: %v", err)
	}
	renter, rented, _ = ledger.Occupant(1)
	if !rented || renter != "dave" {
		t.Errorf("Occupant = %q %v, want dave true", renter, rented)
	}
}

func TestLockBlocksSales(t *testing.T) {
	ledger := newTestLedger(t)
	deposit(t, ledger, "alice", EUR(1))
	buy(t, ledger, "alice", 1, EUR(1)) // 50 shares

	if err := ledger.Apply(NewLock(day, "", "alice", 1, EUR(0.5), 2)); err != nil {
		t.Fatalf("Lock failed: %v", err)
	}
	h, _ := ledger.Shareholding("alice", 1)
	if !h.Locked.Equal(S(25)) {
		t.Errorf("Locked = %v, want 25", h.Locked)
	}
	if h.LockExpiry != 2 {
		t.Errorf("LockExpiry = %d, want 2", h.LockExpiry)
	}

	// Selling the whole holding would touch the locked portion.
	err := ledger.Apply(NewSell(day, "", "alice", 1, EUR(1)))
	if !errors.Is(err, ErrSharesLocked) {
		t.Errorf("Sell error = %v, want ErrSharesLocked", err)
	}

	// The unlocked portion remains transferable.
	if err := ledger.Apply(NewSell(day, "", "alice", 1, EUR(0.5))); err != nil {
		t.Fatalf("Sell of unlocked shares failed: %v", err)
	}
}

func TestLockReplacesPrevious(t *testing.T) {
	ledger := newTestLedger(t)
	deposit(t, ledger, "alice", EUR(1))
	buy(t, ledger, "alice", 1, EUR(1))

	if err := ledger.Apply(
		NewLock(day, "", "alice", 1, EUR(1), 5),
		NewLock(day, "", "alice", 1, EUR(0.5), 1),
	); err != nil {
		t.Fatalf("Lock failed: %v", err)
	}
	h, _ := ledger.Shareholding("alice", 1)
	if !h.Locked.Equal(S(25)) || h.LockExpiry != 1 {
		t.Errorf("Locked/LockExpiry = %v/%d, want 25/1", h.Locked, h.LockExpiry)
	}
}

// TestUnlockClearsUnconditionally checks that an unlock releases the shares
// whatever the lock expiry was.
func TestUnlockClearsUnconditionally(t *testing.T) {
	ledger := newTestLedger(t)
	deposit(t, ledger, "alice", EUR(1))
	buy(t, ledger, "alice", 1, EUR(1))

	if err := ledger.Apply(
		NewLock(day, "", "alice", 1, EUR(1), 1000),
		NewUnlock(day, "", "alice", 1),
	); err != nil {
		t.Fatalf("Lock/Unlock failed: %v", err)
	}
	h, _ := ledger.Shareholding("alice", 1)
	if !h.Locked.IsZero() || h.LockExpiry != 0 {
		t.Errorf("Locked/LockExpiry = %v/%d, want 0/0", h.Locked, h.LockExpiry)
	}

	if err := ledger.Apply(NewSell(day, "", "alice", 1, EUR(1))); err != nil {
		t.Fatalf("Sell after unlock failed: %v", err)
	}
}
