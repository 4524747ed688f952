package assetbloc

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Statement is the per-account view: the cash balance and every holding the
// account has, sorted by asset id.
type Statement struct {
	Address  string
	Cash     Money
	Holdings []Holding
}

// Statement builds the account's statement. The account must exist.
func (l *Ledger) Statement(addr string) (Statement, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	account := l.accounts[addr]
	if account == nil {
		return Statement{}, fmt.Errorf("account %q: %w", addr, ErrNotFound)
	}
	s := Statement{Address: addr, Cash: account.Cash}
	for _, h := range account.Holdings {
		if h.Held.IsPositive() || h.Locked.IsPositive() {
			s.Holdings = append(s.Holdings, *h)
		}
	}
	slices.SortFunc(s.Holdings, func(a, b Holding) int {
		return cmp.Compare(a.AssetID, b.AssetID)
	})
	return s, nil
}

// AssetReport is the per-asset view: the registered record, its shareholders
// and the remaining supply.
type AssetReport struct {
	Asset     Asset
	Owners    []OwnerRecord
	Available Shares
}

// AssetReport builds the asset's report.
func (l *Ledger) AssetReport(assetID int64) (AssetReport, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a := l.assets[assetID]
	if a == nil {
		return AssetReport{}, fmt.Errorf("asset %d: %w", assetID, ErrNotFound)
	}
	return AssetReport{
		Asset:     *a,
		Owners:    l.owners(assetID),
		Available: a.SharesAvailable(),
	}, nil
}

// AuditReport is the administrator's view of the whole ledger: the vault
// balance against the sum of all account balances, and per-asset supply
// checks.
type AuditReport struct {
	Currency  string
	Admin     string
	Vault     Money
	TotalCash Money // sum of all account cash balances
	Invested  Money // cash absorbed by the share pool, Vault less TotalCash
	Accounts  int
	Assets    int
	Balanced  bool // the pool absorbed a non-negative amount and every asset's supply adds up
}

// Audit builds the ledger-wide audit report. Auditing is restricted to the
// administrator.
func (l *Ledger) Audit(caller string) (AuditReport, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.isAdmin(caller) {
		return AuditReport{}, fmt.Errorf("audit by %q: %w", caller, ErrUnauthorized)
	}

	report := AuditReport{
		Currency:  l.currency,
		Admin:     l.admin,
		Vault:     l.vault,
		TotalCash: Money{value: decimal.Zero, cur: l.currency},
		Accounts:  len(l.accounts),
		Assets:    len(l.assets),
	}
	for _, account := range l.accounts {
		report.TotalCash = report.TotalCash.Add(account.Cash)
	}

	report.Invested = report.Vault.Sub(report.TotalCash)
	report.Balanced = !report.Invested.IsNegative()
	for id, a := range l.assets {
		sum := Shares{}
		for _, rec := range l.owners(id) {
			sum = sum.Add(rec.Held)
		}
		if !sum.Equal(a.SharesSold) {
			report.Balanced = false
		}
	}
	return report, nil
}
