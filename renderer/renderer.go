package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/assetbloc"
)

// mdRenderer formats report structs into markdown strings.
type mdRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *mdRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// Assets renders the asset registry as a markdown table.
func Assets(assets []assetbloc.Asset) string {
	r := &mdRenderer{Builder: &strings.Builder{}}
	r.Printf("## Assets\n\n")
	r.Printf("| ID | Name | Location | Value | Rent | Sold | Occupant |\n")
	r.Printf("|---:|:---|:---|---:|---:|---:|:---|\n")
	for _, a := range assets {
		occupant := "-"
		if a.Rented {
			occupant = a.Renter
		}
		r.Printf("| %d | %s | %s | %s | %s | %s | %s |\n",
			a.ID, a.Name, a.Location, a.Value, a.Rent, a.SharesSold.Percent(), occupant)
	}
	return r.String()
}

// AssetReport renders a single asset's report: its registered record and its
// shareholders.
func AssetReport(report assetbloc.AssetReport) string {
	r := &mdRenderer{Builder: &strings.Builder{}}
	a := report.Asset
	r.Printf("# Asset %d: %s\n\n", a.ID, a.Name)
	if a.Location != "" {
		r.Printf("- Location: %s\n", a.Location)
	}
	r.Printf("- Value: %s\n", a.Value)
	r.Printf("- Rent: %s\n", a.Rent)
	r.Printf("- Shares available: %s\n", report.Available.Percent())
	if a.Rented {
		r.Printf("- Occupant: %s\n", a.Renter)
	} else {
		r.Printf("- Occupant: vacant\n")
	}
	r.Printf("\n")
	r.renderOwners(report.Owners)
	return r.String()
}

// Owners renders the shareholders of an asset as a markdown table.
func Owners(owners []assetbloc.OwnerRecord) string {
	r := &mdRenderer{Builder: &strings.Builder{}}
	r.renderOwners(owners)
	return r.String()
}

func (r *mdRenderer) renderOwners(owners []assetbloc.OwnerRecord) {
	if len(owners) == 0 {
		r.Printf("No shareholders.\n")
		return
	}
	r.Printf("## Shareholders\n\n")
	r.Printf("| Owner | Shares |\n")
	r.Printf("|:---|---:|\n")
	for _, rec := range owners {
		r.Printf("| %s | %s |\n", rec.Owner, rec.Held.Percent())
	}
}

// Statement renders an account statement: the cash balance and holdings.
func Statement(s assetbloc.Statement) string {
	r := &mdRenderer{Builder: &strings.Builder{}}
	r.Printf("# Account %s\n\n", s.Address)
	r.Printf("- Cash: %s\n\n", s.Cash)
	if len(s.Holdings) == 0 {
		r.Printf("No holdings.\n")
		return r.String()
	}
	r.Printf("## Holdings\n\n")
	r.Printf("| Asset | Held | Locked | Lock expiry |\n")
	r.Printf("|---:|---:|---:|---:|\n")
	for _, h := range s.Holdings {
		expiry := "-"
		if h.Locked.IsPositive() {
			expiry = fmt.Sprintf("period %d", h.LockExpiry)
		}
		r.Printf("| %d | %s | %s | %s |\n", h.AssetID, h.Held.Percent(), h.Locked.Percent(), expiry)
	}
	return r.String()
}

// Audit renders the administrator's audit report.
func Audit(report assetbloc.AuditReport) string {
	r := &mdRenderer{Builder: &strings.Builder{}}
	r.Printf("# Audit\n\n")
	r.Printf("- Currency: %s\n", report.Currency)
	r.Printf("- Administrator: %s\n", report.Admin)
	r.Printf("- Vault: %s\n", report.Vault)
	r.Printf("- Accounts cash: %s\n", report.TotalCash)
	r.Printf("- Invested in pool: %s\n", report.Invested)
	r.Printf("- Accounts: %d\n", report.Accounts)
	r.Printf("- Assets: %d\n", report.Assets)
	if report.Balanced {
		r.Printf("\nThe ledger is balanced.\n")
	} else {
		r.Printf("\n**The ledger is NOT balanced.**\n")
	}
	return r.String()
}
