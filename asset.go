package assetbloc

// TotalShares is the fixed number of shares every asset is divided into.
// It is the denominator of all percentage math in the ledger.
const TotalShares = 100

// Asset represents a registered real-world asset, divided into 100
// percentage shares sold against its total value.
type Asset struct {
	ID         int64  // Sequential id, assigned on registration, immutable.
	Name       string // Descriptive name, editable by the administrator.
	Location   string // Descriptive location, editable by the administrator.
	Value      Money  // Total valuation; the price base for share trades.
	SharesSold Shares // Shares currently held by accounts, in [0, TotalShares].
	AdminParam int64  // Opaque registration parameter, carried verbatim.
	Rent       Money  // Amount due per rental period.
	Renter     string // Identity of the current occupant, or "" when vacant.
	Rented     bool   // True while an occupant holds the asset.
	Creator    string // Identity of the registrant, immutable.
}

// SharesAvailable returns the unsold shares of the asset.
func (a Asset) SharesAvailable() Shares {
	return S(TotalShares).Sub(a.SharesSold)
}

// OwnerRecord is the derived (asset, owner, percentage) view used by the
// rental engine to enumerate payees.
type OwnerRecord struct {
	AssetID int64
	Owner   string
	Held    Shares
}
