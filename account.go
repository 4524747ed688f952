package assetbloc

// Account is the per-user record: a cash balance and the shareholdings
// acquired against registered assets. Accounts are created lazily on first
// deposit and never deleted.
type Account struct {
	Address  string
	Cash     Money
	Holdings map[int64]*Holding // by asset id
}

// Holding tracks one account's stake in one asset. Created lazily on first
// purchase, zeroed (not deleted) on full sale.
type Holding struct {
	AssetID    int64
	Owner      string
	Held       Shares // percentage of the asset owned
	Locked     Shares // portion of Held currently locked; Locked <= Held
	LockExpiry int64  // period after which the lock may be cleared
}

// Unlocked returns the transferable portion of the holding.
func (h Holding) Unlocked() Shares { return h.Held.Sub(h.Locked) }

// holding returns the account's stake in the asset, or a zero-valued record.
func (a *Account) holding(assetID int64) Holding {
	if h, ok := a.Holdings[assetID]; ok {
		return *h
	}
	return Holding{AssetID: assetID, Owner: a.Address}
}
