package assetbloc

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/shopspring/decimal"
)

// Payout delivers withdrawn cash to its recipient outside the ledger. It is
// called after the ledger state is finalized and the internal lock released,
// so a payout that re-enters the ledger sees the balance already decremented.
type Payout func(recipient string, amount Money) error

// Ledger is the single source of truth for assets, accounts and the vault.
//
// All mutations go through Apply, which serializes them behind a single lock:
// each transaction is validated against the current state and applied
// atomically, or rejected leaving the state untouched. The transaction list is
// the durable form; the maps are the materialized state it replays into.
type Ledger struct {
	mu     sync.Mutex
	name   string
	payout Payout

	transactions []Transaction

	currency    string
	admin       string
	nextAssetID int64
	assets      map[int64]*Asset
	accounts    map[string]*Account
	vault       Money // cash held on behalf of all accounts
	period      int64 // current rental period, used as the lock expiry clock
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		transactions: make([]Transaction, 0),
		nextAssetID:  1,
		assets:       make(map[int64]*Asset),
		accounts:     make(map[string]*Account),
	}
}

// SetPayout installs the external cash delivery hook used by withdrawals.
// A nil payout keeps withdrawals internal to the ledger.
func (l *Ledger) SetPayout(p Payout) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.payout = p
}

// Name returns the name of the ledger, which is the base name of the file it
// was loaded from.
func (l *Ledger) Name() string { return l.name }

// SetName sets the name of the ledger.
func (l *Ledger) SetName(name string) { l.name = name }

// Currency returns the ledger currency, or "" before initialization.
func (l *Ledger) Currency() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.currency
}

// Admin returns the administrator identity, or "" before initialization.
func (l *Ledger) Admin() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.admin
}

// Period returns the current rental period.
func (l *Ledger) Period() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.period
}

// Apply validates and applies transactions in order, stopping at the first
// failure. A rejected transaction leaves the ledger untouched.
func (l *Ledger) Apply(txs ...Transaction) error {
	for _, tx := range txs {
		if err := l.applyOne(tx); err != nil {
			return err
		}
	}
	return nil
}

func (l *Ledger) applyOne(tx Transaction) error {
	l.mu.Lock()
	validated, err := tx.Validate(l)
	if err != nil {
		l.mu.Unlock()
		return fmt.Errorf("invalid %s transaction: %w", tx.What(), err)
	}
	l.transactions = append(l.transactions, validated)
	pending := l.apply(validated)
	l.mu.Unlock()

	// The external payout runs outside the lock, on finalized state.
	if pending != nil {
		return pending()
	}
	return nil
}

// apply mutates the materialized state for an already validated transaction.
// It returns the pending external payout, if any, to be run after the lock is
// released.
func (l *Ledger) apply(tx Transaction) func() error {
	switch v := tx.(type) {
	case Init:
		l.currency = v.Currency
		l.admin = v.Actor
		l.vault = Money{value: decimal.Zero, cur: v.Currency}

	case AddAsset:
		id := l.nextAssetID
		l.nextAssetID++
		l.assets[id] = &Asset{
			ID:         id,
			Name:       v.Name,
			Location:   v.Location,
			Value:      v.Value,
			AdminParam: v.AdminParam,
			Rent:       v.Rent,
			Creator:    v.Actor,
		}

	case EditAsset:
		a := l.assets[v.AssetID]
		a.Name = v.Name
		a.Location = v.Location
		a.Value = v.Value
		a.AdminParam = v.AdminParam
		a.Rent = v.Rent

	case Deposit:
		account := l.ensureAccount(v.Actor)
		account.Cash = account.Cash.Add(v.Amount)
		l.vault = l.vault.Add(v.Amount)

	case Withdraw:
		account := l.accounts[v.Actor]
		account.Cash = account.Cash.Sub(v.Amount)
		l.vault = l.vault.Sub(v.Amount)
		if l.payout != nil {
			payout, recipient, amount := l.payout, v.Actor, v.Amount
			return func() error { return payout(recipient, amount) }
		}

	case Buy:
		asset := l.assets[v.AssetID]
		shares := v.Shares(asset)
		account := l.ensureAccount(v.Actor)
		account.Cash = account.Cash.Sub(v.Amount)
		asset.SharesSold = asset.SharesSold.Add(shares)
		holding := l.ensureHolding(account, v.AssetID)
		holding.Held = holding.Held.Add(shares)

	case Sell:
		asset := l.assets[v.AssetID]
		shares := v.Shares(asset)
		account := l.accounts[v.Actor]
		account.Cash = account.Cash.Add(v.Amount)
		asset.SharesSold = asset.SharesSold.Sub(shares)
		holding := account.Holdings[v.AssetID]
		holding.Held = holding.Held.Sub(shares)

	case Lock:
		asset := l.assets[v.AssetID]
		holding := l.accounts[v.Actor].Holdings[v.AssetID]
		holding.Locked = v.Shares(asset)
		holding.LockExpiry = l.period + v.Periods

	case Unlock:
		holding := l.accounts[v.Actor].Holdings[v.AssetID]
		holding.Locked = Shares{}
		holding.LockExpiry = 0

	case Rent:
		asset := l.assets[v.AssetID]
		l.vault = l.vault.Add(v.Payment)
		l.distribute(asset, v.Payment)
		asset.Renter = v.Actor
		asset.Rented = true

	case KickOut:
		asset := l.assets[v.AssetID]
		asset.Renter = ""
		asset.Rented = false
	}
	return nil
}

// distribute credits the rent payment to the asset's shareholders pro rata to
// their holdings. The rounding remainder goes to the last holder in address
// order, so the distributed total always equals the payment exactly.
func (l *Ledger) distribute(asset *Asset, payment Money) {
	owners := l.owners(asset.ID)
	distributed := Money{value: decimal.Zero, cur: payment.Currency()}
	for i, rec := range owners {
		account := l.accounts[rec.Owner]
		var cut Money
		if i == len(owners)-1 {
			cut = payment.Sub(distributed)
		} else {
			cut = payment.Prorate(rec.Held, asset.SharesSold)
			distributed = distributed.Add(cut)
		}
		account.Cash = account.Cash.Add(cut)
	}
}

// owners returns the asset's shareholders with a positive holding, sorted by
// address for deterministic iteration.
func (l *Ledger) owners(assetID int64) []OwnerRecord {
	var records []OwnerRecord
	for addr, account := range l.accounts {
		if h, ok := account.Holdings[assetID]; ok && h.Held.IsPositive() {
			records = append(records, OwnerRecord{AssetID: assetID, Owner: addr, Held: h.Held})
		}
	}
	slices.SortFunc(records, func(a, b OwnerRecord) int {
		switch {
		case a.Owner < b.Owner:
			return -1
		case a.Owner > b.Owner:
			return 1
		}
		return 0
	})
	return records
}

// unexported state accessors, for use under the lock by Validate and apply.

func (l *Ledger) initialized() bool { return l.currency != "" }

func (l *Ledger) isAdmin(actor string) bool { return l.admin != "" && l.admin == actor }

// asset returns the registered asset with this id, or nil if unknown.
func (l *Ledger) asset(id int64) *Asset { return l.assets[id] }

// account returns the account for this address, or nil if it never deposited.
func (l *Ledger) account(addr string) *Account { return l.accounts[addr] }

// holding returns the address's stake in the asset, zero-valued when the
// account or the holding does not exist.
func (l *Ledger) holding(addr string, assetID int64) Holding {
	if account := l.accounts[addr]; account != nil {
		return account.holding(assetID)
	}
	return Holding{AssetID: assetID, Owner: addr}
}

// toLedgerCurrency quick-fixes a missing currency to the ledger currency and
// rejects any other currency.
func (l *Ledger) toLedgerCurrency(m Money) (Money, error) {
	if !l.initialized() {
		return m, fmt.Errorf("ledger is not initialized")
	}
	if m.cur == "" {
		return Money{value: m.value, cur: l.currency}, nil
	}
	if m.cur != l.currency {
		return m, fmt.Errorf("currency %s does not match ledger currency %s", m.cur, l.currency)
	}
	return m, nil
}

func (l *Ledger) ensureAccount(addr string) *Account {
	account, ok := l.accounts[addr]
	if !ok {
		account = &Account{
			Address:  addr,
			Cash:     Money{value: decimal.Zero, cur: l.currency},
			Holdings: make(map[int64]*Holding),
		}
		l.accounts[addr] = account
	}
	return account
}

func (l *Ledger) ensureHolding(account *Account, assetID int64) *Holding {
	holding, ok := account.Holdings[assetID]
	if !ok {
		holding = &Holding{AssetID: assetID, Owner: account.Address}
		account.Holdings[assetID] = holding
	}
	return holding
}

// Asset returns a copy of the registered asset with this id.
func (l *Ledger) Asset(id int64) (Asset, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a := l.assets[id]
	if a == nil {
		return Asset{}, fmt.Errorf("asset %d: %w", id, ErrNotFound)
	}
	return *a, nil
}

// Assets returns an iterator over copies of all registered assets, in id
// order.
func (l *Ledger) Assets() iter.Seq[Asset] {
	l.mu.Lock()
	ids := make([]int64, 0, len(l.assets))
	for id := range l.assets {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	snapshot := make([]Asset, 0, len(ids))
	for _, id := range ids {
		snapshot = append(snapshot, *l.assets[id])
	}
	l.mu.Unlock()

	return func(yield func(Asset) bool) {
		for _, a := range snapshot {
			if !yield(a) {
				return
			}
		}
	}
}

// Balance returns the account's cash balance. The account must exist, that is
// it must have deposited at least once.
func (l *Ledger) Balance(addr string) (Money, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	account := l.accounts[addr]
	if account == nil {
		return Money{}, fmt.Errorf("account %q: %w", addr, ErrNotFound)
	}
	return account.Cash, nil
}

// Shareholding returns the address's stake in the asset. A zero-valued holding
// is returned for addresses that never bought in.
func (l *Ledger) Shareholding(addr string, assetID int64) (Holding, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.assets[assetID] == nil {
		return Holding{}, fmt.Errorf("asset %d: %w", assetID, ErrNotFound)
	}
	return l.holding(addr, assetID), nil
}

// AssetOwners returns the asset's shareholders with their share counts, sorted
// by address.
func (l *Ledger) AssetOwners(assetID int64) ([]OwnerRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.assets[assetID] == nil {
		return nil, fmt.Errorf("asset %d: %w", assetID, ErrNotFound)
	}
	return l.owners(assetID), nil
}

// SharesAvailable returns the unsold share count of the asset.
func (l *Ledger) SharesAvailable(assetID int64) (Shares, error) {
	a, err := l.Asset(assetID)
	if err != nil {
		return Shares{}, err
	}
	return a.SharesAvailable(), nil
}

// SharesSold returns the sold share count of the asset.
func (l *Ledger) SharesSold(assetID int64) (Shares, error) {
	a, err := l.Asset(assetID)
	if err != nil {
		return Shares{}, err
	}
	return a.SharesSold, nil
}

// RentDue returns the rent the asset's occupant owes per period. The asset
// must be occupied and the caller must be one of its shareholders.
func (l *Ledger) RentDue(caller string, assetID int64) (Money, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a := l.assets[assetID]
	if a == nil {
		return Money{}, fmt.Errorf("asset %d: %w", assetID, ErrNotFound)
	}
	if !a.Rented {
		return Money{}, fmt.Errorf("asset %d is vacant: %w", assetID, ErrNoOccupant)
	}
	if !l.holding(caller, assetID).Held.IsPositive() {
		return Money{}, fmt.Errorf("rent due queried by %q on asset %d: %w", caller, assetID, ErrNotShareholder)
	}
	return a.Rent, nil
}

// Occupant returns the asset's current renter, or false when vacant.
func (l *Ledger) Occupant(assetID int64) (string, bool, error) {
	a, err := l.Asset(assetID)
	if err != nil {
		return "", false, err
	}
	return a.Renter, a.Rented, nil
}

// VaultBalance returns the total cash held by the ledger on behalf of all
// accounts. Auditing the vault is restricted to the administrator.
func (l *Ledger) VaultBalance(caller string) (Money, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.isAdmin(caller) {
		return Money{}, fmt.Errorf("vault audit by %q: %w", caller, ErrUnauthorized)
	}
	return l.vault, nil
}

// Accounts returns an iterator over copies of all accounts, in address order.
// Holdings maps are cloned, the caller owns the copies.
func (l *Ledger) Accounts() iter.Seq[Account] {
	l.mu.Lock()
	addrs := make([]string, 0, len(l.accounts))
	for addr := range l.accounts {
		addrs = append(addrs, addr)
	}
	slices.Sort(addrs)
	snapshot := make([]Account, 0, len(addrs))
	for _, addr := range addrs {
		account := l.accounts[addr]
		clone := Account{Address: account.Address, Cash: account.Cash, Holdings: make(map[int64]*Holding, len(account.Holdings))}
		for id, h := range account.Holdings {
			hc := *h
			clone.Holdings[id] = &hc
		}
		snapshot = append(snapshot, clone)
	}
	l.mu.Unlock()

	return func(yield func(Account) bool) {
		for _, a := range snapshot {
			if !yield(a) {
				return
			}
		}
	}
}

// Transactions returns an iterator that yields each recorded transaction in
// application order. Filters, if any, are combined with a logical OR.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	l.mu.Lock()
	snapshot := slices.Clone(l.transactions)
	l.mu.Unlock()

	return func(yield func(int, Transaction) bool) {
		for i, tx := range snapshot {
			if len(filters) > 0 {
				accept := false
				for _, filter := range filters {
					if filter(tx) {
						accept = true
						break
					}
				}
				if !accept {
					continue
				}
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// ByCommand returns a transaction filter accepting the given command types.
func ByCommand(cmds ...CommandType) func(Transaction) bool {
	return func(tx Transaction) bool {
		return slices.Contains(cmds, tx.What())
	}
}

// ByActor returns a transaction filter accepting transactions by this actor.
func ByActor(actor string) func(Transaction) bool {
	return func(tx Transaction) bool {
		return tx.By() == actor
	}
}

// ByAsset returns a transaction filter accepting transactions scoped to this
// asset.
func ByAsset(assetID int64) func(Transaction) bool {
	return func(tx Transaction) bool {
		type assetScoped interface{ Scope() int64 }
		if s, ok := tx.(assetScoped); ok {
			return s.Scope() == assetID
		}
		return false
	}
}
