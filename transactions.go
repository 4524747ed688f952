package assetbloc

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// CommandType is a typed string for identifying transaction commands.
type CommandType string

// Command types used for identifying transactions.
const (
	CmdInit      CommandType = "init"
	CmdAddAsset  CommandType = "add-asset"
	CmdEditAsset CommandType = "edit-asset"
	CmdDeposit   CommandType = "deposit"
	CmdWithdraw  CommandType = "withdraw"
	CmdBuy       CommandType = "buy"
	CmdSell      CommandType = "sell"
	CmdLock      CommandType = "lock"
	CmdUnlock    CommandType = "unlock"
	CmdRent      CommandType = "rent"
	CmdKickOut   CommandType = "kick-out"
)

// Transaction defines the common interface for all operations that can be
// recorded in the ledger.
type Transaction interface {
	What() CommandType // What returns the command type of the transaction (e.g., "buy", "rent").
	When() Date        // When returns the date on which the transaction occurred.
	By() string        // By returns the identity of the caller.
	Equal(Transaction) bool
	Validate(ledger *Ledger) (Transaction, error)
}

type baseCmd struct {
	Command CommandType `json:"command"`        // Command specifies the type of transaction (e.g., "buy", "rent").
	Date    Date        `json:"date"`           // Date is the date when the transaction took place.
	Actor   string      `json:"actor"`          // Actor is the identity on whose behalf the transaction runs.
	Memo    string      `json:"memo,omitempty"` // Memo provides an optional rationale or note for the transaction.
}

// What returns the command name for the transaction, which is used to identify the type of transaction.
func (t baseCmd) What() CommandType {
	return t.Command
}

// When returns the date of the transaction.
func (t baseCmd) When() Date {
	return t.Date
}

// By returns the identity of the caller.
func (t baseCmd) By() string {
	return t.Actor
}

// Rationale returns the memo associated with the transaction, which can provide additional context or rationale.
func (t baseCmd) Rationale() string {
	return t.Memo
}

// MarshalJSON implements the json.Marshaler interface for baseCmd.
func (t baseCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", t.Command)
	w.Append("date", t.Date)
	w.Append("actor", t.Actor)
	w.Optional("memo", t.Memo)
	return w.MarshalJSON()
}

// Validate checks the base command fields. It sets the date to today if it's
// zero and requires an actor.
// It's meant to be embedded in other transaction validation methods.
func (t *baseCmd) Validate() error {
	if t.Date == (Date{}) {
		t.Date = Today()
	}
	if t.Actor == "" {
		return errors.New("transaction actor is missing")
	}
	return nil
}

// assetCmd is a component for asset-scoped transactions (buy, sell, lock,
// rent...).
type assetCmd struct {
	baseCmd
	AssetID int64 `json:"asset"` // AssetID is the registry id of the asset involved in the transaction.
}

// Validate checks the asset command fields. It validates the base command and
// resolves the asset id against the registry.
func (t *assetCmd) Validate(ledger *Ledger) error {
	if err := t.baseCmd.Validate(); err != nil {
		return err
	}
	if ledger.asset(t.AssetID) == nil {
		return fmt.Errorf("asset %d: %w", t.AssetID, ErrNotFound)
	}
	return nil
}

// Scope returns the asset id the command is scoped to. It makes asset-scoped
// transactions discoverable through the ByAsset filter.
func (t assetCmd) Scope() int64 { return t.AssetID }

// MarshalJSON implements the json.Marshaler interface for assetCmd.
func (t assetCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("asset", t.AssetID)
	return w.MarshalJSON()
}

// --- Init Command ---

// Init represents the initialization of the ledger.
// It sets the ledger currency and appoints the actor as administrator. It must
// be the first transaction.
type Init struct {
	baseCmd
	Currency string `json:"currency"`
}

// NewInit creates a new Init transaction.
func NewInit(date Date, memo, actor, currency string) Init {
	return Init{
		baseCmd:  baseCmd{Command: CmdInit, Date: date, Actor: actor, Memo: memo},
		Currency: currency,
	}
}

func (t Init) Equal(other Transaction) bool {
	o, ok := other.(Init)
	return ok && t.baseCmd == o.baseCmd && t.Currency == o.Currency
}

// Validate checks the Init transaction's fields. It rejects a second
// initialization: the administrator identity is fixed for the life of the
// ledger.
func (t Init) Validate(ledger *Ledger) (Transaction, error) {
	if err := t.baseCmd.Validate(); err != nil {
		return t, err
	}
	if err := ValidateCurrency(t.Currency); err != nil {
		return t, fmt.Errorf("invalid currency for init: %w", err)
	}
	if ledger.initialized() {
		return t, fmt.Errorf("ledger already initialized for %s", ledger.currency)
	}
	return t, nil
}

// MarshalJSON implements the json.Marshaler interface for Init.
func (t Init) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("currency", t.Currency)
	return w.MarshalJSON()
}

// --- AddAsset Command ---

// AddAsset represents the registration of a new asset in the registry.
// Registration is restricted to the administrator.
type AddAsset struct {
	baseCmd
	Name       string
	Location   string
	Value      Money
	AdminParam int64
	Rent       Money
}

// NewAddAsset creates a new AddAsset transaction.
func NewAddAsset(day Date, memo, actor, name, location string, value Money, adminParam int64, rent Money) AddAsset {
	return AddAsset{
		baseCmd:    baseCmd{Command: CmdAddAsset, Date: day, Actor: actor, Memo: memo},
		Name:       name,
		Location:   location,
		Value:      value,
		AdminParam: adminParam,
		Rent:       rent,
	}
}

// MarshalJSON implements the json.Marshaler interface for AddAsset.
// Value and rent are persisted as plain decimals in the ledger currency.
func (t AddAsset) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("name", t.Name)
	w.Optional("location", t.Location)
	w.Append("value", t.Value.value)
	w.Optional("param", t.AdminParam)
	w.Append("rent", t.Rent.value)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for AddAsset.
func (t *AddAsset) UnmarshalJSON(data []byte) error {
	var temp struct {
		baseCmd
		Name       string          `json:"name"`
		Location   string          `json:"location,omitempty"`
		Value      decimal.Decimal `json:"value"`
		AdminParam int64           `json:"param,omitempty"`
		Rent       decimal.Decimal `json:"rent"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.baseCmd = temp.baseCmd
	t.Name = temp.Name
	t.Location = temp.Location
	t.Value = Money{value: temp.Value}
	t.AdminParam = temp.AdminParam
	t.Rent = Money{value: temp.Rent}
	return nil
}

func (t AddAsset) Equal(other Transaction) bool {
	o, ok := other.(AddAsset)
	return ok && t.baseCmd == o.baseCmd && t.Name == o.Name && t.Location == o.Location &&
		t.Value.Equal(o.Value) && t.AdminParam == o.AdminParam && t.Rent.Equal(o.Rent)
}

// Validate checks the AddAsset transaction's fields. It ensures the caller is
// the administrator, the name is present and the valuation is positive, and
// quick-fixes missing currencies to the ledger currency.
func (t AddAsset) Validate(ledger *Ledger) (Transaction, error) {
	if err := t.baseCmd.Validate(); err != nil {
		return t, err
	}
	if !ledger.initialized() {
		return t, errors.New("ledger is not initialized")
	}
	if !ledger.isAdmin(t.Actor) {
		return t, fmt.Errorf("add-asset by %q: %w", t.Actor, ErrUnauthorized)
	}
	if t.Name == "" {
		return t, errors.New("asset name is missing")
	}
	if !t.Value.IsPositive() {
		return t, fmt.Errorf("asset value must be positive, got %v", t.Value)
	}
	if t.Rent.IsNegative() {
		return t, fmt.Errorf("asset rent cannot be negative, got %v", t.Rent)
	}

	var err error
	if t.Value, err = ledger.toLedgerCurrency(t.Value); err != nil {
		return t, fmt.Errorf("asset value: %w", err)
	}
	if t.Rent, err = ledger.toLedgerCurrency(t.Rent); err != nil {
		return t, fmt.Errorf("asset rent: %w", err)
	}
	return t, nil
}

// --- EditAsset Command ---

// EditAsset represents an update of a registered asset's descriptive fields
// and valuation. Only the administrator can edit an asset.
type EditAsset struct {
	assetCmd
	Name       string
	Location   string
	Value      Money
	AdminParam int64
	Rent       Money
}

// NewEditAsset creates a new EditAsset transaction. Zero-valued fields are
// resolved to the asset's current values during validation, so a caller can
// update a single field.
func NewEditAsset(day Date, memo, actor string, assetID int64, name, location string, value Money, adminParam int64, rent Money) EditAsset {
	return EditAsset{
		assetCmd:   assetCmd{baseCmd: baseCmd{Command: CmdEditAsset, Date: day, Actor: actor, Memo: memo}, AssetID: assetID},
		Name:       name,
		Location:   location,
		Value:      value,
		AdminParam: adminParam,
		Rent:       rent,
	}
}

// MarshalJSON implements the json.Marshaler interface for EditAsset.
func (t EditAsset) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.assetCmd)
	w.Append("name", t.Name)
	w.Optional("location", t.Location)
	w.Append("value", t.Value.value)
	w.Optional("param", t.AdminParam)
	w.Append("rent", t.Rent.value)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for EditAsset.
func (t *EditAsset) UnmarshalJSON(data []byte) error {
	var temp struct {
		assetCmd
		Name       string          `json:"name"`
		Location   string          `json:"location,omitempty"`
		Value      decimal.Decimal `json:"value"`
		AdminParam int64           `json:"param,omitempty"`
		Rent       decimal.Decimal `json:"rent"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.assetCmd = temp.assetCmd
	t.Name = temp.Name
	t.Location = temp.Location
	t.Value = Money{value: temp.Value}
	t.AdminParam = temp.AdminParam
	t.Rent = Money{value: temp.Rent}
	return nil
}

func (t EditAsset) Equal(other Transaction) bool {
	o, ok := other.(EditAsset)
	return ok && t.assetCmd == o.assetCmd && t.Name == o.Name && t.Location == o.Location &&
		t.Value.Equal(o.Value) && t.AdminParam == o.AdminParam && t.Rent.Equal(o.Rent)
}

// Validate checks the EditAsset transaction's fields. Empty or zero fields are
// quick-fixed to the asset's current values, so the applied transaction always
// carries the full resulting state.
func (t EditAsset) Validate(ledger *Ledger) (Transaction, error) {
	if err := t.assetCmd.Validate(ledger); err != nil {
		return t, err
	}
	if !ledger.isAdmin(t.Actor) {
		return t, fmt.Errorf("edit-asset by %q: %w", t.Actor, ErrUnauthorized)
	}

	a := ledger.asset(t.AssetID)
	if t.Name == "" {
		t.Name = a.Name
	}
	if t.Location == "" {
		t.Location = a.Location
	}
	if t.Value.IsZero() {
		t.Value = a.Value
	}
	if t.AdminParam == 0 {
		t.AdminParam = a.AdminParam
	}
	if t.Rent.IsZero() {
		t.Rent = a.Rent
	}

	if !t.Value.IsPositive() {
		return t, fmt.Errorf("asset value must be positive, got %v", t.Value)
	}
	if t.Rent.IsNegative() {
		return t, fmt.Errorf("asset rent cannot be negative, got %v", t.Rent)
	}

	var err error
	if t.Value, err = ledger.toLedgerCurrency(t.Value); err != nil {
		return t, fmt.Errorf("asset value: %w", err)
	}
	if t.Rent, err = ledger.toLedgerCurrency(t.Rent); err != nil {
		return t, fmt.Errorf("asset rent: %w", err)
	}
	return t, nil
}

// --- Deposit Command ---

// Deposit represents a cash deposit into the actor's account. The account is
// created on first deposit.
type Deposit struct {
	baseCmd
	Amount Money // Amount is the quantity of cash deposited.
}

// NewDeposit creates a new Deposit transaction.
func NewDeposit(day Date, memo, actor string, amount Money) Deposit {
	return Deposit{
		baseCmd: baseCmd{Command: CmdDeposit, Date: day, Actor: actor, Memo: memo},
		Amount:  amount,
	}
}

func (t Deposit) Currency() string { return t.Amount.Currency() }

// MarshalJSON implements the json.Marshaler interface for Deposit.
func (t Deposit) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Deposit.
func (t *Deposit) UnmarshalJSON(data []byte) error {
	// Use a temporary type that has all possible fields.
	var temp struct {
		baseCmd
		amountCmd
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.baseCmd = temp.baseCmd
	t.Amount = temp.Money()
	return nil
}

func (t Deposit) Equal(other Transaction) bool {
	o, ok := other.(Deposit)
	return ok && t.baseCmd == o.baseCmd && t.Amount.Equal(o.Amount)
}

// Validate checks the Deposit transaction's fields. It ensures the deposit
// amount is positive and in the ledger currency.
func (t Deposit) Validate(ledger *Ledger) (Transaction, error) {
	if err := t.baseCmd.Validate(); err != nil {
		return t, err
	}
	if !ledger.initialized() {
		return t, errors.New("ledger is not initialized")
	}
	if !t.Amount.IsPositive() {
		return t, fmt.Errorf("deposit amount must be positive, got %v", t.Amount)
	}
	var err error
	if t.Amount, err = ledger.toLedgerCurrency(t.Amount); err != nil {
		return t, fmt.Errorf("deposit: %w", err)
	}
	return t, nil
}

// --- Withdraw Command ---

// Withdraw represents a cash withdrawal from the actor's account. The cash
// balance is decremented before the external payout runs, so a failed payout
// can never double-spend the balance.
type Withdraw struct {
	baseCmd
	Amount Money // Amount is the quantity of cash withdrawn.
}

// NewWithdraw creates a new Withdraw transaction.
// If the amount is set to 0, it signifies a "withdraw all" instruction.
// The actual amount is determined during the validation phase from the
// account's cash balance.
func NewWithdraw(day Date, memo, actor string, amount Money) Withdraw {
	return Withdraw{
		baseCmd: baseCmd{Command: CmdWithdraw, Date: day, Actor: actor, Memo: memo},
		Amount:  amount,
	}
}

func (t Withdraw) Currency() string { return t.Amount.Currency() }

// MarshalJSON implements the json.Marshaler interface for Withdraw.
func (t Withdraw) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Withdraw.
func (t *Withdraw) UnmarshalJSON(data []byte) error {
	// Use a temporary type that has all possible fields.
	var temp struct {
		baseCmd
		amountCmd
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.baseCmd = temp.baseCmd
	t.Amount = temp.Money()
	return nil
}

func (t Withdraw) Equal(other Transaction) bool {
	o, ok := other.(Withdraw)
	return ok && t.baseCmd == o.baseCmd && t.Amount.Equal(o.Amount)
}

// Validate checks the Withdraw transaction's fields.
// It requires an existing account, handles the "withdraw all" case, and
// verifies the cash balance covers the withdrawal.
func (t Withdraw) Validate(ledger *Ledger) (Transaction, error) {
	if err := t.baseCmd.Validate(); err != nil {
		return t, err
	}
	account := ledger.account(t.Actor)
	if account == nil {
		return t, fmt.Errorf("account %q: %w", t.Actor, ErrNotFound)
	}

	var err error
	if t.Amount, err = ledger.toLedgerCurrency(t.Amount); err != nil {
		return t, fmt.Errorf("withdraw: %w", err)
	}
	if t.Amount.IsZero() {
		// quick fix, withdraw all.
		t.Amount = account.Cash
	}
	if !t.Amount.IsPositive() {
		return t, fmt.Errorf("withdraw amount must be positive, got %v", t.Amount)
	}
	if account.Cash.LessThan(t.Amount) {
		return t, fmt.Errorf("cannot withdraw %v, cash balance is %v: %w", t.Amount, account.Cash, ErrInsufficientFunds)
	}
	return t, nil
}

// --- Buy Command ---

// Buy represents a purchase of asset shares. The amount is the invested value;
// the share count is derived from the asset's valuation.
type Buy struct {
	assetCmd
	Amount Money // Amount is the value invested in the asset.
}

// NewBuy creates a new Buy transaction.
func NewBuy(day Date, memo, actor string, assetID int64, amount Money) Buy {
	return Buy{
		assetCmd: assetCmd{baseCmd: baseCmd{Command: CmdBuy, Date: day, Actor: actor, Memo: memo}, AssetID: assetID},
		Amount:   amount,
	}
}

func (t Buy) Currency() string { return t.Amount.Currency() }

// Shares returns the share count this purchase represents against the asset's
// valuation.
func (t Buy) Shares(asset *Asset) Shares { return t.Amount.PercentOf(asset.Value) }

// MarshalJSON implements the json.Marshaler interface for Buy.
func (t Buy) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.assetCmd)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Buy.
func (t *Buy) UnmarshalJSON(data []byte) error {
	// Use a temporary type that has all possible fields.
	var temp struct {
		assetCmd
		amountCmd
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.assetCmd = temp.assetCmd
	t.Amount = temp.Money()
	return nil
}

func (t Buy) Equal(other Transaction) bool {
	o, ok := other.(Buy)
	return ok && t.assetCmd == o.assetCmd && t.Amount.Equal(o.Amount)
}

// Validate checks the Buy transaction's fields. It ensures the amount is
// positive, the derived share count does not exceed the unsold supply, and the
// buyer's cash balance covers the cost. Supply is checked before funds.
func (t Buy) Validate(ledger *Ledger) (Transaction, error) {
	if err := t.assetCmd.Validate(ledger); err != nil {
		return t, err
	}
	if !t.Amount.IsPositive() {
		return t, fmt.Errorf("buy amount must be positive, got %v", t.Amount)
	}
	var err error
	if t.Amount, err = ledger.toLedgerCurrency(t.Amount); err != nil {
		return t, fmt.Errorf("buy: %w", err)
	}

	asset := ledger.asset(t.AssetID) // not nil, checked in assetCmd.Validate
	shares := t.Shares(asset)
	if asset.SharesAvailable().LessThan(shares) {
		return t, fmt.Errorf("cannot buy %v shares of asset %d, only %v available: %w",
			shares, t.AssetID, asset.SharesAvailable(), ErrInsufficientSupply)
	}

	cash := Money{cur: ledger.currency}
	if account := ledger.account(t.Actor); account != nil {
		cash = account.Cash
	}
	if cash.LessThan(t.Amount) {
		return t, fmt.Errorf("cannot buy for %v, cash balance is %v: %w", t.Amount, cash, ErrInsufficientFunds)
	}
	return t, nil
}

// --- Sell Command ---

// Sell represents a sale of asset shares back to the pool. The amount is the
// divested value; the share count is derived from the asset's valuation.
type Sell struct {
	assetCmd
	Amount Money // Amount is the value divested from the asset.
}

// NewSell creates a new Sell transaction.
func NewSell(day Date, memo, actor string, assetID int64, amount Money) Sell {
	return Sell{
		assetCmd: assetCmd{baseCmd: baseCmd{Command: CmdSell, Date: day, Actor: actor, Memo: memo}, AssetID: assetID},
		Amount:   amount,
	}
}

func (t Sell) Currency() string { return t.Amount.Currency() }

// Shares returns the share count this sale represents against the asset's
// valuation.
func (t Sell) Shares(asset *Asset) Shares { return t.Amount.PercentOf(asset.Value) }

// MarshalJSON implements the json.Marshaler interface for Sell.
func (t Sell) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.assetCmd)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Sell.
func (t *Sell) UnmarshalJSON(data []byte) error {
	// Use a temporary type that has all possible fields.
	var temp struct {
		assetCmd
		amountCmd
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.assetCmd = temp.assetCmd
	t.Amount = temp.Money()
	return nil
}

func (t Sell) Equal(other Transaction) bool {
	o, ok := other.(Sell)
	return ok && t.assetCmd == o.assetCmd && t.Amount.Equal(o.Amount)
}

// Validate checks the Sell transaction's fields. It ensures the seller holds
// enough shares and that none of the shares needed are locked.
func (t Sell) Validate(ledger *Ledger) (Transaction, error) {
	if err := t.assetCmd.Validate(ledger); err != nil {
		return t, err
	}
	if !t.Amount.IsPositive() {
		return t, fmt.Errorf("sell amount must be positive, got %v", t.Amount)
	}
	var err error
	if t.Amount, err = ledger.toLedgerCurrency(t.Amount); err != nil {
		return t, fmt.Errorf("sell: %w", err)
	}

	asset := ledger.asset(t.AssetID) // not nil, checked in assetCmd.Validate
	shares := t.Shares(asset)
	holding := ledger.holding(t.Actor, t.AssetID)
	if holding.Held.LessThan(shares) {
		return t, fmt.Errorf("cannot sell %v shares of asset %d, holding is %v: %w",
			shares, t.AssetID, holding.Held, ErrInsufficientShares)
	}
	if holding.Unlocked().LessThan(shares) {
		return t, fmt.Errorf("cannot sell %v shares of asset %d, %v are locked: %w",
			shares, t.AssetID, holding.Locked, ErrSharesLocked)
	}
	return t, nil
}

// --- Lock Command ---

// Lock represents a voluntary freeze of part of a shareholding. The amount is
// the locked value; the share count is derived from the asset's valuation. A
// new lock replaces any previous one on the same holding.
type Lock struct {
	assetCmd
	Amount  Money // Amount is the value of the shares to lock.
	Periods int64 // Periods is the number of rental periods the lock covers.
}

// NewLock creates a new Lock transaction.
func NewLock(day Date, memo, actor string, assetID int64, amount Money, periods int64) Lock {
	return Lock{
		assetCmd: assetCmd{baseCmd: baseCmd{Command: CmdLock, Date: day, Actor: actor, Memo: memo}, AssetID: assetID},
		Amount:   amount,
		Periods:  periods,
	}
}

// Shares returns the share count this lock covers against the asset's
// valuation.
func (t Lock) Shares(asset *Asset) Shares { return t.Amount.PercentOf(asset.Value) }

// MarshalJSON implements the json.Marshaler interface for Lock.
func (t Lock) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.assetCmd)
	w.EmbedFrom(t.Amount)
	w.Append("periods", t.Periods)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Lock.
func (t *Lock) UnmarshalJSON(data []byte) error {
	// Use a temporary type that has all possible fields.
	var temp struct {
		assetCmd
		amountCmd
		Periods int64 `json:"periods"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.assetCmd = temp.assetCmd
	t.Amount = temp.Money()
	t.Periods = temp.Periods
	return nil
}

func (t Lock) Equal(other Transaction) bool {
	o, ok := other.(Lock)
	return ok && t.assetCmd == o.assetCmd && t.Amount.Equal(o.Amount) && t.Periods == o.Periods
}

// Validate checks the Lock transaction's fields. The actor must be a
// shareholder of the asset and the lock cannot exceed the holding.
func (t Lock) Validate(ledger *Ledger) (Transaction, error) {
	if err := t.assetCmd.Validate(ledger); err != nil {
		return t, err
	}
	if !t.Amount.IsPositive() {
		return t, fmt.Errorf("lock amount must be positive, got %v", t.Amount)
	}
	if t.Periods <= 0 {
		return t, fmt.Errorf("lock periods must be positive, got %d", t.Periods)
	}
	var err error
	if t.Amount, err = ledger.toLedgerCurrency(t.Amount); err != nil {
		return t, fmt.Errorf("lock: %w", err)
	}

	asset := ledger.asset(t.AssetID) // not nil, checked in assetCmd.Validate
	holding := ledger.holding(t.Actor, t.AssetID)
	if !holding.Held.IsPositive() {
		return t, fmt.Errorf("lock by %q on asset %d: %w", t.Actor, t.AssetID, ErrNotShareholder)
	}
	if holding.Held.LessThan(t.Shares(asset)) {
		return t, fmt.Errorf("cannot lock %v shares of asset %d, holding is %v: %w",
			t.Shares(asset), t.AssetID, holding.Held, ErrInsufficientShares)
	}
	return t, nil
}

// --- Unlock Command ---

// Unlock represents the release of a holding's lock. The lock is cleared
// unconditionally, whatever its expiry period.
type Unlock struct {
	assetCmd
}

// NewUnlock creates a new Unlock transaction.
func NewUnlock(day Date, memo, actor string, assetID int64) Unlock {
	return Unlock{
		assetCmd: assetCmd{baseCmd: baseCmd{Command: CmdUnlock, Date: day, Actor: actor, Memo: memo}, AssetID: assetID},
	}
}

// MarshalJSON implements the json.Marshaler interface for Unlock.
func (t Unlock) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.assetCmd)
	return w.MarshalJSON()
}

func (t Unlock) Equal(other Transaction) bool {
	o, ok := other.(Unlock)
	return ok && t.assetCmd == o.assetCmd
}

// Validate checks the Unlock transaction's fields. The actor must be a
// shareholder of the asset.
func (t Unlock) Validate(ledger *Ledger) (Transaction, error) {
	if err := t.assetCmd.Validate(ledger); err != nil {
		return t, err
	}
	holding := ledger.holding(t.Actor, t.AssetID)
	if !holding.Held.IsPositive() {
		return t, fmt.Errorf("unlock by %q on asset %d: %w", t.Actor, t.AssetID, ErrNotShareholder)
	}
	return t, nil
}

// --- Rent Command ---

// Rent represents a rental payment for an asset. The payment is distributed
// pro rata to the asset's shareholders and the actor becomes the occupant.
type Rent struct {
	assetCmd
	Payment Money // Payment is the rent paid, it must match the asset's rent exactly.
}

// NewRent creates a new Rent transaction.
// If the payment is set to 0, it is resolved to the asset's rent during the
// validation phase.
func NewRent(day Date, memo, actor string, assetID int64, payment Money) Rent {
	return Rent{
		assetCmd: assetCmd{baseCmd: baseCmd{Command: CmdRent, Date: day, Actor: actor, Memo: memo}, AssetID: assetID},
		Payment:  payment,
	}
}

func (t Rent) Currency() string { return t.Payment.Currency() }

// MarshalJSON implements the json.Marshaler interface for Rent.
func (t Rent) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.assetCmd)
	w.EmbedFrom(t.Payment)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Rent.
func (t *Rent) UnmarshalJSON(data []byte) error {
	// Use a temporary type that has all possible fields.
	var temp struct {
		assetCmd
		amountCmd
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.assetCmd = temp.assetCmd
	t.Payment = temp.Money()
	return nil
}

func (t Rent) Equal(other Transaction) bool {
	o, ok := other.(Rent)
	return ok && t.assetCmd == o.assetCmd && t.Payment.Equal(o.Payment)
}

// Validate checks the Rent transaction's fields. The payment must match the
// asset's rent exactly and the asset must have at least one shareholder to
// receive the distribution.
func (t Rent) Validate(ledger *Ledger) (Transaction, error) {
	if err := t.assetCmd.Validate(ledger); err != nil {
		return t, err
	}
	var err error
	if t.Payment, err = ledger.toLedgerCurrency(t.Payment); err != nil {
		return t, fmt.Errorf("rent: %w", err)
	}

	asset := ledger.asset(t.AssetID) // not nil, checked in assetCmd.Validate
	if t.Payment.IsZero() {
		// quick fix, pay the asking rent.
		t.Payment = asset.Rent
	}
	if !t.Payment.Equal(asset.Rent) {
		return t, fmt.Errorf("rent for asset %d is %v, got %v: %w", t.AssetID, asset.Rent, t.Payment, ErrInsufficientFunds)
	}
	if !asset.SharesSold.IsPositive() {
		return t, fmt.Errorf("asset %d has no shareholders to pay: %w", t.AssetID, ErrNotShareholder)
	}
	return t, nil
}

// --- KickOut Command ---

// KickOut represents the administrative eviction of an asset's occupant.
type KickOut struct {
	assetCmd
}

// NewKickOut creates a new KickOut transaction.
func NewKickOut(day Date, memo, actor string, assetID int64) KickOut {
	return KickOut{
		assetCmd: assetCmd{baseCmd: baseCmd{Command: CmdKickOut, Date: day, Actor: actor, Memo: memo}, AssetID: assetID},
	}
}

// MarshalJSON implements the json.Marshaler interface for KickOut.
func (t KickOut) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.assetCmd)
	return w.MarshalJSON()
}

func (t KickOut) Equal(other Transaction) bool {
	o, ok := other.(KickOut)
	return ok && t.assetCmd == o.assetCmd
}

// Validate checks the KickOut transaction's fields. Only the administrator can
// evict, and only when the asset has an occupant.
func (t KickOut) Validate(ledger *Ledger) (Transaction, error) {
	if err := t.assetCmd.Validate(ledger); err != nil {
		return t, err
	}
	if !ledger.isAdmin(t.Actor) {
		return t, fmt.Errorf("kick-out by %q: %w", t.Actor, ErrUnauthorized)
	}
	asset := ledger.asset(t.AssetID) // not nil, checked in assetCmd.Validate
	if !asset.Rented {
		return t, fmt.Errorf("asset %d is vacant: %w", t.AssetID, ErrNoOccupant)
	}
	return t, nil
}
