package assetbloc

import "errors"

// Error kinds surfaced by ledger operations. Failures are reported
// synchronously and leave the ledger untouched; callers discriminate with
// errors.Is.
var (
	// ErrUnauthorized is returned when a caller other than the administrator
	// invokes a restricted operation.
	ErrUnauthorized = errors.New("caller is not the administrator")
	// ErrNotFound is returned for an unknown asset id or a never-initialized
	// account.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientFunds is returned when a balance or payment is below the
	// required amount.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInsufficientSupply is returned when an asset has fewer unsold shares
	// than requested.
	ErrInsufficientSupply = errors.New("shares amount not available")
	// ErrInsufficientShares is returned when a seller holds fewer shares than
	// requested.
	ErrInsufficientShares = errors.New("insufficient shares")
	// ErrSharesLocked is returned when the requested shares are unavailable
	// because of an active lock.
	ErrSharesLocked = errors.New("shares are locked")
	// ErrNotShareholder is returned when the caller holds no shares in the
	// referenced asset.
	ErrNotShareholder = errors.New("not an asset owner")
	// ErrNoOccupant is returned when an operation requires a current renter
	// and there is none.
	ErrNoOccupant = errors.New("no occupant")
)
