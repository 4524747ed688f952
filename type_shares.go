package assetbloc

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Shares is a quantity of asset shares, in percentage units out of an
// asset's 100 total shares.
type Shares struct {
	value decimal.Decimal
}

func S[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Shares {
	return Shares{value: newDecimal(value)}
}

func (s Shares) Equal(p Shares) bool       { return s.value.Equal(p.value) }
func (s Shares) LessThan(p Shares) bool    { return s.value.LessThan(p.value) }
func (s Shares) GreaterThan(p Shares) bool { return s.value.GreaterThan(p.value) }
func (s Shares) Add(p Shares) Shares       { return Shares{value: s.value.Add(p.value)} }
func (s Shares) Sub(p Shares) Shares       { return Shares{value: s.value.Sub(p.value)} }
func (s Shares) IsNegative() bool          { return s.value.IsNegative() }
func (s Shares) IsPositive() bool          { return s.value.IsPositive() }
func (s Shares) IsZero() bool              { return s.value.IsZero() }
func (s Shares) String() string            { return s.value.String() }

// Percent formats the share count as a percentage of the asset.
func (s Shares) Percent() string { return fmt.Sprintf("%s%%", s.value.String()) }

// MarshalJSON implements the json.Marshaler interface for Shares.
func (s Shares) MarshalJSON() ([]byte, error) {
	return s.value.MarshalJSON()
}

func (s *Shares) UnmarshalJSON(decimalBytes []byte) error {
	return s.value.UnmarshalJSON(decimalBytes)
}
