package common

import (
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
)

var ErrInvalidWei = errors.New("invalid wei amount")

// weiUnits maps a unit suffix to its power of ten. Longer suffixes go first.
var weiUnits = []struct {
	suffix string
	exp    int32
}{
	{"ether", 18},
	{"gwei", 9},
	{"wei", 0},
}

// ParseWei accepts a decimal or 0x-prefixed hex amount in wei, or a decimal
// amount with a unit suffix ("1.5ether", "20gwei"). Empty string means unset.
func ParseWei(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		value, err := uint256.FromHex(s)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidWei, s, err)
		}
		return value, nil
	}

	amount, exp := s, int32(0)
	lower := strings.ToLower(s)
	for _, unit := range weiUnits {
		if strings.HasSuffix(lower, unit.suffix) {
			amount, exp = strings.TrimSpace(s[:len(s)-len(unit.suffix)]), unit.exp
			break
		}
	}

	if exp == 0 {
		value, err := uint256.FromDecimal(amount)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidWei, s, err)
		}
		return value, nil
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidWei, s, err)
	}
	d = d.Shift(exp)
	if d.IsNegative() || !d.IsInteger() {
		return nil, fmt.Errorf("%w %q: not a whole non-negative number of wei", ErrInvalidWei, s)
	}
	value, overflow := uint256.FromBig(d.BigInt())
	if overflow {
		return nil, fmt.Errorf("%w %q: overflows 256 bits", ErrInvalidWei, s)
	}
	return value, nil
}

// WeiValue is a command line flag holding an amount in wei.
type WeiValue struct {
	Value *uint256.Int
}

var _ pflag.Value = (*WeiValue)(nil)

func (w *WeiValue) String() string {
	if w.Value == nil {
		return ""
	}
	return w.Value.Dec()
}

func (w *WeiValue) Set(s string) error {
	value, err := ParseWei(s)
	if err != nil {
		return err
	}
	w.Value = value
	return nil
}

func (w *WeiValue) Type() string {
	return "wei"
}
