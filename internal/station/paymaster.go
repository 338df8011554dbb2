package station

import (
	"fmt"
	"math"

	"github.com/holiman/uint256"
)

// Paymaster is one fee-paying account of a foreign chain. TokenID doubles as
// the signing key derivation path. MinimumAvailableBalance is a pessimistic
// lower bound on the funds the paymaster can still commit.
type Paymaster struct {
	TokenID                 string
	Nonce                   uint32
	MinimumAvailableBalance *uint256.Int
}

func (p Paymaster) Clone() Paymaster {
	out := p
	if p.MinimumAvailableBalance != nil {
		out.MinimumAvailableBalance = p.MinimumAvailableBalance.Clone()
	} else {
		out.MinimumAvailableBalance = new(uint256.Int)
	}
	return out
}

// NextNonce returns the current nonce and advances it. Nonces are never
// reused, so exhausting the counter is an error instead of a wrap.
func (p *Paymaster) NextNonce() (uint32, error) {
	if p.Nonce == math.MaxUint32 {
		return 0, fmt.Errorf("%w: nonce of paymaster %q exhausted", ErrArithmeticOverflow, p.TokenID)
	}
	nonce := p.Nonce
	p.Nonce++
	return nonce, nil
}

// Deduct removes amount from the available balance. On failure the balance
// is left untouched.
func (p *Paymaster) Deduct(amount *uint256.Int) error {
	balance := p.balance()
	if amount.Gt(balance) {
		return fmt.Errorf("%w: paymaster %q has %s, needs %s", ErrInsufficientBalance, p.TokenID, balance.Dec(), amount.Dec())
	}
	p.MinimumAvailableBalance = new(uint256.Int).Sub(balance, amount)
	return nil
}

func (p *Paymaster) Credit(amount *uint256.Int) error {
	next, err := checkedAdd(p.balance(), amount)
	if err != nil {
		return fmt.Errorf("credit paymaster %q: %w", p.TokenID, err)
	}
	p.MinimumAvailableBalance = next
	return nil
}

func (p *Paymaster) balance() *uint256.Int {
	if p.MinimumAvailableBalance == nil {
		return new(uint256.Int)
	}
	return p.MinimumAvailableBalance
}
