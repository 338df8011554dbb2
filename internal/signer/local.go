// Package signer provides an in-process stand-in for the external signing
// service. Every derivation path gets its own secp256k1 key derived from a
// single root key.
package signer

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrInvalidKey = errors.New("signer: invalid key")

type Local struct {
	root *ecdsa.PrivateKey
}

func NewLocal(rootKeyHex string) (*Local, error) {
	k, err := crypto.HexToECDSA(trim0x(rootKeyHex))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return &Local{root: k}, nil
}

func trim0x(s string) string {
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		return s[2:]
	}
	return s
}

// derive returns keccak256(root || path) mod N as the key for path.
func (l *Local) derive(path string) (*ecdsa.PrivateKey, error) {
	seed := crypto.Keccak256(crypto.FromECDSA(l.root), []byte(path))
	d := new(big.Int).SetBytes(seed)
	d.Mod(d, crypto.S256().Params().N)
	if d.Sign() == 0 {
		return nil, fmt.Errorf("%w: zero scalar for path %q", ErrInvalidKey, path)
	}
	return crypto.ToECDSA(math.PaddedBigBytes(d, 32))
}

// Sign returns a 65 byte [R || S || V] signature with V in {0, 1}.
func (l *Local) Sign(ctx context.Context, payload common.Hash, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	k, err := l.derive(path)
	if err != nil {
		return nil, err
	}
	return crypto.Sign(payload[:], k)
}

func (l *Local) Address(path string) (common.Address, error) {
	k, err := l.derive(path)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(k.PublicKey), nil
}
