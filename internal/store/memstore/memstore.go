// Package memstore keeps gas station state in process memory. Paymasters and
// chains live in ordered tree maps so rotation can use ceiling lookups.
package memstore

import (
	"context"
	"sync"

	"github.com/0xPexy/sentra-gas-station/internal/station"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/holiman/uint256"
)

type chainEntry struct {
	chain      station.Chain
	paymasters *treemap.Map // token id -> station.Paymaster
}

type state struct {
	chains       *treemap.Map // chain id -> *chainEntry
	fees         map[string]*uint256.Int
	assets       *treeset.Set
	reservations []station.Reservation
	transfers    []station.TransferInstruction
}

// Store is a station.Store. Update works on a copy of the state and swaps it
// in only when the transition succeeds.
type Store struct {
	mu    sync.RWMutex
	state *state
}

func New() *Store {
	return &Store{state: &state{
		chains: treemap.NewWith(utils.UInt64Comparator),
		fees:   make(map[string]*uint256.Int),
		assets: treeset.NewWithStringComparator(),
	}}
}

func (s *Store) View(ctx context.Context, fn func(station.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&tx{st: s.state})
}

func (s *Store) Update(ctx context.Context, fn func(station.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	draft := s.state.clone()
	if err := fn(&tx{st: draft}); err != nil {
		return err
	}
	s.state = draft
	return nil
}

func (st *state) clone() *state {
	out := &state{
		chains:       treemap.NewWith(utils.UInt64Comparator),
		fees:         make(map[string]*uint256.Int, len(st.fees)),
		assets:       treeset.NewWithStringComparator(st.assets.Values()...),
		reservations: make([]station.Reservation, len(st.reservations)),
		transfers:    make([]station.TransferInstruction, len(st.transfers)),
	}
	it := st.chains.Iterator()
	for it.Next() {
		entry := it.Value().(*chainEntry)
		pms := treemap.NewWithStringComparator()
		pit := entry.paymasters.Iterator()
		for pit.Next() {
			pms.Put(pit.Key(), pit.Value().(station.Paymaster).Clone())
		}
		out.chains.Put(it.Key(), &chainEntry{chain: entry.chain.Clone(), paymasters: pms})
	}
	for k, v := range st.fees {
		out.fees[k] = v.Clone()
	}
	for i, r := range st.reservations {
		out.reservations[i] = cloneReservation(r)
	}
	copy(out.transfers, st.transfers)
	return out
}

type tx struct {
	st *state
}

func (t *tx) entry(chainID uint64) (*chainEntry, error) {
	v, ok := t.st.chains.Get(chainID)
	if !ok {
		return nil, station.ErrChainNotFound
	}
	return v.(*chainEntry), nil
}

func (t *tx) Chain(chainID uint64) (*station.Chain, error) {
	e, err := t.entry(chainID)
	if err != nil {
		return nil, err
	}
	c := e.chain.Clone()
	return &c, nil
}

func (t *tx) Chains() ([]station.Chain, error) {
	out := make([]station.Chain, 0, t.st.chains.Size())
	it := t.st.chains.Iterator()
	for it.Next() {
		out = append(out, it.Value().(*chainEntry).chain.Clone())
	}
	return out, nil
}

func (t *tx) PutChain(chain *station.Chain) error {
	if e, err := t.entry(chain.ChainID); err == nil {
		e.chain = chain.Clone()
		return nil
	}
	t.st.chains.Put(chain.ChainID, &chainEntry{
		chain:      chain.Clone(),
		paymasters: treemap.NewWithStringComparator(),
	})
	return nil
}

func (t *tx) DeleteChain(chainID uint64) error {
	if e, err := t.entry(chainID); err == nil {
		e.paymasters.Clear()
	}
	t.st.chains.Remove(chainID)
	return nil
}

func (t *tx) Paymaster(chainID uint64, tokenID string) (*station.Paymaster, error) {
	e, err := t.entry(chainID)
	if err != nil {
		return nil, err
	}
	v, ok := e.paymasters.Get(tokenID)
	if !ok {
		return nil, station.ErrPaymasterNotFound
	}
	pm := v.(station.Paymaster).Clone()
	return &pm, nil
}

func (t *tx) Paymasters(chainID uint64) ([]station.Paymaster, error) {
	e, err := t.entry(chainID)
	if err != nil {
		return nil, err
	}
	out := make([]station.Paymaster, 0, e.paymasters.Size())
	it := e.paymasters.Iterator()
	for it.Next() {
		out = append(out, it.Value().(station.Paymaster).Clone())
	}
	return out, nil
}

func (t *tx) PaymasterKeys(chainID uint64) station.KeySet {
	e, err := t.entry(chainID)
	if err != nil {
		return keySet{m: treemap.NewWithStringComparator()}
	}
	return keySet{m: e.paymasters}
}

func (t *tx) PutPaymaster(chainID uint64, pm *station.Paymaster) error {
	e, err := t.entry(chainID)
	if err != nil {
		return err
	}
	e.paymasters.Put(pm.TokenID, pm.Clone())
	return nil
}

func (t *tx) DeletePaymaster(chainID uint64, tokenID string) error {
	e, err := t.entry(chainID)
	if err != nil {
		return err
	}
	e.paymasters.Remove(tokenID)
	return nil
}

func (t *tx) CollectedFee(asset string) (*uint256.Int, error) {
	v, ok := t.st.fees[asset]
	if !ok {
		return nil, nil
	}
	return v.Clone(), nil
}

func (t *tx) CollectedFees() (map[string]*uint256.Int, error) {
	out := make(map[string]*uint256.Int, len(t.st.fees))
	for k, v := range t.st.fees {
		out[k] = v.Clone()
	}
	return out, nil
}

func (t *tx) PutCollectedFee(asset string, amount *uint256.Int) error {
	t.st.fees[asset] = amount.Clone()
	return nil
}

func (t *tx) AcceptedAssets() ([]string, error) {
	out := make([]string, 0, t.st.assets.Size())
	for _, v := range t.st.assets.Values() {
		out = append(out, v.(string))
	}
	return out, nil
}

func (t *tx) IsAcceptedAsset(asset string) (bool, error) {
	return t.st.assets.Contains(asset), nil
}

func (t *tx) PutAcceptedAsset(asset string) error {
	t.st.assets.Add(asset)
	return nil
}

func (t *tx) DeleteAcceptedAsset(asset string) error {
	t.st.assets.Remove(asset)
	return nil
}

func (t *tx) PutReservation(r *station.Reservation) error {
	if r.ID == 0 {
		r.ID = uint64(len(t.st.reservations)) + 1
		t.st.reservations = append(t.st.reservations, cloneReservation(*r))
		return nil
	}
	if r.ID > uint64(len(t.st.reservations)) {
		return station.ErrReservationNotFound
	}
	t.st.reservations[r.ID-1] = cloneReservation(*r)
	return nil
}

func (t *tx) Reservation(id uint64) (*station.Reservation, error) {
	if id == 0 || id > uint64(len(t.st.reservations)) {
		return nil, station.ErrReservationNotFound
	}
	r := cloneReservation(t.st.reservations[id-1])
	return &r, nil
}

func (t *tx) Reservations(filter station.ReservationFilter) ([]station.Reservation, error) {
	out := make([]station.Reservation, 0)
	skipped := 0
	for _, r := range t.st.reservations {
		if filter.CreatedBy != "" && r.CreatedBy != filter.CreatedBy {
			continue
		}
		if skipped < filter.Offset {
			skipped++
			continue
		}
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
		out = append(out, cloneReservation(r))
	}
	return out, nil
}

func (t *tx) PutTransfer(tr *station.TransferInstruction) error {
	cp := *tr
	cp.Amount = tr.Amount.Clone()
	t.st.transfers = append(t.st.transfers, cp)
	return nil
}

// Transfers returns the recorded transfer instructions in creation order.
func (s *Store) Transfers() []station.TransferInstruction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]station.TransferInstruction, len(s.state.transfers))
	copy(out, s.state.transfers)
	return out
}

func cloneReservation(r station.Reservation) station.Reservation {
	out := r
	out.Gas = cloneInt(r.Gas)
	out.MaxFeePerGas = cloneInt(r.MaxFeePerGas)
	out.Amount = cloneInt(r.Amount)
	out.Charge = cloneInt(r.Charge)
	if r.SignedTx != nil {
		out.SignedTx = append([]byte(nil), r.SignedTx...)
	}
	return out
}

func cloneInt(x *uint256.Int) *uint256.Int {
	if x == nil {
		return nil
	}
	return x.Clone()
}

// keySet answers ordered lookups on a chain's paymaster tree. The smallest
// string strictly greater than k is k+"\x00", so Higher is a ceiling lookup.
type keySet struct {
	m *treemap.Map
}

func (k keySet) Ceiling(key string) (string, bool, error) {
	found, _ := k.m.Ceiling(key)
	if found == nil {
		return "", false, nil
	}
	return found.(string), true, nil
}

func (k keySet) Higher(key string) (string, bool, error) {
	return k.Ceiling(key + "\x00")
}

func (k keySet) Min() (string, bool, error) {
	found, _ := k.m.Min()
	if found == nil {
		return "", false, nil
	}
	return found.(string), true, nil
}
