package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/0xPexy/sentra-gas-station/internal/station"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T, tokens ...string) *Store {
	t.Helper()
	s := New()
	err := s.Update(context.Background(), func(tx station.Tx) error {
		if err := tx.PutChain(&station.Chain{ChainID: 1, TransferGas: uint256.NewInt(1), FeeRate: station.UnitFeeRate()}); err != nil {
			return err
		}
		for _, token := range tokens {
			if err := tx.PutPaymaster(1, &station.Paymaster{TokenID: token, MinimumAvailableBalance: uint256.NewInt(10)}); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
	return s
}

func TestKeySetOrdering(t *testing.T) {
	s := seeded(t, "b", "ab", "a")
	err := s.View(context.Background(), func(tx station.Tx) error {
		keys := tx.PaymasterKeys(1)

		k, ok, err := keys.Min()
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "a", k)

		k, ok, err = keys.Higher("a")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "ab", k)

		k, ok, err = keys.Ceiling("aa")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "ab", k)

		_, ok, err = keys.Higher("b")
		require.NoError(t, err)
		require.False(t, ok)
		return nil
	})
	require.NoError(t, err)
}

func TestUpdateDiscardsFailedTransition(t *testing.T) {
	s := seeded(t, "a")
	boom := errors.New("boom")

	err := s.Update(context.Background(), func(tx station.Tx) error {
		pm, err := tx.Paymaster(1, "a")
		if err != nil {
			return err
		}
		if err := pm.Deduct(uint256.NewInt(10)); err != nil {
			return err
		}
		if err := tx.PutPaymaster(1, pm); err != nil {
			return err
		}
		if err := tx.PutReservation(&station.Reservation{ChainID: 1, TokenID: "a"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	err = s.View(context.Background(), func(tx station.Tx) error {
		pm, err := tx.Paymaster(1, "a")
		require.NoError(t, err)
		require.Equal(t, uint64(10), pm.MinimumAvailableBalance.Uint64())
		_, err = tx.Reservation(1)
		require.ErrorIs(t, err, station.ErrReservationNotFound)
		return nil
	})
	require.NoError(t, err)
}

func TestReadsAreCopies(t *testing.T) {
	s := seeded(t, "a")
	err := s.View(context.Background(), func(tx station.Tx) error {
		pm, err := tx.Paymaster(1, "a")
		require.NoError(t, err)
		pm.MinimumAvailableBalance.SetUint64(0)

		again, err := tx.Paymaster(1, "a")
		require.NoError(t, err)
		require.Equal(t, uint64(10), again.MinimumAvailableBalance.Uint64())
		return nil
	})
	require.NoError(t, err)
}

func TestDeleteChainDropsPaymasters(t *testing.T) {
	s := seeded(t, "a")
	require.NoError(t, s.Update(context.Background(), func(tx station.Tx) error {
		return tx.DeleteChain(1)
	}))
	err := s.View(context.Background(), func(tx station.Tx) error {
		_, err := tx.Paymaster(1, "a")
		require.ErrorIs(t, err, station.ErrChainNotFound)
		_, ok, err := tx.PaymasterKeys(1).Min()
		require.NoError(t, err)
		require.False(t, ok)
		return nil
	})
	require.NoError(t, err)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := New().Update(ctx, func(station.Tx) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}

func TestAcceptedAssets(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.Update(ctx, func(tx station.Tx) error {
		for _, a := range []string{"wnear", "usdc", "usdc"} {
			if err := tx.PutAcceptedAsset(a); err != nil {
				return err
			}
		}
		return nil
	}))

	boom := errors.New("boom")
	err := s.Update(ctx, func(tx station.Tx) error {
		if err := tx.DeleteAcceptedAsset("usdc"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	require.NoError(t, s.View(ctx, func(tx station.Tx) error {
		assets, err := tx.AcceptedAssets()
		require.NoError(t, err)
		require.Equal(t, []string{"usdc", "wnear"}, assets)
		ok, err := tx.IsAcceptedAsset("dai")
		require.NoError(t, err)
		require.False(t, ok)
		return nil
	}))
}
