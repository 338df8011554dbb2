package station

// KeySet is the ordered key space of one chain's paymasters. Keys compare
// as byte strings in ascending order.
type KeySet interface {
	// Ceiling returns the smallest key >= key.
	Ceiling(key string) (string, bool, error)
	// Higher returns the smallest key > key.
	Higher(key string) (string, bool, error)
	Min() (string, bool, error)
}

// NextPaymasterKey resolves the rotation cursor to the paymaster to use now
// and the cursor to persist for the following call. The cursor may name a
// key that no longer exists; it then resolves to the next larger key, or
// wraps to the smallest one. ok is false only when the set is empty.
func NextPaymasterKey(keys KeySet, cursor string) (selected, next string, ok bool, err error) {
	selected, ok, err = ceilingOrMin(keys, cursor)
	if err != nil || !ok {
		return "", "", false, err
	}
	next, ok, err = keys.Higher(selected)
	if err != nil {
		return "", "", false, err
	}
	if !ok {
		next, ok, err = keys.Min()
		if err != nil || !ok {
			return "", "", false, err
		}
	}
	return selected, next, true, nil
}

func ceilingOrMin(keys KeySet, cursor string) (string, bool, error) {
	key, ok, err := keys.Ceiling(cursor)
	if err != nil || ok {
		return key, ok, err
	}
	return keys.Min()
}

// selectNext advances the chain's rotation cursor and returns a copy of the
// selected paymaster. The cursor is stored before the caller checks whether
// the paymaster can serve the request.
func selectNext(tx Tx, chain *Chain) (*Paymaster, error) {
	selected, next, ok, err := NextPaymasterKey(tx.PaymasterKeys(chain.ChainID), chain.NextPaymaster)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPaymasterNotFound
	}
	chain.NextPaymaster = next
	if err := tx.PutChain(chain); err != nil {
		return nil, err
	}
	pm, err := tx.Paymaster(chain.ChainID, selected)
	if err != nil {
		return nil, err
	}
	cp := pm.Clone()
	return &cp, nil
}
