package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/weft/errors"
)

// ascendBtree returns a snapshot of all items in [start, end) in ascending
// order. A nil bound means unbounded.
func ascendBtree(bt *btree.BTree, start, end []byte) []keyer {
	var res []keyer
	collect := func(item btree.Item) bool {
		res = append(res, item.(keyer))
		return true
	}
	switch {
	case start == nil && end == nil:
		bt.Ascend(collect)
	case start == nil:
		bt.AscendLessThan(bkey{end}, collect)
	case end == nil:
		bt.AscendGreaterOrEqual(bkey{start}, collect)
	default:
		bt.AscendRange(bkey{start}, bkey{end}, collect)
	}
	return res
}

// descendBtree returns the same domain as ascendBtree in descending order.
func descendBtree(bt *btree.BTree, start, end []byte) []keyer {
	res := ascendBtree(bt, start, end)
	for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}
	return res
}

// cacheIterator merges the cached items with the parent iterator, so that
// the cached writes and deletes shadow the parent data.
type cacheIterator struct {
	items   []keyer
	idx     int
	reverse bool

	parent     Iterator
	parentKey  []byte
	parentVal  []byte
	parentHas  bool
	parentDone bool
}

var _ Iterator = (*cacheIterator)(nil)

func newCacheIterator(items []keyer, parent Iterator, reverse bool) *cacheIterator {
	return &cacheIterator{
		items:   items,
		reverse: reverse,
		parent:  parent,
	}
}

// Next implements Iterator.
func (i *cacheIterator) Next() (key, value []byte, err error) {
	for {
		if err := i.peekParent(); err != nil {
			return nil, nil, err
		}

		if i.idx >= len(i.items) {
			if i.parentDone {
				return nil, nil, errors.Wrap(errors.ErrIteratorDone, "cache iterator")
			}
			return i.takeParent()
		}

		local := i.items[i.idx]
		if !i.parentDone {
			cmp := bytes.Compare(local.Key(), i.parentKey)
			if i.reverse {
				cmp = -cmp
			}
			if cmp > 0 {
				return i.takeParent()
			}
			if cmp == 0 {
				// Cached value shadows the parent one.
				i.parentHas = false
			}
		}

		i.idx++
		switch item := local.(type) {
		case setItem:
			return item.key, item.value, nil
		case deletedItem:
			continue
		default:
			return nil, nil, errors.Wrapf(errors.ErrDatabase, "unknown item in btree: %#v", local)
		}
	}
}

func (i *cacheIterator) peekParent() error {
	if i.parentHas || i.parentDone {
		return nil
	}
	k, v, err := i.parent.Next()
	if err != nil {
		if errors.ErrIteratorDone.Is(err) {
			i.parentDone = true
			return nil
		}
		return err
	}
	i.parentKey, i.parentVal, i.parentHas = k, v, true
	return nil
}

func (i *cacheIterator) takeParent() ([]byte, []byte, error) {
	i.parentHas = false
	return i.parentKey, i.parentVal, nil
}

// Release implements Iterator.
func (i *cacheIterator) Release() {
	i.parent.Release()
	i.items = nil
}
