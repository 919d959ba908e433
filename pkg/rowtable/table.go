package rowtable

import (
	"fmt"
	"sort"
	"sync"
)

// Table holds per-row state for rows [0, size-1]. Rows are created lazily
// and released once they are no longer needed.
type Table[T1 any] interface {
	Get(id int64) (T1, error)
	ClaimOrGet(id int64, newFn func() (T1, error)) (T1, error)
	Release(id int64) error

	Iterate() *Iterator[T1]

	Count() int
	HighWater() int
	Has(id int64) bool
}

func NewTable[T1 any](s int64) Table[T1] {
	return &table[T1]{
		m:     new(sync.RWMutex),
		table: map[int64]T1{},
		size:  s,
	}
}

type table[T1 any] struct {
	m         *sync.RWMutex
	table     map[int64]T1
	size      int64
	highWater int
}

func (r *table[T1]) validate(id int64) error {
	if id < 0 || id > r.size-1 {
		return fmt.Errorf("row %d is outside of the allowed rows: 0-%d", id, r.size-1)
	}
	return nil
}

func (r *table[T1]) Get(id int64) (T1, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	var d T1

	if err := r.validate(id); err != nil {
		return d, err
	}

	d, ok := r.table[id]
	if !ok {
		return d, fmt.Errorf("no match found for row: %d", id)
	}
	return d, nil
}

// ClaimOrGet returns the entry of row id, creating it with newFn when the
// row does not exist yet.
func (r *table[T1]) ClaimOrGet(id int64, newFn func() (T1, error)) (T1, error) {
	r.m.Lock()
	defer r.m.Unlock()

	if d, ok := r.table[id]; ok {
		return d, nil
	}
	d, err := newFn()
	if err != nil {
		return d, err
	}
	if err := r.add(id, d); err != nil {
		var zero T1
		return zero, err
	}
	return d, nil
}

func (r *table[T1]) Release(id int64) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.delete(id)
}

func (r *table[T1]) Iterate() *Iterator[T1] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.iterate()
}

func (r *table[T1]) iterate() *Iterator[T1] {
	keys := make([]int64, 0, len(r.table))
	entries := make(map[int64]T1, len(r.table))
	for key, d := range r.table {
		keys = append(keys, key)
		entries[key] = d
	}
	sort.Slice(keys, func(i int, j int) bool {
		return keys[i] < keys[j]
	})

	return &Iterator[T1]{current: -1, keys: keys, table: entries}
}

func (r *table[T1]) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.table)
}

// HighWater returns the largest number of rows held at the same time.
func (r *table[T1]) HighWater() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.highWater
}

func (r *table[T1]) Has(id int64) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.table[id]
	return ok
}

func (r *table[T1]) add(id int64, d T1) error {
	if err := r.validate(id); err != nil {
		return err
	}
	if _, ok := r.table[id]; ok {
		return fmt.Errorf("row %d already exists", id)
	}
	r.table[id] = d
	if len(r.table) > r.highWater {
		r.highWater = len(r.table)
	}
	return nil
}

func (r *table[T1]) delete(id int64) error {
	if err := r.validate(id); err != nil {
		return err
	}
	delete(r.table, id)
	return nil
}
