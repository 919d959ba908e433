package rowtable

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func newString(s string) func() (string, error) {
	return func() (string, error) { return s, nil }
}

func TestClaimOrGet(t *testing.T) {
	cases := map[string]struct {
		size              int64
		newSuccessEntries map[int64]string
		newFailedEntries  []int64
		expectedEntries   int
	}{

		"Normal": {
			size: 21,
			newSuccessEntries: map[int64]string{
				0:  "a",
				10: "b",
				20: "c",
			},
			newFailedEntries: []int64{21, -1},
			expectedEntries:  3,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := NewTable[string](tc.size)

			for id, d := range tc.newSuccessEntries {
				got, err := r.ClaimOrGet(id, newString(d))
				assert.NoError(t, err)
				assert.Equal(t, d, got)
			}
			for _, id := range tc.newFailedEntries {
				_, err := r.ClaimOrGet(id, newString("x"))
				assert.Error(t, err)
			}
			for id, d := range tc.newSuccessEntries {
				if !r.Has(id) {
					t.Errorf("%s expecting success claim entry: %d\n", name, id)
				}
				// an existing row is returned as is
				got, err := r.ClaimOrGet(id, newString("other"))
				assert.NoError(t, err)
				assert.Equal(t, d, got)
			}
			if r.Count() != tc.expectedEntries {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expectedEntries, r.Count())
			}
		})
	}
}

func TestClaimOrGetSame(t *testing.T) {
	r := NewTable[*int](10)

	calls := 0
	newFn := func() (*int, error) {
		calls++
		v := calls
		return &v, nil
	}

	first, err := r.ClaimOrGet(3, newFn)
	assert.NoError(t, err)
	second, err := r.ClaimOrGet(3, newFn)
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Same(t, first, second)

	failing := func() (*int, error) { return nil, errors.New("boom") }
	_, err = r.ClaimOrGet(4, failing)
	assert.Error(t, err)
	assert.False(t, r.Has(4))
}

func TestGet(t *testing.T) {
	r := NewTable[string](5)
	_, err := r.ClaimOrGet(2, newString("a"))
	assert.NoError(t, err)

	d, err := r.Get(2)
	assert.NoError(t, err)
	assert.Equal(t, "a", d)

	_, err = r.Get(3)
	assert.Error(t, err)
	_, err = r.Get(5)
	assert.Error(t, err)
}

func TestRelease(t *testing.T) {
	cases := map[string]struct {
		size                 int64
		newSuccessEntries    map[int64]string
		expectedEntries      int
		deleteSuccessEntries []int64
		deleteFailedEntries  []int64
	}{

		"Normal": {
			size: 21,
			newSuccessEntries: map[int64]string{
				0:  "a",
				1:  "b",
				10: "c",
				11: "d",
				20: "e",
			},
			deleteSuccessEntries: []int64{0, 10, 11, 15},
			deleteFailedEntries:  []int64{21, -1},

			expectedEntries: 2,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := NewTable[string](tc.size)

			for id, d := range tc.newSuccessEntries {
				_, err := r.ClaimOrGet(id, newString(d))
				assert.NoError(t, err)
			}
			for _, id := range tc.deleteSuccessEntries {
				err := r.Release(id)
				assert.NoError(t, err)
			}
			for _, id := range tc.deleteFailedEntries {
				err := r.Release(id)
				assert.Error(t, err)
			}
			for _, id := range tc.deleteSuccessEntries {
				_, err := r.Get(id)
				assert.Error(t, err)
				if r.Has(id) {
					t.Errorf("%s not expecting deleted claim entry: %d\n", name, id)
				}
			}

			if r.Count() != tc.expectedEntries {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expectedEntries, r.Count())
			}
			// all five rows were held together before releasing
			assert.Equal(t, 5, r.HighWater())

			// releasing does not lower the high water mark
			_, err := r.ClaimOrGet(0, newString("a"))
			assert.NoError(t, err)
			assert.Equal(t, 5, r.HighWater())
		})
	}
}

func TestIterate(t *testing.T) {
	cases := map[string]struct {
		size    int64
		entries map[int64]string
		keys    []int64
	}{

		"Normal": {
			size:    21,
			entries: map[int64]string{20: "c", 0: "a", 1: "b"},
			keys:    []int64{0, 1, 20},
		},
		"None": {
			size:    21,
			entries: nil,
			keys:    []int64{},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := NewTable[string](tc.size)
			for id, d := range tc.entries {
				_, err := r.ClaimOrGet(id, newString(d))
				assert.NoError(t, err)
			}

			i := r.Iterate()
			if diff := cmp.Diff(tc.keys, i.keys); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
			for i.Next() {
				assert.Equal(t, tc.entries[i.ID()], i.Value())
			}
		})
	}
}
