// Package hashertest holds a conformance suite that every hasher.Hasher
// implementation is expected to pass.
package hashertest

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Layr-Labs/merkle-proof-go/pkg/hasher"
)

type HasherFactory func() (h hasher.Hasher, hashSize int)

func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("leaf is deterministic", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		a := h.HashLeaf([]byte("deterministic_data"))
		b := h.HashLeaf([]byte("deterministic_data"))
		require.Equal(t, a, b)
		require.Len(t, a, sz)
	})

	t.Run("pair is deterministic", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		l := h.HashLeaf([]byte("left"))
		r := h.HashLeaf([]byte("right"))

		p1 := h.HashPair(l, r)
		p2 := h.HashPair(l, r)
		require.Equal(t, p1, p2)
		require.Len(t, p1, sz)
	})

	t.Run("pair respects order", func(t *testing.T) {
		t.Parallel()

		h, _ := f()

		l := h.HashLeaf([]byte("left"))
		r := h.HashLeaf([]byte("right"))
		require.NotEqual(t, h.HashPair(l, r), h.HashPair(r, l))
	})

	t.Run("leaf respects input", func(t *testing.T) {
		t.Parallel()

		h, _ := f()
		require.NotEqual(t, h.HashLeaf([]byte("hello")), h.HashLeaf([]byte("hellp")))
		require.NotEqual(t, h.HashLeaf([]byte{0}), h.HashLeaf([]byte{0, 0}))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		require.Len(t, h.HashLeaf(nil), sz)
		require.Equal(t, h.HashLeaf(nil), h.HashLeaf([]byte{}))
		require.Len(t, h.HashPair(nil, nil), sz)
	})

	t.Run("does not retain inputs", func(t *testing.T) {
		t.Parallel()

		h, _ := f()

		in := []byte("mutable")
		want := h.HashLeaf([]byte("mutable"))
		got := h.HashLeaf(in)
		in[0] = 'M'
		require.Equal(t, want, got)
	})

	t.Run("concurrent use", func(t *testing.T) {
		t.Parallel()

		h, _ := f()
		want := h.HashPair(h.HashLeaf([]byte("a")), h.HashLeaf([]byte("b")))

		var wg sync.WaitGroup
		results := make([][]byte, 8)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = h.HashPair(h.HashLeaf([]byte("a")), h.HashLeaf([]byte("b")))
			}(i)
		}
		wg.Wait()

		for _, got := range results {
			require.Equal(t, want, got)
		}
	})
}
