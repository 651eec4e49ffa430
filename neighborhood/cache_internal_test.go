package neighborhood

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type open struct{ n int }

func (o open) Dimensions() (int, int) { return o.n, o.n }
func (o open) Torus() bool            { return false }
func (o open) Active(int) bool        { return true }

func TestCacheEntries(t *testing.T) {
	s, err := New(open{n: 5}, Moore)
	require.NoError(t, err)
	c, ok := s.(*cached)
	require.True(t, ok)

	c.NeighborsOf(12, 1)
	c.NeighborsOf(12, 1)
	c.NeighborsOf(12, 2)
	c.RawNeighborsIncluding(12, 1)
	assert.Equal(t, 3, c.size())

	c.Clear()
	assert.Equal(t, 0, c.size())

	plain, err := New(open{n: 5}, Moore, WithCache(false))
	require.NoError(t, err)
	_, isCached := plain.(*cached)
	assert.False(t, isCached)
}
