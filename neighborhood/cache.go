package neighborhood

import (
	"slices"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

type cacheKey struct {
	id, radius int
	self       bool
}

// cached memoizes the radius queries of a computer.
type cached struct {
	*computer

	mu      sync.RWMutex
	entries map[cacheKey][]int
	group   singleflight.Group
}

func newCached(c *computer) *cached {
	return &cached{computer: c, entries: make(map[cacheKey][]int)}
}

// NeighborsOf returns a copy of the memoized result.
func (c *cached) NeighborsOf(id, radius int) []int {
	if radius < 1 {
		return []int{}
	}
	return c.lookup(cacheKey{id: id, radius: radius}, func() []int {
		return c.computer.NeighborsOf(id, radius)
	})
}

// RawNeighborsIncluding returns a copy of the memoized result.
func (c *cached) RawNeighborsIncluding(id, radius int) []int {
	return c.lookup(cacheKey{id: id, radius: radius, self: true}, func() []int {
		return c.computer.RawNeighborsIncluding(id, radius)
	})
}

// Clear drops every memoized entry.
func (c *cached) Clear() {
	c.mu.Lock()
	c.entries = make(map[cacheKey][]int)
	c.mu.Unlock()
}

func (c *cached) lookup(k cacheKey, compute func() []int) []int {
	c.mu.RLock()
	v, ok := c.entries[k]
	c.mu.RUnlock()
	if ok {
		return slices.Clone(v)
	}

	flight := strconv.Itoa(k.id) + "/" + strconv.Itoa(k.radius)
	if k.self {
		flight += "+"
	}
	res, _, _ := c.group.Do(flight, func() (interface{}, error) {
		out := compute()
		c.mu.Lock()
		c.entries[k] = out
		c.mu.Unlock()
		return out, nil
	})
	return slices.Clone(res.([]int))
}

func (c *cached) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
