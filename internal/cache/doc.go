// Package cache provides the bounded LRU used to keep composed cell blocks
// between frames.
//
// The cache is keyed by any comparable value and evicts the least recently
// used entry once capacity is reached:
//
//	c := cache.New[textmode.Cell, *textmode.Block](4096)
//	block, err := c.GetOrCreate(cell, func() (*textmode.Block, error) {
//	    return compose(cell)
//	})
//
// Failed creations are never stored, so a later lookup retries them.
//
// # Thread Safety
//
// LRU is safe for concurrent use and must not be copied after creation.
package cache
