// Package gascache memoizes EXP's dynamic gas cost for repeated exponents.
// It never changes the cost core/vm computes; it only avoids recomputing
// ByteLength() for an exponent seen earlier in the same cache's lifetime.
package gascache

import (
	"encoding/binary"

	"github.com/VictoriaMetrics/fastcache"

	"github.com/lattice-chain/evmcore/core/word256"
	"github.com/lattice-chain/evmcore/params"
)

// ExpGasCache caches EXP's dynamic gas cost keyed by the exponent's 32-byte
// big-endian form, mirroring the clean-node cache triedb/pathdb keeps in
// front of its disk layer.
type ExpGasCache struct {
	cache *fastcache.Cache
}

// New returns a cache that holds up to maxBytes of entries.
func New(maxBytes int) *ExpGasCache {
	return &ExpGasCache{cache: fastcache.New(maxBytes)}
}

// Cost returns the gas cost gasExp would compute for exponent, using a
// cached value when exponent has been seen before.
func (c *ExpGasCache) Cost(exponent word256.Word256) uint64 {
	key := exponent.Bytes()
	if blob := c.cache.Get(nil, key[:]); len(blob) == 8 {
		return binary.LittleEndian.Uint64(blob)
	}
	cost := uint64(exponent.ByteLength()) * params.ExpByteEIP158
	var costBytes [8]byte
	binary.LittleEndian.PutUint64(costBytes[:], cost)
	c.cache.Set(key[:], costBytes[:])
	return cost
}
