package service

import (
	"strconv"
	"sync/atomic"
	"time"
)

var lastID atomic.Int64

// nextID returns a decimal id token derived from the current nanosecond
// clock, bumped past the previous id when the clock has not advanced. Ids
// stay unique and monotonically increasing under rapid sequential calls.
// Seed catalog ids are small reserved tokens, so the two namespaces never
// collide.
func nextID() string {
	for {
		now := time.Now().UnixNano()
		last := lastID.Load()
		if now <= last {
			now = last + 1
		}
		if lastID.CompareAndSwap(last, now) {
			return strconv.FormatInt(now, 10)
		}
	}
}
