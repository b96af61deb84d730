// Package ohtest provides functionality useful for testing openinghours.
// It should not be imported for normal usage of openinghours.
//
package ohtest

import (
	_ "unsafe" // for go:linkname

	"github.com/go-chrono/openinghours"
)

// InstantOf creates a new Instant with the supplied nanoseconds.
func InstantOf(t int64) openinghours.Instant {
	return instant(t)
}

//go:linkname instant github.com/go-chrono/openinghours.instant
func instant(int64) openinghours.Instant
