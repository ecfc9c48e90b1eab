package gls

import "sync"

// goroutine local storage; the map contains one entry for each goroutine that
// is started to power a generator.
//
// Entries are cleared when the goroutine exits, so the map only ever holds as
// many values as there are live producers.
var (
	gmutex sync.RWMutex
	gstate map[G]any
)

// G is a reference to a goroutine, and provides a way to load, store and clear
// a goroutine local value.
type G int64

// None is never the identifier of a running goroutine.
const None G = 0

// Current returns the reference to the calling goroutine.
func Current() G {
	return G(getg())
}

// Load loads the goroutine local value, or nil if none was stored.
func (g G) Load() any {
	gmutex.RLock()
	v := gstate[g]
	gmutex.RUnlock()
	return v
}

// Store stores the goroutine local value.
func (g G) Store(v any) {
	gmutex.Lock()
	if gstate == nil {
		gstate = make(map[G]any)
	}
	gstate[g] = v
	gmutex.Unlock()
}

// Clear clears the goroutine local value.
func (g G) Clear() {
	gmutex.Lock()
	delete(gstate, g)
	gmutex.Unlock()
}
