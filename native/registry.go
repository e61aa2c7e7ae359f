package native

import "sync"

var (
	defaultMu     sync.RWMutex
	defaultModule Module
)

// Register installs m as the module returned by Default. Drivers call this
// from their init function; the last registration wins.
func Register(m Module) {
	defaultMu.Lock()
	defaultModule = m
	defaultMu.Unlock()
}

// Default returns the registered module, or nil when no driver was built
// into the binary.
func Default() Module {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultModule
}
