package memory

import (
	pkgLog "voicetask/pkg/log"
)

// New creates the in-memory task store and starts its owning goroutine.
// Call Close when done to stop the loop.
func New(l pkgLog.Logger) *Store {
	s := &Store{
		l:     l,
		cmds:  make(chan command, commandBuffer),
		done:  make(chan struct{}),
		tasks: make(map[string]taskRecord),
		order: make([]string, 0, 64),
	}
	go s.loop()
	return s
}
