package testutil

import (
	"io/fs"
	"sync/atomic"
)

// GatedFS wraps a filesystem and holds every Open until Release is called.
type GatedFS struct {
	FS      fs.FS
	opened  chan struct{}
	release chan struct{}
	opens   atomic.Int32
}

// NewGatedFS wraps fsys with a closed gate.
func NewGatedFS(fsys fs.FS) *GatedFS {
	return &GatedFS{
		FS:      fsys,
		opened:  make(chan struct{}, 64),
		release: make(chan struct{}),
	}
}

// Open records the call, signals Opened and waits for Release.
func (g *GatedFS) Open(name string) (fs.File, error) {
	g.opens.Add(1)
	select {
	case g.opened <- struct{}{}:
	default:
	}
	<-g.release
	return g.FS.Open(name)
}

// Opened receives one value per Open call.
func (g *GatedFS) Opened() <-chan struct{} { return g.opened }

// Release lets every pending and future Open proceed.
func (g *GatedFS) Release() { close(g.release) }

// Opens returns the number of Open calls so far.
func (g *GatedFS) Opens() int { return int(g.opens.Load()) }
