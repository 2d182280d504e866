// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    DecodeRejectEvery: 10, // sample: ~every 10th rejected text
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	conv := argb.NewConverter(argb.ConverterOptions{Hooks: hooks})
//	store, _ := palette.New(palette.Options{Namespace: "theme", Provider: p, Hooks: hooks})
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/argb"
)

// Hooks forwards events to inner on background workers.
// Events are dropped when the queue is full; Dropped counts them.
type Hooks struct {
	inner   argb.Hooks
	q       chan func()
	wg      sync.WaitGroup
	once    sync.Once
	mu      sync.RWMutex
	closed  bool
	dropped atomic.Uint64
}

var _ argb.Hooks = (*Hooks)(nil)

func New(inner argb.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Events after Close are dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		h.dropped.Add(1)
		return
	}
	select {
	case h.q <- f:
	default:
		h.dropped.Add(1)
	}
}

func (h *Hooks) DecodeRejected(text, reason string) {
	h.try(func() { h.inner.DecodeRejected(text, reason) })
}
func (h *Hooks) ConversionDeferred(from, to string) {
	h.try(func() { h.inner.ConversionDeferred(from, to) })
}
func (h *Hooks) SelfHeal(k, r string)              { h.try(func() { h.inner.SelfHeal(k, r) }) }
func (h *Hooks) ProviderSetRejected(k string)      { h.try(func() { h.inner.ProviderSetRejected(k) }) }
func (h *Hooks) RevisionError(k string, err error) { h.try(func() { h.inner.RevisionError(k, err) }) }
func (h *Hooks) InvalidateOutage(n string, be, de error) {
	h.try(func() { h.inner.InvalidateOutage(n, be, de) })
}
