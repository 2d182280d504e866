package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/argb"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	DecodeRejectEvery uint64
	SelfHealEvery     uint64
	// Optional redactor for user text and storage keys. Defaults to SHA-256 prefix.
	Redact func(string) string
}

// Hooks logs argb events through slog. Rejected property text is redacted by
// default because it is whatever the user typed.
type Hooks struct {
	l    *slog.Logger
	opts Options

	decodeRejectCtr atomic.Uint64
	selfHealCtr     atomic.Uint64
}

var _ argb.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(s string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(s)
	}
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) DecodeRejected(text, reason string) {
	if h.l == nil || !sample(h.opts.DecodeRejectEvery, &h.decodeRejectCtr) {
		return
	}
	h.l.Debug("argb.decode_rejected",
		"text", h.redact(text),
		"reason", reason)
}

func (h *Hooks) ConversionDeferred(from, to string) {
	if h.l == nil {
		return
	}
	h.l.Debug("argb.conversion_deferred",
		"from", from,
		"to", to)
}

func (h *Hooks) SelfHeal(storageKey, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Info("argb.self_heal",
		"key", h.redact(storageKey),
		"reason", reason)
}

func (h *Hooks) ProviderSetRejected(storageKey string) {
	if h.l == nil {
		return
	}
	h.l.Warn("argb.provider_set_rejected",
		"key", h.redact(storageKey))
}

func (h *Hooks) RevisionError(storageKey string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("argb.revision_error",
		"key", h.redact(storageKey),
		"err", err)
}

func (h *Hooks) InvalidateOutage(name string, bumpErr, delErr error) {
	if h.l == nil {
		return
	}
	h.l.Error("argb.invalidate_outage",
		"name", h.redact(name),
		"bump_err", bumpErr,
		"del_err", delErr)
}
