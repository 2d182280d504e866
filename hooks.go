package argb

// Hooks are callbacks for high-signal events in the converter and the property store.
// Implementations MUST be cheap and non-blocking.
type Hooks interface {
	// Text failed to decode.
	// reason ∈ {"malformed_shape", "channel_out_of_range:<channel>"}
	DecodeRejected(text, reason string)

	// A conversion was handed to the base converter.
	ConversionDeferred(from, to string)

	// A stored property was deleted on read.
	// reason ∈ {"corrupt", "rev_mismatch", "codec_mismatch", "value_decode"}
	SelfHeal(storageKey, reason string)

	// Provider returned ok=false on Set (backpressure/eviction).
	ProviderSetRejected(storageKey string)

	// Revision store errors (snapshot or bump).
	RevisionError(storageKey string, err error)

	// Both revision bump and delete failed during Invalidate.
	InvalidateOutage(name string, bumpErr, delErr error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) DecodeRejected(string, string)         {}
func (NopHooks) ConversionDeferred(string, string)     {}
func (NopHooks) SelfHeal(string, string)               {}
func (NopHooks) ProviderSetRejected(string)            {}
func (NopHooks) RevisionError(string, error)           {}
func (NopHooks) InvalidateOutage(string, error, error) {}
