// Package settings holds the option snapshot handed to an object-graph writer:
// lifecycle hooks, a root object override and policy flags.
//
// Nothing in this module drives a writer; the snapshot is a plain value that
// callers copy, redact and pass along.
package settings

import (
	"errors"
	"net/url"
)

var ErrNilSettings = errors.New("settings: nil settings")

// ObjectEvent describes an object at a lifecycle point of the writer.
type ObjectEvent struct {
	Instance      any
	SourceBAMLURI *url.URL
	Line, Column  int
}

// SetValueEvent is raised before a property is assigned. A hook that performs
// the assignment itself sets Handled.
type SetValueEvent struct {
	Target   any
	Property string
	Value    any
	Handled  bool
}

// NameScope registers names of created objects.
type NameScope interface {
	Register(name string, obj any) error
	Unregister(name string)
	Find(name string) (any, bool)
}

// WriterSettings is a snapshot of object writer options. The zero value is usable.
type WriterSettings struct {
	AfterBeginInit   func(ObjectEvent)
	BeforeProperties func(ObjectEvent)
	AfterProperties  func(ObjectEvent)
	AfterEndInit     func(ObjectEvent)
	SetValue         func(*SetValueEvent)

	// RootObject, when set, is used instead of creating the root.
	RootObject        any
	ExternalNameScope NameScope

	IgnoreCanConvert                 bool
	SkipDuplicatePropertyCheck       bool
	RegisterNamesOnExternalNameScope bool
	SkipProvideValueOnRoot           bool
	PreferUnconvertedDictionaryKeys  bool

	// SourceBAMLURI replaces the base URI reported to AfterBeginInit.
	SourceBAMLURI *url.URL
}

// Clone copies every field of s. The URL is copied so the clone can be
// modified independently; RootObject and ExternalNameScope are shared.
func Clone(s *WriterSettings) (*WriterSettings, error) {
	if s == nil {
		return nil, ErrNilSettings
	}
	out := *s
	if s.SourceBAMLURI != nil {
		u := *s.SourceBAMLURI
		if s.SourceBAMLURI.User != nil {
			ui := *s.SourceBAMLURI.User
			u.User = &ui
		}
		out.SourceBAMLURI = &u
	}
	return &out, nil
}

// StripHooks returns a clone with every hook cleared, safe to hand to code
// that must not call back into the caller.
func (s *WriterSettings) StripHooks() *WriterSettings {
	out, err := Clone(s)
	if err != nil {
		return nil
	}
	out.AfterBeginInit = nil
	out.BeforeProperties = nil
	out.AfterProperties = nil
	out.AfterEndInit = nil
	out.SetValue = nil
	return out
}

// HasHooks reports whether any hook is set.
func (s *WriterSettings) HasHooks() bool {
	return s != nil && (s.AfterBeginInit != nil || s.BeforeProperties != nil ||
		s.AfterProperties != nil || s.AfterEndInit != nil || s.SetValue != nil)
}
