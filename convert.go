package argb

import (
	"fmt"

	"github.com/unkn0wn-root/argb/internal/defaults"
)

// Kind names a conversion destination. Converter owns KindText and KindColor;
// every other kind is handed to the base converter.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindText         // string in canonical form
	KindColor        // Color
	KindPacked       // uint32 0xAARRGGBB; not handled by Converter itself
	KindBytes        // []byte; not handled by Converter itself
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindColor:
		return "color"
	case KindPacked:
		return "packed"
	case KindBytes:
		return "bytes"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// BaseConverter handles conversions Converter does not own.
type BaseConverter interface {
	CanConvertFrom(v any) bool
	CanConvertTo(dst Kind) bool
	ConvertFrom(v any) (Color, error)
	ConvertTo(c Color, dst Kind) (any, error)
}

// NopBase refuses every conversion with ErrUnsupportedConversion.
type NopBase struct{}

func (NopBase) CanConvertFrom(any) bool { return false }
func (NopBase) CanConvertTo(Kind) bool  { return false }
func (NopBase) ConvertFrom(v any) (Color, error) {
	return nil, &ConversionError{From: fmt.Sprintf("%T", v), To: KindColor}
}
func (NopBase) ConvertTo(_ Color, dst Kind) (any, error) {
	return nil, &ConversionError{From: "color", To: dst}
}

// ConverterOptions tune a Converter. All fields are optional.
type ConverterOptions struct {
	Base   BaseConverter // nil => NopBase
	Logger Logger        // nil => NopLogger
	Hooks  Hooks         // nil => NopHooks
}

// Converter is the property-editing entry point: text in, color out and back.
// It is stateless apart from its options and safe for concurrent use.
type Converter struct {
	base  BaseConverter
	log   Logger
	hooks Hooks
}

var _ BaseConverter = (*Converter)(nil)

func NewConverter(opts ConverterOptions) *Converter {
	return &Converter{
		base:  defaults.Coalesce[BaseConverter](opts.Base, NopBase{}),
		log:   defaults.Coalesce[Logger](opts.Logger, NopLogger{}),
		hooks: defaults.Coalesce[Hooks](opts.Hooks, NopHooks{}),
	}
}

func (c *Converter) CanConvertFrom(v any) bool {
	if _, ok := v.(string); ok {
		return true
	}
	return c.base.CanConvertFrom(v)
}

func (c *Converter) CanConvertTo(dst Kind) bool {
	switch dst {
	case KindText, KindColor:
		return true
	default:
		return c.base.CanConvertTo(dst)
	}
}

// ConvertFrom decodes text. Non-string sources go to the base converter.
func (c *Converter) ConvertFrom(v any) (Color, error) {
	s, ok := v.(string)
	if !ok {
		c.deferred(fmt.Sprintf("%T", v), KindColor)
		return c.base.ConvertFrom(v)
	}
	col, err := Parse(s)
	if err != nil {
		c.hooks.DecodeRejected(s, reason(err))
		return nil, err
	}
	return col, nil
}

// ConvertTo encodes col as dst. KindColor returns col itself with nil mapped to Empty.
func (c *Converter) ConvertTo(col Color, dst Kind) (any, error) {
	switch dst {
	case KindText:
		return Format(col), nil
	case KindColor:
		return Normalize(col), nil
	default:
		c.deferred("color", dst)
		return c.base.ConvertTo(col, dst)
	}
}

func (c *Converter) deferred(from string, to Kind) {
	c.log.Debug("conversion deferred to base", Fields{"from": from, "to": to.String()})
	c.hooks.ConversionDeferred(from, to.String())
}

// reason maps a Parse error to a short hook label.
func reason(err error) string {
	pe, ok := err.(*ParseError)
	if !ok {
		return "unknown"
	}
	switch pe.Err {
	case ErrMalformedShape:
		return "malformed_shape"
	case ErrChannelOutOfRange:
		return "channel_out_of_range:" + pe.Channel.String()
	default:
		return "unknown"
	}
}
