package argb

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrMalformedShape: the text is neither the empty token nor four channels in ARGB ( ... ).
	ErrMalformedShape = errors.New("argb: malformed color text")
	// ErrChannelOutOfRange: a channel is not an unsigned integer in 0..255.
	ErrChannelOutOfRange = errors.New("argb: channel out of range")
	// ErrUnsupportedConversion: the requested source or destination is not handled.
	ErrUnsupportedConversion = errors.New("argb: unsupported conversion")
)

// Channel identifies one of the four byte channels in text order.
type Channel uint8

const (
	ChannelNone Channel = iota
	ChannelAlpha
	ChannelRed
	ChannelGreen
	ChannelBlue

	numChannels = ChannelBlue
)

func (c Channel) String() string {
	switch c {
	case ChannelAlpha:
		return "alpha"
	case ChannelRed:
		return "red"
	case ChannelGreen:
		return "green"
	case ChannelBlue:
		return "blue"
	default:
		return "none"
	}
}

// ParseError reports why text could not be decoded.
type ParseError struct {
	Text    string  // original input
	Channel Channel // ChannelNone for shape errors
	Field   string  // captured channel text
	Err     error   // ErrMalformedShape or ErrChannelOutOfRange
	Cause   error   // strconv reason, if any
}

func (e *ParseError) Error() string {
	switch {
	case e.Channel != ChannelNone && e.Cause != nil:
		return fmt.Sprintf("%v: %s channel %q in %s: %v", e.Err, e.Channel, e.Field, strconv.Quote(e.Text), e.Cause)
	case e.Channel != ChannelNone:
		return fmt.Sprintf("%v: %s channel %q in %s", e.Err, e.Channel, e.Field, strconv.Quote(e.Text))
	default:
		return fmt.Sprintf("%v: %s", e.Err, strconv.Quote(e.Text))
	}
}

func (e *ParseError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// ConversionError reports a conversion no converter in the chain claimed.
type ConversionError struct {
	From string
	To   Kind
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%v: %s -> %s", ErrUnsupportedConversion, e.From, e.To)
}

func (e *ConversionError) Unwrap() error { return ErrUnsupportedConversion }
