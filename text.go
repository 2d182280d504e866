package argb

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

const (
	// EmptyToken is the text form of Empty.
	EmptyToken = "Empty"

	argbPrefix = "ARGB ( "
	channelSep = " / "
)

// Keyword, "(", four fields split by "/", ")". Whitespace around every token is optional;
// a field must start with a non-space so blank fields fail the shape.
var shape = regexp.MustCompile(`(?i)^ARGB\s*\(\s*([^/()\s][^/()]*?)\s*/\s*([^/()\s][^/()]*?)\s*/\s*([^/()\s][^/()]*?)\s*/\s*([^/()\s][^/()]*?)\s*\)$`)

// Format returns the canonical text for c. A nil Color formats as Empty.
func Format(c Color) string {
	return string(AppendFormat(make([]byte, 0, len(argbPrefix)+20), c))
}

// AppendFormat appends the canonical text for c to b.
func AppendFormat(b []byte, c Color) []byte {
	return Normalize(c).appendText(b)
}

// Parse decodes text produced by Format. It is permissive about whitespace and
// letter case. Errors are *ParseError wrapping ErrMalformedShape or
// ErrChannelOutOfRange.
func Parse(text string) (Color, error) {
	s := strings.TrimSpace(text)
	if strings.EqualFold(s, EmptyToken) {
		return Empty, nil
	}

	m := shape.FindStringSubmatch(s)
	if m == nil {
		return nil, &ParseError{Text: text, Err: ErrMalformedShape}
	}
	fields := m[1:]
	if len(fields) != int(numChannels) {
		return nil, &ParseError{Text: text, Err: ErrMalformedShape}
	}

	var ch [numChannels]uint8
	for i, f := range fields {
		u, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return nil, &ParseError{
				Text:    text,
				Channel: Channel(i + 1),
				Field:   f,
				Err:     ErrChannelOutOfRange,
				Cause:   unwrapNum(err),
			}
		}
		ch[i] = uint8(u)
	}
	return ARGB{A: ch[0], R: ch[1], G: ch[2], B: ch[3]}, nil
}

// MustParse is like Parse but panics on error. Handy for package-level values in tests.
func MustParse(text string) Color {
	c, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return c
}

// strconv.NumError repeats the input; keep only the reason.
func unwrapNum(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
