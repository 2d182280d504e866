// Package argb implements a color value and its canonical text form, used for
// design-time property editing and persistence.
//
// Components:
//   - Color: sum type of Empty and ARGB{A, R, G, B}. Empty means "no color" and is
//     never equal to a concrete color, including ARGB{0, 0, 0, 0}.
//   - Format / Parse: canonical encoder and permissive decoder.
//   - Converter: text <-> color dispatch with a pluggable base for other kinds.
//
// Text form:
//
//	Empty                    - the empty color (case-insensitive on Parse)
//	ARGB ( 255 / 10 / 20 / 30) - alpha, red, green, blue as decimal bytes
//
// Parse accepts variable whitespace and any case for the keyword; Format always
// emits the exact form above.
package argb
