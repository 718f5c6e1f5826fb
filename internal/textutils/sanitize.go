// Package textutils provides text sanitization for extracted PDF text.
package textutils

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Numeric character reference patterns. The trailing semicolon is optional,
// matching how references appear in extracted PDF text. The decimal pattern
// requires a digit immediately after "&#", so hex references like "&#x41;"
// pass through it untouched and are handled by the hex pass.
var (
	decimalRefPattern = regexp.MustCompile(`&#([0-9]+);?`)
	hexRefPattern     = regexp.MustCompile(`&#[xX]([0-9a-fA-F]+);?`)
)

// maxCodePoint bounds the code points a reference may resolve to. References
// at or above it are left as literal text rather than converted.
const maxCodePoint = 0x10000

// Sanitize transforms raw extracted text into text safe to store as document
// content. It resolves decimal numeric character references, then hex
// references, then strips control characters, in that order. Any input is
// valid; the result is the same length or shorter and Sanitize never fails.
func Sanitize(text string) string {
	text = resolveDecimalRefs(text)
	text = resolveHexRefs(text)
	return StripControlChars(text)
}

// resolveDecimalRefs replaces each "&#<digits>;" reference with the character
// whose code point is <digits> in base 10, provided it is below maxCodePoint.
// Out-of-range references are preserved verbatim.
func resolveDecimalRefs(text string) string {
	return decimalRefPattern.ReplaceAllStringFunc(text, func(ref string) string {
		digits := decimalRefPattern.FindStringSubmatch(ref)[1]
		return resolveRef(ref, digits, 10)
	})
}

// resolveHexRefs replaces each "&#x<hex>;" or "&#X<hex>;" reference with the
// character whose code point is <hex> in base 16, under the same range guard
// as the decimal pass.
func resolveHexRefs(text string) string {
	return hexRefPattern.ReplaceAllStringFunc(text, func(ref string) string {
		digits := hexRefPattern.FindStringSubmatch(ref)[1]
		return resolveRef(ref, digits, 16)
	})
}

// resolveRef converts one matched reference, returning the original match
// when the value does not fit a single character. Surrogate code points
// cannot stand alone in a string, so their references are preserved too.
func resolveRef(ref, digits string, base int) string {
	n, err := strconv.ParseUint(digits, base, 32)
	if err != nil || n >= maxCodePoint || utf16.IsSurrogate(rune(n)) {
		return ref
	}
	return string(rune(n))
}

// StripControlChars removes C0 control characters in the ranges 0x00-0x08,
// 0x0B, 0x0E-0x1F, and the DEL character 0x7F. Tab (0x09), newline (0x0A),
// form feed (0x0C) and carriage return (0x0D) are preserved.
func StripControlChars(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r <= 0x08:
			return -1
		case r == 0x0B:
			return -1
		case r >= 0x0E && r <= 0x1F:
			return -1
		case r == 0x7F:
			return -1
		}
		return r
	}, text)
}
