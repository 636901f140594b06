package regexsyntax

import "unicode/utf16"

const (
	lineFeed           = 0x0a
	carriageReturn     = 0x0d
	lineSeparator      = 0x2028
	paragraphSeparator = 0x2029
	zwnj               = 0x200c
	zwj                = 0x200d
	maxCodePoint       = 0x10ffff
)

func lowerASCII(c rune) rune {
	return c | ('a' - 'A')
}

func isLatinLetter(c rune) bool {
	return uint32(lowerASCII(c))-'a' <= 'z'-'a'
}

func isDecimalDigit(c rune) bool {
	return uint32(c)-'0' <= 9
}

func isOctalDigit(c rune) bool {
	return uint32(c)-'0' <= 7
}

func isHexDigit(c rune) bool {
	return isDecimalDigit(c) || uint32(lowerASCII(c))-'a' <= 'f'-'a'
}

// digitToInt expects c to satisfy isHexDigit.
func digitToInt(c rune) int {
	return int((c & 0b1111) + (c>>6)*9)
}

func isLineTerminator(c rune) bool {
	return c == lineFeed || c == carriageReturn || c == lineSeparator || c == paragraphSeparator
}

func isHighSurrogate(r rune) bool {
	return (r >> 10) == (0xd800 >> 10)
}

func isLowSurrogate(r rune) bool {
	return (r >> 10) == (0xdc00 >> 10)
}

func combineSurrogatePair(lead, trail rune) rune {
	return utf16.DecodeRune(lead, trail)
}

func isValidUnicode(c int) bool {
	return c >= 0 && c <= maxCodePoint
}

func isSyntaxCharacter(c rune) bool {
	switch c {
	case '^', '$', '\\', '.', '*', '+', '?', '(', ')', '[', ']', '{', '}', '|':
		return true
	}
	return false
}

func isUnicodePropertyNameCharacter(c rune) bool {
	return isLatinLetter(c) || c == '_'
}

func isUnicodePropertyValueCharacter(c rune) bool {
	return isUnicodePropertyNameCharacter(c) || isDecimalDigit(c)
}

// codePointString renders a reader value for error messages. Lone
// surrogates become U+FFFD.
func codePointString(c rune) string {
	if c < 0 {
		return ""
	}
	return string(c)
}
