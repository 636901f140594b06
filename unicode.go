package regexsyntax

import (
	"sync"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

var (
	idTablesOnce    sync.Once
	idStartTable    *unicode.RangeTable
	idContinueTable *unicode.RangeTable
)

// ID_Start is L + Nl + Other_ID_Start and ID_Continue adds Mn, Mc, Nd, Pc
// and Other_ID_Continue. Both exclude Pattern_Syntax and
// Pattern_White_Space, which is applied by the predicates below.
func initIDTables() {
	idStartTable = rangetable.Merge(
		unicode.L,
		unicode.Nl,
		unicode.Other_ID_Start,
	)
	idContinueTable = rangetable.Merge(
		idStartTable,
		unicode.Mn,
		unicode.Mc,
		unicode.Nd,
		unicode.Pc,
		unicode.Other_ID_Continue,
	)
}

func isPatternCodePoint(c rune) bool {
	return unicode.Is(unicode.Pattern_Syntax, c) || unicode.Is(unicode.Pattern_White_Space, c)
}

func isIDStart(c rune) bool {
	if c < 0x80 {
		return isLatinLetter(c)
	}
	if c > maxCodePoint {
		return false
	}
	idTablesOnce.Do(initIDTables)
	return unicode.Is(idStartTable, c) && !isPatternCodePoint(c)
}

func isIDContinue(c rune) bool {
	if c < 0x80 {
		return isLatinLetter(c) || isDecimalDigit(c) || c == '_'
	}
	if c > maxCodePoint {
		return false
	}
	idTablesOnce.Do(initIDTables)
	return unicode.Is(idContinueTable, c) && !isPatternCodePoint(c)
}

func isRegExpIdentifierStart(c rune) bool {
	return isIDStart(c) || c == '$' || c == '_'
}

func isRegExpIdentifierPart(c rune) bool {
	return isIDContinue(c) || c == '$' || c == zwnj || c == zwj
}
