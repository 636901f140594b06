package regexsyntax

// eof is returned by the reader for positions outside of the active range.
const eof rune = -1

// reader is a cursor over UTF-16 code units with four code points of
// lookahead. In unicode mode a surrogate pair is read as one code point
// two units wide, otherwise every code unit is a code point on its own.
type reader struct {
	src     []uint16
	unicode bool
	end     int
	pos     int

	cp1, cp2, cp3, cp4 rune
	w1, w2, w3         int
}

func (r *reader) at(i int) rune {
	if i >= r.end {
		return eof
	}
	c := rune(r.src[i])
	if r.unicode && isHighSurrogate(c) && i+1 < r.end {
		if d := rune(r.src[i+1]); isLowSurrogate(d) {
			return combineSurrogatePair(c, d)
		}
	}
	return c
}

func (r *reader) width(c rune) int {
	if r.unicode && c > 0xffff {
		return 2
	}
	return 1
}

func (r *reader) reset(src []uint16, start, end int, unicode bool) {
	r.src = src
	r.end = end
	r.unicode = unicode
	r.rewind(start)
}

func (r *reader) rewind(index int) {
	r.pos = index
	r.cp1 = r.at(index)
	r.w1 = r.width(r.cp1)
	r.cp2 = r.at(index + r.w1)
	r.w2 = r.width(r.cp2)
	r.cp3 = r.at(index + r.w1 + r.w2)
	r.w3 = r.width(r.cp3)
	r.cp4 = r.at(index + r.w1 + r.w2 + r.w3)
}

func (r *reader) advance() {
	if r.cp1 == eof {
		return
	}
	r.pos += r.w1
	r.cp1 = r.cp2
	r.w1 = r.w2
	r.cp2 = r.cp3
	r.w2 = r.width(r.cp2)
	r.cp3 = r.cp4
	r.w3 = r.width(r.cp3)
	r.cp4 = r.at(r.pos + r.w1 + r.w2 + r.w3)
}

func (r *reader) eat(c rune) bool {
	if r.cp1 == c {
		r.advance()
		return true
	}
	return false
}

func (r *reader) eat2(c1, c2 rune) bool {
	if r.cp1 == c1 && r.cp2 == c2 {
		r.advance()
		r.advance()
		return true
	}
	return false
}

func (r *reader) eat3(c1, c2, c3 rune) bool {
	if r.cp1 == c1 && r.cp2 == c2 && r.cp3 == c3 {
		r.advance()
		r.advance()
		r.advance()
		return true
	}
	return false
}
