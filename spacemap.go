package precis

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// spaceMapper maps every Unicode space separator (category Zs) to ASCII
// SPACE (U+0020). OpaqueString and Nickname install this as an
// AdditionalMapping step before case folding and normalization
// (spec.md §4.4, §6). Like collapseSpace, it processes only at atEOF: a
// rune split across a buffer boundary would otherwise be misread.
type spaceMapper struct{ transform.NopResetter }

func mapSpaces() transform.Transformer { return spaceMapper{} }

func (spaceMapper) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if !atEOF {
		return 0, 0, transform.ErrShortSrc
	}
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		out := r
		if unicode.Is(unicode.Zs, r) {
			out = ' '
		}
		n := utf8.RuneLen(out)
		if nDst+n > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], out)
		nSrc += size
	}
	return nDst, nSrc, nil
}

// collapseSpace collapses runs of one or more ASCII spaces into a single
// space and trims leading and trailing spaces. Nickname runs this after
// mapSpaces to implement RFC 8266 §2.2's "map to space, then collapse and
// strip" rule. It requires the whole string at once: a partial trim at a
// buffer boundary could wrongly strip an interior space.
type collapseSpace struct{ transform.NopResetter }

func collapseSpaces() transform.Transformer { return collapseSpace{} }

func (collapseSpace) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if !atEOF {
		return 0, 0, transform.ErrShortSrc
	}
	start := 0
	for start < len(src) && src[start] == ' ' {
		start++
	}
	end := len(src)
	for end > start && src[end-1] == ' ' {
		end--
	}
	prevSpace := false
	for i := start; i < end; i++ {
		c := src[i]
		if c == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		if nDst >= len(dst) {
			return nDst, 0, transform.ErrShortDst
		}
		dst[nDst] = c
		nDst++
	}
	return nDst, len(src), nil
}
