package precis

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// derive implements the RFC 8264 §8 precedence algorithm: the first
// matching rule below determines cp's class-independent base property.
// This is the same algorithm secure/precis/gen.go bakes into a trie at
// Unicode-table-generation time; here it runs directly against the
// standard library's unicode category tables and x/text's norm package at
// call time, since building our own copy of the Unicode Character Database
// is explicitly out of scope (spec.md §1).
func derive(cp rune) baseProperty {
	switch {
	case isNoncharacter(cp):
		return propDisallowed
	}
	if p, ok := exceptions[cp]; ok {
		return p
	}
	if p, ok := backwardCompatible[cp]; ok {
		return p
	}
	switch {
	case !isAssigned(cp):
		return propUnassigned
	case cp >= 0x0021 && cp <= 0x007E: // ASCII7
		return propPValid
	case cp == 0x200C || cp == 0x200D: // join controls
		return propContextJ
	case oldHangulJamo.Contains(cp):
		return propDisallowed
	case precisIgnorable.Contains(cp):
		return propDisallowed
	case unicode.Is(unicode.Cc, cp): // Controls
		return propDisallowed
	case hasCompat(cp):
		return propIDDisOrFreePVal
	case isLetterDigit(cp):
		return propPValid
	case isOtherLetterDigit(cp):
		return propIDDisOrFreePVal
	case unicode.Is(unicode.Zs, cp): // Spaces
		return propIDDisOrFreePVal
	case isSymbol(cp):
		return propIDDisOrFreePVal
	case isPunctuation(cp):
		return propIDDisOrFreePVal
	default:
		return propDisallowed
	}
}

// isAssigned reports whether cp has been assigned a general category by the
// Unicode Standard. The stdlib unicode package exposes every assigned
// codepoint through the union of its top-level category tables (L, M, N,
// P, S, Z, C); anything outside that union is Cn (unassigned).
func isAssigned(cp rune) bool {
	return unicode.In(cp, unicode.L, unicode.M, unicode.N, unicode.P, unicode.S, unicode.Z, unicode.C)
}

// hasCompat reports whether cp has a compatibility decomposition (RFC 8264
// §9.17, "HasCompat"), computed the same way secure/precis/gen.go computes
// it at generation time: a codepoint has one iff its NFKC normal form
// differs from itself.
func hasCompat(cp rune) bool {
	return !norm.NFKC.IsNormalString(string(cp))
}

// isLetterDigit implements RFC 8264 §9.1 LetterDigits: r in
// {Ll, Lu, Lo, Lm, Nd, Mn, Mc}.
func isLetterDigit(cp rune) bool {
	return unicode.In(cp,
		unicode.Ll, unicode.Lu, unicode.Lm, unicode.Lo,
		unicode.Mn, unicode.Mc,
		unicode.Nd,
	)
}

// isOtherLetterDigit implements RFC 8264 §9.18 OtherLetterDigits: r in
// {Lt, Nl, No, Me}.
func isOtherLetterDigit(cp rune) bool {
	return unicode.In(cp, unicode.Lt, unicode.Nl, unicode.No, unicode.Me)
}

// isSymbol implements RFC 8264 §9.15 Symbols: r in {Sm, Sc, Sk, So}.
func isSymbol(cp rune) bool {
	return unicode.In(cp, unicode.Sm, unicode.Sc, unicode.Sk, unicode.So)
}

// isPunctuation implements RFC 8264 §9.16 Punctuation: r in
// {Pc, Pd, Ps, Pe, Pi, Pf, Po}.
func isPunctuation(cp rune) bool {
	return unicode.In(cp,
		unicode.Pc, unicode.Pd, unicode.Ps, unicode.Pe,
		unicode.Pi, unicode.Pf, unicode.Po,
	)
}
