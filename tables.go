package precis

import "github.com/sancane/precis/internal/ranges"

// baseProperty is the class-independent result of the RFC 8264 §8
// precedence algorithm, before a string class resolves it to a Category.
// Most rules already produce a class-independent verdict; the handful that
// RFC 8264 defines as "ID_DIS or FREE_PVAL" are collapsed into
// propIDDisOrFreePVal and resolved by (*class).resolve.
type baseProperty int

const (
	propPValid baseProperty = iota
	propContextJ
	propContextO
	propDisallowed
	propUnassigned
	propIDDisOrFreePVal
)

// exceptions is the Exceptions table of RFC 5892 §2.6: a small, fixed set
// of codepoints whose derived property does not follow the general
// algorithm below. Values are grounded directly on secure/precis/gen.go's
// "exceptions" map.
var exceptions = map[rune]baseProperty{
	0x00DF: propPValid, // LATIN SMALL LETTER SHARP S
	0x03C2: propPValid, // GREEK SMALL LETTER FINAL SIGMA
	0x06FD: propPValid, // ARABIC SIGN SINDHI AMPERSAND
	0x06FE: propPValid, // ARABIC SIGN SINDHI POSTPOSITION MEN
	0x0F0B: propPValid, // TIBETAN MARK INTERSYLLABIC TSHEG
	0x3007: propPValid, // IDEOGRAPHIC NUMBER ZERO

	0x00B7: propContextO, // MIDDLE DOT
	0x0375: propContextO, // GREEK LOWER NUMERAL SIGN
	0x05F3: propContextO, // HEBREW PUNCTUATION GERESH
	0x05F4: propContextO, // HEBREW PUNCTUATION GERSHAYIM
	0x30FB: propContextO, // KATAKANA MIDDLE DOT
	0x0660: propContextO, // ARABIC-INDIC DIGIT ZERO
	0x0661: propContextO,
	0x0662: propContextO,
	0x0663: propContextO,
	0x0664: propContextO,
	0x0665: propContextO,
	0x0666: propContextO,
	0x0667: propContextO,
	0x0668: propContextO,
	0x0669: propContextO,
	0x06F0: propContextO, // EXTENDED ARABIC-INDIC DIGIT ZERO
	0x06F1: propContextO,
	0x06F2: propContextO,
	0x06F3: propContextO,
	0x06F4: propContextO,
	0x06F5: propContextO,
	0x06F6: propContextO,
	0x06F7: propContextO,
	0x06F8: propContextO,
	0x06F9: propContextO,

	0x0640: propDisallowed, // ARABIC TATWEEL
	0x07FA: propDisallowed, // NKO LAJANYALAN
	0x302E: propDisallowed, // HANGUL SINGLE DOT TONE MARK
	0x302F: propDisallowed, // HANGUL DOUBLE DOT TONE MARK
	0x3031: propDisallowed, // VERTICAL KANA REPEAT MARK
	0x3032: propDisallowed,
	0x3033: propDisallowed,
	0x3034: propDisallowed,
	0x3035: propDisallowed,
	0x303B: propDisallowed, // VERTICAL IDEOGRAPHIC ITERATION MARK
}

// backwardCompatible is the BackwardCompatible table of RFC 5892 §2.7. It is
// empty for the Unicode version this module targets; the map exists so the
// precedence algorithm has somewhere to grow without changing shape.
var backwardCompatible = map[rune]baseProperty{}

// oldHangulJamo covers the conjoining Hangul Jamo blocks (RFC 5892 §2.9,
// codepoints with HangulSyllableType L, V or T).
var oldHangulJamo = ranges.Table{
	{Lo: 0x1100, Hi: 0x11FF}, // Hangul Jamo
	{Lo: 0xA960, Hi: 0xA97F}, // Hangul Jamo Extended-A
	{Lo: 0xD7B0, Hi: 0xD7FF}, // Hangul Jamo Extended-B
}

// precisIgnorable approximates the PrecisIgnorableProperties set of RFC
// 8264 §9.13 (Default_Ignorable_Code_Point plus deprecated format
// characters), curated by hand since the generator that derives it from
// DerivedCoreProperties.txt is out of scope.
var precisIgnorable = ranges.Table{
	{Lo: 0x00AD, Hi: 0x00AD}, // SOFT HYPHEN
	{Lo: 0x034F, Hi: 0x034F}, // COMBINING GRAPHEME JOINER
	{Lo: 0x061C, Hi: 0x061C}, // ARABIC LETTER MARK
	{Lo: 0x115F, Hi: 0x1160}, // HANGUL CHOSEONG/JUNGSEONG FILLER
	{Lo: 0x17B4, Hi: 0x17B5}, // KHMER VOWEL INHERENT AQ/AA
	{Lo: 0x180B, Hi: 0x180F}, // MONGOLIAN FREE VARIATION SELECTORS
	{Lo: 0x200B, Hi: 0x200B}, // ZERO WIDTH SPACE
	{Lo: 0x200E, Hi: 0x200F}, // LEFT-TO-RIGHT MARK, RIGHT-TO-LEFT MARK
	{Lo: 0x202A, Hi: 0x202E}, // directional formatting characters
	{Lo: 0x2060, Hi: 0x206F}, // WORD JOINER and deprecated format characters
	{Lo: 0x3164, Hi: 0x3164}, // HANGUL FILLER
	{Lo: 0xFE00, Hi: 0xFE0F}, // VARIATION SELECTOR-1..16
	{Lo: 0xFEFF, Hi: 0xFEFF}, // ZERO WIDTH NO-BREAK SPACE (BOM)
	{Lo: 0xFFA0, Hi: 0xFFA0}, // HALFWIDTH HANGUL FILLER
	{Lo: 0x1D173, Hi: 0x1D17A}, // musical notation format controls
	{Lo: 0xE0000, Hi: 0xE0FFF}, // tag characters, variation selectors supplement
}

// isNoncharacter reports whether r is a Unicode noncharacter: either of the
// 32 codepoints U+FDD0..U+FDEF, or the last two codepoints of any plane
// (low 16 bits 0xFFFE or 0xFFFF).
func isNoncharacter(r rune) bool {
	if r >= 0xFDD0 && r <= 0xFDEF {
		return true
	}
	low16 := r & 0xFFFF
	return low16 == 0xFFFE || low16 == 0xFFFF
}
