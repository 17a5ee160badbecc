package precis

import "github.com/sancane/precis/internal/ranges"

// The Joining_Type ranges below are a hand-curated subset of the scripts
// that actually participate in cursive joining (Arabic and Syriac), plus a
// virama set for the Brahmic scripts most likely to appear next to a zero
// width joiner/non-joiner. The full Unicode Joining_Type database is build
// generator data out of this module's scope (spec.md §1); this subset is
// sufficient to drive the CONTEXTJ state machine of context.go for the
// scripts RFC 5892 Appendix A is primarily concerned with.

// joiningDual covers Joining_Type = Dual_Joining (D): letters that join on
// both sides, e.g. most Arabic letters.
var joiningDual = ranges.Table{
	{Lo: 0x0620, Hi: 0x0620},
	{Lo: 0x0626, Hi: 0x0626},
	{Lo: 0x0628, Hi: 0x0628},
	{Lo: 0x062A, Hi: 0x062E},
	{Lo: 0x0633, Hi: 0x063F},
	{Lo: 0x0641, Hi: 0x0647},
	{Lo: 0x0649, Hi: 0x064A},
	{Lo: 0x066E, Hi: 0x066F},
	{Lo: 0x0678, Hi: 0x0687},
	{Lo: 0x069A, Hi: 0x06BF},
	{Lo: 0x06C1, Hi: 0x06C2},
	{Lo: 0x06CC, Hi: 0x06CC},
	{Lo: 0x06CE, Hi: 0x06CE},
	{Lo: 0x06D0, Hi: 0x06D1},
	{Lo: 0x0712, Hi: 0x0714}, // Syriac dual-joining letters
	{Lo: 0x071A, Hi: 0x071D},
	{Lo: 0x0721, Hi: 0x0727},
	{Lo: 0x072B, Hi: 0x072B},
}

// joiningLeft covers Joining_Type = Left_Joining (L).
var joiningLeft = ranges.Table{
	{Lo: 0x06BA, Hi: 0x06BA},
}

// joiningRight covers Joining_Type = Right_Joining (R): letters that only
// join to the previous letter, e.g. Arabic alef, dal, waw.
var joiningRight = ranges.Table{
	{Lo: 0x0622, Hi: 0x0625},
	{Lo: 0x0627, Hi: 0x0627},
	{Lo: 0x0629, Hi: 0x0629},
	{Lo: 0x062F, Hi: 0x0632},
	{Lo: 0x0648, Hi: 0x0648},
	{Lo: 0x0671, Hi: 0x0677},
	{Lo: 0x0688, Hi: 0x0699},
	{Lo: 0x06C0, Hi: 0x06C0},
	{Lo: 0x06C3, Hi: 0x06CB},
	{Lo: 0x06CD, Hi: 0x06CD},
	{Lo: 0x06CF, Hi: 0x06CF},
	{Lo: 0x0710, Hi: 0x0710}, // Syriac right-joining letters
	{Lo: 0x0715, Hi: 0x0719},
	{Lo: 0x071E, Hi: 0x071E},
	{Lo: 0x0728, Hi: 0x072A},
	{Lo: 0x072C, Hi: 0x072C},
}

// joiningTransparent covers Joining_Type = Transparent (T): nonspacing
// marks that do not interrupt a cursive join, e.g. Arabic and Syriac
// combining marks.
var joiningTransparent = ranges.Table{
	{Lo: 0x0610, Hi: 0x061A},
	{Lo: 0x064B, Hi: 0x065F},
	{Lo: 0x0670, Hi: 0x0670},
	{Lo: 0x06D6, Hi: 0x06DC},
	{Lo: 0x06DF, Hi: 0x06E4},
	{Lo: 0x06E7, Hi: 0x06E8},
	{Lo: 0x06EA, Hi: 0x06ED},
	{Lo: 0x0730, Hi: 0x074A}, // Syriac combining marks
}

// virama is the set of Canonical_Combining_Class = Virama codepoints for
// the major Brahmic scripts, used by the CONTEXTJ rule for U+200C/U+200D.
var virama = ranges.Table{
	{Lo: 0x094D, Hi: 0x094D}, // DEVANAGARI SIGN VIRAMA
	{Lo: 0x09CD, Hi: 0x09CD}, // BENGALI SIGN VIRAMA
	{Lo: 0x0A4D, Hi: 0x0A4D}, // GURMUKHI SIGN VIRAMA
	{Lo: 0x0ACD, Hi: 0x0ACD}, // GUJARATI SIGN VIRAMA
	{Lo: 0x0B4D, Hi: 0x0B4D}, // ORIYA SIGN VIRAMA
	{Lo: 0x0BCD, Hi: 0x0BCD}, // TAMIL SIGN VIRAMA
	{Lo: 0x0C4D, Hi: 0x0C4D}, // TELUGU SIGN VIRAMA
	{Lo: 0x0CCD, Hi: 0x0CCD}, // KANNADA SIGN VIRAMA
	{Lo: 0x0D4D, Hi: 0x0D4D}, // MALAYALAM SIGN VIRAMA
	{Lo: 0x0DCA, Hi: 0x0DCA}, // SINHALA SIGN AL-LAKUNA
	{Lo: 0x0E3A, Hi: 0x0E3A}, // THAI CHARACTER PHINTHU
	{Lo: 0x0F84, Hi: 0x0F84}, // TIBETAN MARK HALANTA
	{Lo: 0x1039, Hi: 0x103A}, // MYANMAR SIGN VIRAMA/ASAT
}
