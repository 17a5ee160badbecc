// Package bidirule implements the Bidi Rule of RFC 5893 §2, used by the
// BidiRule Option of the outer precis package to restrict strings suitable
// for use in a bidirectional context, such as an IDNA label or a PRECIS
// Identifier.
package bidirule

import "github.com/sancane/precis/internal/ranges"

// Class is a coarse Unicode Bidi_Class value: one of the fourteen
// directional categories RFC 5893's six rules are stated in terms of. The
// names below match the labels bidi/tables_test.go assigns to each class.
type Class int

const (
	L   Class = iota // Left-to-Right
	R                // Right-to-Left
	AL               // Right-to-Left Arabic
	AN               // Arabic Number
	EN               // European Number
	ES               // European Separator
	CS               // Common Separator
	ET               // European Terminator
	ON               // Other Neutral
	BN               // Boundary Neutral
	NSM              // Nonspacing Mark
	S                // Segment Separator
	WS               // Whitespace
	B                // Paragraph Separator
)

func (c Class) String() string {
	switch c {
	case L:
		return "L"
	case R:
		return "R"
	case AL:
		return "AL"
	case AN:
		return "AN"
	case EN:
		return "EN"
	case ES:
		return "ES"
	case CS:
		return "CS"
	case ET:
		return "ET"
	case ON:
		return "ON"
	case BN:
		return "BN"
	case NSM:
		return "NSM"
	case S:
		return "S"
	case WS:
		return "WS"
	case B:
		return "B"
	default:
		return "unknown"
	}
}

// The range tables below are a hand-curated subset of DerivedBidiClass.txt,
// covering the scripts and punctuation RFC 5893's rules are most directly
// concerned with (Arabic, Hebrew, ASCII digits/separators, and the
// punctuation/whitespace classes every rule implicitly references). Full
// UCD bidi class data is build generator data, out of this module's scope.

var rightToLeft = ranges.Table{
	{Lo: 0x0590, Hi: 0x05FF}, // Hebrew block (R)
	{Lo: 0x07C0, Hi: 0x089F}, // NKo, Samaritan, Mandaic (R)
	{Lo: 0xFB1D, Hi: 0xFB4F}, // Hebrew presentation forms (R)
	{Lo: 0x10800, Hi: 0x10FFF},
}

var arabicLetter = ranges.Table{
	{Lo: 0x0600, Hi: 0x07BF}, // Arabic, Syriac, Thaana, Arabic Supplement
	{Lo: 0xFB50, Hi: 0xFDFF}, // Arabic presentation forms A
	{Lo: 0xFE70, Hi: 0xFEFF}, // Arabic presentation forms B
}

var arabicNumber = ranges.Table{
	{Lo: 0x0660, Hi: 0x0669}, // Arabic-Indic digits
	{Lo: 0x066B, Hi: 0x066C},
	{Lo: 0x06F0, Hi: 0x06F9}, // Extended Arabic-Indic digits
}

var europeanNumber = ranges.Table{
	{Lo: 0x0030, Hi: 0x0039}, // ASCII digits
	{Lo: 0x00B2, Hi: 0x00B3},
	{Lo: 0x00B9, Hi: 0x00B9},
}

var europeanSeparator = ranges.Table{
	{Lo: 0x002B, Hi: 0x002B}, // PLUS SIGN
	{Lo: 0x002D, Hi: 0x002D}, // HYPHEN-MINUS
}

var commonSeparator = ranges.Table{
	{Lo: 0x002C, Hi: 0x002C}, // COMMA
	{Lo: 0x002E, Hi: 0x002E}, // FULL STOP
	{Lo: 0x002F, Hi: 0x002F}, // SOLIDUS
	{Lo: 0x003A, Hi: 0x003A}, // COLON
}

var europeanTerminator = ranges.Table{
	{Lo: 0x0023, Hi: 0x0025}, // # $ %
	{Lo: 0x00A2, Hi: 0x00A5},
	{Lo: 0x00B0, Hi: 0x00B1},
}

var boundaryNeutral = ranges.Table{
	{Lo: 0x0000, Hi: 0x0008},
	{Lo: 0x000E, Hi: 0x001B},
	{Lo: 0x007F, Hi: 0x0084},
	{Lo: 0x200B, Hi: 0x200D}, // ZWSP, ZWNJ, ZWJ
}

var nonspacingMark = ranges.Table{
	{Lo: 0x0300, Hi: 0x036F}, // Combining Diacritical Marks
	{Lo: 0x0483, Hi: 0x0489},
	{Lo: 0x0591, Hi: 0x05BD},
	{Lo: 0x05BF, Hi: 0x05BF},
	{Lo: 0x0610, Hi: 0x061A},
	{Lo: 0x064B, Hi: 0x065F},
	{Lo: 0x0670, Hi: 0x0670},
	{Lo: 0x06D6, Hi: 0x06DC},
	{Lo: 0x06DF, Hi: 0x06E4},
}

var segmentSeparator = ranges.Table{
	{Lo: 0x0009, Hi: 0x0009}, // TAB
	{Lo: 0x000B, Hi: 0x000B},
	{Lo: 0x001F, Hi: 0x001F},
}

var whitespace = ranges.Table{
	{Lo: 0x000C, Hi: 0x000C},
	{Lo: 0x0020, Hi: 0x0020}, // SPACE
	{Lo: 0x2000, Hi: 0x200A}, // general punctuation spaces
	{Lo: 0x2028, Hi: 0x2028}, // LINE SEPARATOR
	{Lo: 0x3000, Hi: 0x3000}, // IDEOGRAPHIC SPACE
}

var paragraphSeparator = ranges.Table{
	{Lo: 0x000A, Hi: 0x000D},
	{Lo: 0x0085, Hi: 0x0085},
	{Lo: 0x2029, Hi: 0x2029},
}

// classOf returns the Bidi_Class of r, defaulting to L: since the tables
// above are a curated subset, any codepoint not otherwise classified is
// treated as strong left-to-right, which is the correct default for the
// overwhelming majority of assigned codepoints outside RTL scripts. The
// AN and NSM tables are consulted before the AL and R blocks that contain
// some of their ranges.
func classOf(r rune) Class {
	switch {
	case arabicNumber.Contains(r):
		return AN
	case nonspacingMark.Contains(r):
		return NSM
	case arabicLetter.Contains(r):
		return AL
	case rightToLeft.Contains(r):
		return R
	case europeanNumber.Contains(r):
		return EN
	case europeanSeparator.Contains(r):
		return ES
	case commonSeparator.Contains(r):
		return CS
	case europeanTerminator.Contains(r):
		return ET
	case boundaryNeutral.Contains(r):
		return BN
	case segmentSeparator.Contains(r):
		return S
	case whitespace.Contains(r):
		return WS
	case paragraphSeparator.Contains(r):
		return B
	default:
		return L
	}
}
