package bidirule

import (
	"fmt"

	"golang.org/x/text/transform"
)

// Direction indicates the direction of a label as returned by Direction.
type Direction int

const (
	// LeftToRight indicates a string does not contain any right-to-left
	// characters and does not require the Bidi Rule.
	LeftToRight Direction = iota
	// RightToLeft indicates a string conforms to the Bidi Rule and
	// contains at least one right-to-left character.
	RightToLeft
	// Invalid indicates a string does not conform to the Bidi Rule.
	Invalid
)

func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "LeftToRight"
	case RightToLeft:
		return "RightToLeft"
	default:
		return "Invalid"
	}
}

// RuleError indicates a string does not conform to one of the six
// directionality rules of RFC 5893 §2, identified by its ordinal.
type RuleError struct {
	Rule int
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("bidirule: failed Bidi Rule %d", e.Rule)
}

// Direction reports the direction of the given label, as defined by
// RFC 5893. It returns Invalid if s does not conform to the Bidi Rule.
func Direction(s []byte) Direction {
	return directionString(string(s))
}

// DirectionString reports the direction of the given label, as defined by
// RFC 5893. It returns Invalid if s does not conform to the Bidi Rule.
func DirectionString(s string) Direction {
	return directionString(s)
}

func directionString(s string) Direction {
	if err := checkString(s); err != nil {
		return Invalid
	}
	for _, r := range s {
		switch classOf(r) {
		case R, AL, AN:
			return RightToLeft
		}
	}
	return LeftToRight
}

// Valid reports whether s conforms to the Bidi Rule.
func Valid(s []byte) bool {
	return checkString(string(s)) == nil
}

// ValidString reports whether s conforms to the Bidi Rule.
func ValidString(s string) bool {
	return checkString(s) == nil
}

// Check returns the RuleError for the first rule b violates, or nil if b
// conforms to the Bidi Rule.
func Check(b []byte) error {
	return checkString(string(b))
}

// CheckString returns the RuleError for the first rule s violates, or nil
// if s conforms to the Bidi Rule.
func CheckString(s string) error {
	return checkString(s)
}

// checkString implements the six rules of RFC 5893 §2 against the
// decoded runes of s.
func checkString(s string) error {
	if s == "" {
		return nil
	}
	runes := []rune(s)

	// Rule 1: the first character must be a character with Bidi property
	// L, R or AL. If it has the R or AL property, the label is an RTL
	// label; if it has the L property, it is an LTR label.
	first := classOf(runes[0])
	rtl := false
	switch first {
	case R, AL:
		rtl = true
	case L:
		rtl = false
	default:
		return &RuleError{Rule: 1}
	}

	if rtl {
		return checkRTL(runes)
	}
	return checkLTR(runes)
}

// checkLTR applies rules 5 and 6, which govern an LTR label.
func checkLTR(runes []rune) error {
	for _, r := range runes {
		switch classOf(r) {
		case L, EN, ES, CS, ET, ON, BN, NSM:
		default:
			// Rule 5: in an LTR label, only characters with the Bidi
			// properties L, EN, ES, CS, ET, ON, BN or NSM are allowed.
			return &RuleError{Rule: 5}
		}
	}
	// Rule 6: in an LTR label, the end of the label must be a character
	// with Bidi property L or EN, optionally followed by one or more
	// characters with Bidi property NSM.
	last := lastNonNSM(runes)
	switch classOf(last) {
	case L, EN:
	default:
		return &RuleError{Rule: 6}
	}
	return nil
}

// checkRTL applies rules 2, 3 and 4, which govern an RTL label.
func checkRTL(runes []rune) error {
	sawEN, sawAN := false, false
	for _, r := range runes {
		switch classOf(r) {
		case R, AL, AN, EN, ES, CS, ET, ON, BN, NSM:
			if classOf(r) == EN {
				sawEN = true
			}
			if classOf(r) == AN {
				sawAN = true
			}
		default:
			// Rule 2: in an RTL label, only characters with the Bidi
			// properties R, AL, AN, EN, ES, CS, ET, ON, BN or NSM are
			// allowed.
			return &RuleError{Rule: 2}
		}
	}
	// Rule 3: in an RTL label, the end of the label must be a character
	// with Bidi property R, AL, EN or AN, optionally followed by one or
	// more characters with Bidi property NSM.
	last := lastNonNSM(runes)
	switch classOf(last) {
	case R, AL, EN, AN:
	default:
		return &RuleError{Rule: 3}
	}
	// Rule 4: in an RTL label, if an EN is present, no AN may be present,
	// and vice versa.
	if sawEN && sawAN {
		return &RuleError{Rule: 4}
	}
	return nil
}

func lastNonNSM(runes []rune) rune {
	for i := len(runes) - 1; i >= 0; i-- {
		if classOf(runes[i]) != NSM {
			return runes[i]
		}
	}
	return runes[len(runes)-1]
}

// Rule is a transform.Transformer that verifies a string satisfies the
// Bidi Rule, passing bytes through unchanged on success.
type Rule struct {
	transform.NopResetter
}

// New creates a new Rule transformer.
func New() *Rule {
	return &Rule{}
}

func (r *Rule) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if !atEOF {
		return 0, 0, transform.ErrShortSrc
	}
	if err := checkString(string(src)); err != nil {
		return 0, 0, err
	}
	nDst = copy(dst, src)
	if nDst < len(src) {
		return nDst, nDst, transform.ErrShortDst
	}
	return nDst, len(src), nil
}
