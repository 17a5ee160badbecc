package precis

// Category is the derived-property classification RFC 8264 §8 assigns to a
// codepoint under a given string class.
type Category int

const (
	// PValid codepoints are always allowed.
	PValid Category = iota
	// SpecClassPval codepoints are allowed only by a profile-specific rule.
	// RFC 8264 reserves this category; none of the base precedence rules in
	// §8 currently produce it, but profiles are free to special-case
	// codepoints into it.
	SpecClassPval
	// ContextJ codepoints (the join controls) are allowed only where the
	// CONTEXTJ rule passes.
	ContextJ
	// ContextO codepoints are allowed only where a CONTEXTO rule passes.
	// No PRECIS profile currently defines one, so profiles disallow it.
	ContextO
	// Disallowed codepoints are never allowed.
	Disallowed
	// SpecClassDis codepoints are disallowed under the requesting class
	// specifically, though another class may accept them.
	SpecClassDis
	// Unassigned codepoints are unassigned in the Unicode version in use.
	Unassigned
)

func (c Category) String() string {
	switch c {
	case PValid:
		return "PValid"
	case SpecClassPval:
		return "SpecClassPval"
	case ContextJ:
		return "ContextJ"
	case ContextO:
		return "ContextO"
	case Disallowed:
		return "Disallowed"
	case SpecClassDis:
		return "SpecClassDis"
	case Unassigned:
		return "Unassigned"
	default:
		return "Category(?)"
	}
}
