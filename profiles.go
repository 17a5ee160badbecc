package precis

import "golang.org/x/text/unicode/norm"

// UsernameCaseMapped implements the UsernameCaseMapped profile of RFC 8265
// §3.3: an Identifier-class profile that maps fullwidth and halfwidth
// characters, case-folds and applies the bidi rule, and defines no
// additional mapping of its own.
var UsernameCaseMapped = NewIdentifier(
	FoldWidth(),
	FoldCase(),
	Norm(norm.NFC),
	BidiRule(),
)

// UsernameCasePreserved implements the UsernameCasePreserved profile of
// RFC 8265 §3.4: identical to UsernameCaseMapped except that case is left
// untouched, placing the case-sensitivity burden on the application.
var UsernameCasePreserved = NewIdentifier(
	FoldWidth(),
	Norm(norm.NFC),
	BidiRule(),
)

// OpaqueString implements the OpaqueString profile of RFC 8265 §4.2: a
// Freeform-class profile for passwords and similar secrets. Unicode space
// separators are mapped to ASCII space before normalization; no case
// mapping is applied, and the bidi rule does not apply, since an opaque
// string's rendered direction is not meaningful.
var OpaqueString = NewFreeform(
	AdditionalMapping(mapSpaces),
	Norm(norm.NFC),
)

// Nickname implements the Nickname profile of RFC 8266: a Freeform-class
// profile for display names, built on OpaqueString-style space mapping but
// additionally collapsing interior runs of spaces and trimming the ends
// (RFC 8266 §2.2). enforce deliberately applies no case mapping of its
// own; Compare lowercases both enforced strings and re-applies NFKC on top
// of ordinary enforcement, per RFC 8266 §2.4 — see caseFold, IgnoreCase and
// the "Nickname comparison" note in DESIGN.md.
var Nickname = NewFreeform(
	AdditionalMapping(mapSpaces, collapseSpaces),
	Norm(norm.NFKC),
	IgnoreCase(),
)
