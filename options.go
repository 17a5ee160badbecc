package precis

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// options holds a Profile's configured pipeline steps. The shape (a plain
// struct of pipeline knobs populated by functional Options) mirrors
// secure/precis/profile.go's use of p.options.foldWidth / .cases / .norm /
// .bidiRule / .additional / .disallow / .disallowEmpty / .ignorecase.
type options struct {
	foldWidth     bool
	cases         transform.Transformer
	norm          norm.Form
	bidiRule      bool
	additional    []func() transform.Transformer
	disallow      runes.Set
	disallowEmpty bool
	ignorecase    bool
}

// An Option configures a Profile at creation time.
type Option func(*options)

func getOpts(o ...Option) options {
	opts := options{norm: norm.NFC, disallowEmpty: true}
	for _, f := range o {
		f(&opts)
	}
	return opts
}

// FoldWidth maps fullwidth and halfwidth codepoints to their compatibility
// decomposition (spec.md §4.4).
func FoldWidth() Option {
	return func(o *options) { o.foldWidth = true }
}

// FoldCase applies Unicode full case folding to lowercase (spec.md §4.5).
// This is language-independent and performs no locale tailoring, a
// deliberate limitation inherited from RFC 8265.
func FoldCase() Option {
	return func(o *options) { o.cases = cases.Fold() }
}

// Norm sets the Unicode normalization form applied during enforcement.
func Norm(f norm.Form) Option {
	return func(o *options) { o.norm = f }
}

// BidiRule enables the RFC 5893 §2 bidi rule check during enforcement.
func BidiRule() Option {
	return func(o *options) { o.bidiRule = true }
}

// AdditionalMapping appends profile-specific transforms, applied in the
// order given, before case mapping and normalization. Nickname and
// OpaqueString use this for their Zs-to-ASCII-space folding step.
func AdditionalMapping(f ...func() transform.Transformer) Option {
	return func(o *options) { o.additional = append(o.additional, f...) }
}

// Disallow further restricts a profile's string class by excluding the
// given set of runes, even if the class would otherwise accept them.
func Disallow(set runes.Set) Option {
	return func(o *options) { o.disallow = set }
}

// DisallowEmpty sets whether enforcement rejects a string that is empty
// either before or after the pipeline runs. It is enabled by default.
func DisallowEmpty(disallow bool) Option {
	return func(o *options) { o.disallowEmpty = disallow }
}

// IgnoreCase enables an extra lowercasing pass in Compare, on top of
// whatever the profile's own enforcement already does. Nickname.Compare
// uses this to implement RFC 8266 §2.4's "lowercase both, then re-apply
// NFKC" comparison rule (spec.md §4.10, §9 Open Question).
func IgnoreCase() Option {
	return func(o *options) { o.ignorecase = true }
}
