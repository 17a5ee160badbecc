package precis

import (
	"unicode"
	"unicode/utf8"

	"github.com/sancane/precis/bidirule"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// caseFold returns a fresh transformer that maps every rune to its
// lowercase form with unicode.ToLower. It applies no final-sigma rule and
// no locale tailoring, so σ and ς stay distinct. It is its own function,
// rather than a shared package var, because a transform.Transformer
// carries mutable per-use state.
func caseFold() transform.Transformer {
	return runes.Map(unicode.ToLower)
}

// A Profile represents a set of rules for preparing, enforcing and
// comparing internationalized strings in the PRECIS framework (RFC 8264).
// Profiles are immutable once constructed and safe for concurrent use by
// any number of goroutines (spec.md §5).
type Profile struct {
	options
	class *class
}

// NewIdentifier creates a new PRECIS profile based on the Identifier string
// class. Profiles created from this class are suitable for use where
// safety is prioritized over expressiveness, such as network identifiers
// and usernames.
func NewIdentifier(opts ...Option) *Profile {
	return &Profile{options: getOpts(opts...), class: Identifier}
}

// NewFreeform creates a new PRECIS profile based on the Freeform string
// class. Profiles created from this class are suitable for use where
// expressiveness is prioritized over safety, such as passwords and display
// nicknames.
func NewFreeform(opts ...Option) *Profile {
	return &Profile{options: getOpts(opts...), class: Freeform}
}

// NewTransformer creates a transform.Transformer that performs this
// profile's full preparation and enforcement pipeline, in the step order
// defined by RFC 8264 §7, on the UTF-8 encoded bytes passing through it.
func (p *Profile) NewTransformer() transform.Transformer {
	var ts []transform.Transformer

	if p.options.foldWidth {
		ts = append(ts, width.Fold())
	}
	for _, f := range p.options.additional {
		ts = append(ts, f())
	}
	if p.options.cases != nil {
		ts = append(ts, p.options.cases)
	}
	ts = append(ts, p.options.norm)
	if p.options.bidiRule {
		ts = append(ts, bidirule.New())
	}
	ts = append(ts, checker{class: p.class, disallow: p.options.disallow})

	return transform.Chain(ts...)
}

type buffers struct {
	src  []byte
	buf  [2][]byte
	next int
}

func (b *buffers) init(n int) {
	b.buf[0] = make([]byte, 0, n)
	b.buf[1] = make([]byte, 0, n)
}

func (b *buffers) apply(t transform.Transformer) (err error) {
	b.src, _, err = transform.Append(t, b.buf[b.next][:0], b.src)
	b.buf[b.next] = b.src
	b.next ^= 1
	return err
}

// enforce runs this profile's transformation pipeline against src,
// producing the canonical form, or the first error the pipeline
// encounters.
func (p *Profile) enforce(src []byte) ([]byte, error) {
	if !utf8.Valid(src) {
		return nil, ErrInvalidUTF8
	}
	var b buffers
	b.init(8 + len(src) + len(src)>>2)
	b.src = src

	if p.options.foldWidth {
		if err := b.apply(width.Fold()); err != nil {
			return nil, err
		}
	}
	for _, f := range p.options.additional {
		if err := b.apply(f()); err != nil {
			return nil, err
		}
	}
	if p.options.cases != nil {
		if err := b.apply(p.options.cases); err != nil {
			return nil, err
		}
	}
	if err := b.apply(p.options.norm); err != nil {
		return nil, err
	}
	if p.options.bidiRule {
		if err := bidirule.Check(b.src); err != nil {
			if re, ok := err.(*bidirule.RuleError); ok {
				return nil, &DirectionError{Rule: re.Rule}
			}
			return nil, err
		}
	}

	if err := p.checkClass(b.src); err != nil {
		return nil, err
	}

	if p.options.disallowEmpty && len(b.src) == 0 {
		return nil, ErrEmpty
	}
	return b.src, nil
}

// checkClass validates every codepoint of src under p's string class, the
// CONTEXTJ rule, and p's additional Disallow set. It is the profile-level
// counterpart to (*class).Allows: unlike Allows, it treats a ContextJ
// codepoint as tentatively acceptable pending the CONTEXTJ scan, since
// RFC 8264 makes that the profile's responsibility rather than the class's
// (spec.md §4.3, §4.8).
func (p *Profile) checkClass(src []byte) error {
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if size == 0 {
			return &RuneError{Rune: utf8.RuneError, Reason: ReasonDisallowed}
		}
		cat := p.class.categorize(r)
		switch cat {
		case PValid, SpecClassPval, ContextJ:
		default:
			return &RuneError{Rune: r, Reason: reasonFor(cat)}
		}
		if p.options.disallow != nil && p.options.disallow.Contains(r) {
			return &RuneError{Rune: r, Reason: ReasonDisallowed}
		}
		i += size
	}
	return checkContextJ(string(src))
}

// Prepare classifies every codepoint of s under p's string class, CONTEXTJ
// rule and Disallow set, and — where p mandates BidiRule — checks s
// against the Bidi Rule, all without applying any transformation,
// returning s unchanged on success (spec.md §4.9). It rejects the empty
// string. The checks are the ones enforce runs, but they see s as given
// rather than its mapped and normalized form, so Prepare can reject a
// string that enforce accepts (fullwidth letters under a FoldWidth
// profile, for instance).
func (p *Profile) Prepare(s string) (string, error) {
	if s == "" {
		return "", ErrEmpty
	}
	if p.options.bidiRule {
		if err := bidirule.Check([]byte(s)); err != nil {
			if re, ok := err.(*bidirule.RuleError); ok {
				return "", &DirectionError{Rule: re.Rule}
			}
			return "", err
		}
	}
	if err := p.checkClass([]byte(s)); err != nil {
		return "", err
	}
	return s, nil
}

// Append appends the result of enforcing p on src to dst.
func (p *Profile) Append(dst, src []byte) ([]byte, error) {
	b, err := p.enforce(src)
	if err != nil {
		return nil, err
	}
	return append(dst, b...), nil
}

// Bytes returns a new byte slice with the result of enforcing p on b.
func (p *Profile) Bytes(b []byte) ([]byte, error) {
	return p.enforce(b)
}

// String returns the result of enforcing p on s.
func (p *Profile) String(s string) (string, error) {
	b, err := p.enforce([]byte(s))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare enforces both a and b, then tests the results for byte-for-byte
// equality. If either string fails enforcement, Compare returns false; a
// successful comparison that is simply unequal is not itself an error
// (spec.md §7).
func (p *Profile) Compare(a, b string) bool {
	ea, err := p.String(a)
	if err != nil {
		return false
	}
	eb, err := p.String(b)
	if err != nil {
		return false
	}
	if p.options.ignorecase {
		ea, err = foldAndRenormalize(p, ea)
		if err != nil {
			return false
		}
		eb, err = foldAndRenormalize(p, eb)
		if err != nil {
			return false
		}
	}
	return ea == eb
}

// foldAndRenormalize implements the extra comparison step RFC 8266 §2.4
// layers on top of Nickname.enforce: lowercase, then re-apply the
// profile's normalization form. See IgnoreCase and spec.md §4.10, §9.
func foldAndRenormalize(p *Profile, s string) (string, error) {
	var b buffers
	b.init(8 + len(s) + len(s)>>2)
	b.src = []byte(s)
	if err := b.apply(caseFold()); err != nil {
		return "", err
	}
	if err := b.apply(p.options.norm); err != nil {
		return "", err
	}
	return string(b.src), nil
}

// Allowed returns a runes.Set containing every rune that is a member of
// the profile's string class and not excluded by its Disallow option.
func (p *Profile) Allowed() runes.Set {
	if p.options.disallow != nil {
		return runes.Predicate(func(r rune) bool {
			return p.class.Contains(r) && !p.options.disallow.Contains(r)
		})
	}
	return runes.Predicate(p.class.Contains)
}

// checker is the transform.Transformer step that performs class and
// CONTEXTJ validation as the final stage of a profile's pipeline. It
// copies allowed runes through unchanged and errors on the first
// disallowed one.
type checker struct {
	class    *class
	disallow runes.Set
	transform.NopResetter
}

func (c checker) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if !atEOF {
		return 0, 0, transform.ErrShortSrc
	}
	if err := (&Profile{class: c.class, options: options{disallow: c.disallow}}).checkClass(src); err != nil {
		return 0, 0, err
	}
	nDst = copy(dst, src)
	if nDst < len(src) {
		return nDst, nDst, transform.ErrShortDst
	}
	return nDst, len(src), nil
}
