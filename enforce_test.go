package precis

import "testing"

type testCase struct {
	input, output string
	isErr         bool
}

var testCases = []struct {
	name  string
	p     *Profile
	cases []testCase
}{
	{"Nickname", Nickname, []testCase{
		{"  Swan  of   Avon   ", "Swan of Avon", false},
		{"", "", true},
		{" ", "", true},
		{"  ", "", true},
		{"Foo", "Foo", false},
		{"foo", "foo", false},
		{"Foo Bar", "Foo Bar", false},
		{"foo bar", "foo bar", false},
		{"σ", "σ", false},
		// Greek final sigma is left as is (do not fold!)
		{"ς", "ς", false},
		{"Richard Ⅳ", "Richard IV", false},
		{"Å", "Å", false},
		{"ﬀ", "ff", false}, // because of NFKC
	}},
	{"OpaqueString", OpaqueString, []testCase{
		{"  Swan  of   Avon   ", "  Swan  of   Avon   ", false},
		{"", "", true},
		{" ", " ", false},
		{"  ", "  ", false},
		{"Foo", "Foo", false},
		{"foo", "foo", false},
		{"Foo Bar", "Foo Bar", false},
		{"foo bar", "foo bar", false},
		{"σ", "σ", false},
		{"Richard Ⅳ", "Richard Ⅳ", false},
		{"Å", "Å", false},
		{"my cat is a 	by", "", true},
		{"·", "", true}, // Middle dot, CONTEXTO
	}},
	{"UsernameCaseMapped", UsernameCaseMapped, []testCase{
		{"juliet@example.com", "juliet@example.com", false},
		{"fussball", "fussball", false},
		{"fußball", "fussball", false},
		{"π", "π", false},
		{"Σ", "σ", false},
		{"σ", "σ", false},
		{"ς", "σ", false},
		{"I", "i", false},
		{"foo bar", "", true},
		{"a", "a", false},
		{" ", "", true},
		{" ", "", true},
		{"  ", "", true},
		{"ＡＢ", "ab", false},
		{"Å", "å", false}, // Angstrom sign, NFC -> U+00E5
		{"Å", "å", false},     // A + ring
	}},
	{"UsernameCasePreserved", UsernameCasePreserved, []testCase{
		{"ABC", "ABC", false},
		{"ＡＢ", "AB", false},
		{"Å", "Å", false}, // Angstrom sign, NFC -> U+00C5
	}},
}

func TestEnforce(t *testing.T) {
	for _, g := range testCases {
		for _, tc := range g.cases {
			tc := tc
			t.Run(g.name+"/"+tc.input, func(t *testing.T) {
				e, err := g.p.String(tc.input)
				if tc.isErr && err == nil {
					t.Errorf("got %+q, nil error; want an error", e)
				}
				if !tc.isErr && (err != nil || e != tc.output) {
					t.Errorf("got %+q (err: %v); want %+q", e, err, tc.output)
				}
			})
		}
	}
}

func TestPrepare(t *testing.T) {
	if _, err := UsernameCaseMapped.Prepare(""); err != ErrEmpty {
		t.Errorf("Prepare(\"\") = %v; want ErrEmpty", err)
	}
	if s, err := UsernameCaseMapped.Prepare("juliet"); err != nil || s != "juliet" {
		t.Errorf("Prepare(%q) = %q, %v; want juliet, nil", "juliet", s, err)
	}
	if _, err := UsernameCaseMapped.Prepare("Juliet"); err != nil {
		t.Errorf("Prepare(%q) unexpectedly failed: %v", "Juliet", err)
	}
}
