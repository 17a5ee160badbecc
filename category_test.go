package precis

import "testing"

func TestCategoryString(t *testing.T) {
	cases := []struct {
		cat  Category
		want string
	}{
		{PValid, "PValid"},
		{SpecClassPval, "SpecClassPval"},
		{ContextJ, "ContextJ"},
		{ContextO, "ContextO"},
		{Disallowed, "Disallowed"},
		{SpecClassDis, "SpecClassDis"},
		{Unassigned, "Unassigned"},
		{Category(99), "Category(?)"},
	}
	for _, c := range cases {
		if got := c.cat.String(); got != c.want {
			t.Errorf("Category(%d).String() = %q; want %q", c.cat, got, c.want)
		}
	}
}

func TestDerivePrecedence(t *testing.T) {
	cases := []struct {
		r    rune
		want baseProperty
	}{
		{'a', propPValid},
		{'Z', propPValid},
		{'5', propPValid},
		{0x00DF, propPValid},        // ß, Exceptions PVALID
		{0x00B7, propContextO},      // middle dot, Exceptions CONTEXTO
		{0x0640, propDisallowed},    // ARABIC TATWEEL, Exceptions DISALLOWED
		{0x200C, propContextJ},      // ZWNJ
		{0x200D, propContextJ},      // ZWJ
		{0x0009, propDisallowed},    // TAB, a control
		{0x1100, propDisallowed},    // old Hangul Jamo
		{0x0020, propIDDisOrFreePVal}, // ASCII space: Zs, outside the 0x21-0x7E ASCII7 range
		{0xFFFD, propIDDisOrFreePVal}, // replacement character: a Symbol (So)
	}
	for _, c := range cases {
		if got := derive(c.r); got != c.want {
			t.Errorf("derive(%U) = %v; want %v", c.r, got, c.want)
		}
	}
}
