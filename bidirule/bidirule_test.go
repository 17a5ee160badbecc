package bidirule

import "testing"

func TestValidString(t *testing.T) {
	cases := []struct {
		name string
		s    string
		want bool
	}{
		{"empty", "", true},
		{"plain ascii", "abc", true},
		{"ascii digits", "123", true},
		{"hebrew only", "שלום", true},
		{"hebrew then ltr letter", "שc", false},
		{"ltr then trailing hebrew", "cש", false},
		{"leading combining mark", "́a", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ValidString(c.s); got != c.want {
				t.Errorf("ValidString(%+q) = %v; want %v", c.s, got, c.want)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	if got := DirectionString("abc"); got != LeftToRight {
		t.Errorf("DirectionString(%q) = %v; want LeftToRight", "abc", got)
	}
	if got := DirectionString("שלום"); got != RightToLeft {
		t.Errorf("DirectionString(%q) = %v; want RightToLeft", "שלום", got)
	}
	if got := DirectionString("שc"); got != Invalid {
		t.Errorf("DirectionString(%q) = %v; want Invalid", "שc", got)
	}
}

func TestCheckStringRuleNumbers(t *testing.T) {
	cases := []struct {
		s    string
		rule int
	}{
		{"́a", 1}, // leading NSM: fails rule 1 (first char must be L, R or AL)
		{"c+", 6},      // trailing ES after an LTR label: fails rule 6
	}
	for _, c := range cases {
		err := CheckString(c.s)
		re, ok := err.(*RuleError)
		if !ok {
			t.Fatalf("CheckString(%+q) = %v (%T); want *RuleError", c.s, err, err)
		}
		if re.Rule != c.rule {
			t.Errorf("CheckString(%+q) rule = %d; want %d", c.s, re.Rule, c.rule)
		}
	}
}
