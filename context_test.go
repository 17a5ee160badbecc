package precis

import "testing"

func TestCheckContextJ(t *testing.T) {
	cases := []struct {
		name string
		s    string
		ok   bool
	}{
		{"no join controls", "hello", true},
		{"ZWNJ between D letters", "ب‌ب", true}, // BEH + ZWNJ + BEH (Dual, Dual)
		{"bare ZWNJ", "a‌b", false},              // 'a' is joinOther, resets state
		{"leading ZWNJ", "‌abc", false},
		{"bare ZWJ", "a‍b", false},
		{"ZWNJ at end of string", "ب‌", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := checkContextJ(c.s)
			if c.ok && err != nil {
				t.Errorf("checkContextJ(%+q) = %v; want nil", c.s, err)
			}
			if !c.ok && err == nil {
				t.Errorf("checkContextJ(%+q) = nil; want error", c.s)
			}
		})
	}
}

func TestJoinStateMachine(t *testing.T) {
	// A run of D letters keeps the scan in jsBefore.
	s := jsStart
	for _, jt := range []joinType{joinD, joinD, joinD} {
		s = nextJoinState(s, jt)
	}
	if s != jsBefore {
		t.Errorf("state after DDD = %v; want jsBefore", s)
	}
	// Once failed, the state machine stays failed regardless of input.
	if got := nextJoinState(jsFail, joinD); got != jsFail {
		t.Errorf("nextJoinState(jsFail, joinD) = %v; want jsFail", got)
	}
	// An unrelated character always resets to jsStart.
	if got := nextJoinState(jsBefore, joinOther); got != jsStart {
		t.Errorf("nextJoinState(jsBefore, joinOther) = %v; want jsStart", got)
	}
}
