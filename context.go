package precis

import "strings"

// This file implements the CONTEXTJ rule of RFC 8264 §4.8 / RFC 5892
// Appendix A for the two join controls, ZERO WIDTH NON-JOINER (U+200C) and
// ZERO WIDTH JOINER (U+200D). CONTEXTO is not implemented: RFC 8264 notes
// that no PRECIS profile currently defines a CONTEXTO rule, so every
// profile in this module treats ContextO codepoints as disallowed
// (spec.md §4.8).
//
// The state machine below is grounded on the join-control checker in
// internal/export/idna/idna.go (states Start/Virama/Before/BeforeVirama/
// After/FAIL driven by a joinType), adapted to the smaller set of
// Joining_Type ranges this module curates in joiningtables.go.

type joinType int

const (
	joinOther joinType = iota // resets the scan: breaks any in-progress join sequence
	joinL
	joinD
	joinT
	joinR
	joinZWNJ
	joinZWJ
	joinVirama
)

func joinTypeOf(r rune) joinType {
	switch r {
	case 0x200C:
		return joinZWNJ
	case 0x200D:
		return joinZWJ
	}
	switch {
	case virama.Contains(r):
		return joinVirama
	case joiningDual.Contains(r):
		return joinD
	case joiningLeft.Contains(r):
		return joinL
	case joiningRight.Contains(r):
		return joinR
	case joiningTransparent.Contains(r):
		return joinT
	default:
		return joinOther
	}
}

type joinState int

const (
	jsStart joinState = iota
	jsVirama
	jsBefore
	jsBeforeVirama
	jsAfter
	jsFail
)

// nextJoinState advances the CONTEXTJ scan by one codepoint of join type
// jt. Any joinOther codepoint resets the scan to jsStart: per RFC 5892
// Appendix A, a ZWNJ/ZWJ must be immediately preceded (modulo Transparent
// characters) by the required joining types, so an unrelated character
// anywhere in between invalidates that run.
func nextJoinState(state joinState, jt joinType) joinState {
	if state == jsFail {
		return jsFail
	}
	if jt == joinOther {
		return jsStart
	}
	switch state {
	case jsStart:
		switch jt {
		case joinL, joinD:
			return jsBefore
		case joinVirama:
			return jsVirama
		case joinZWNJ, joinZWJ:
			return jsFail
		}
	case jsVirama:
		switch jt {
		case joinL, joinD:
			return jsBefore
		}
	case jsBefore:
		switch jt {
		case joinL, joinD, joinT:
			return jsBefore
		case joinZWNJ:
			return jsAfter
		case joinZWJ:
			return jsFail
		case joinVirama:
			return jsBeforeVirama
		}
	case jsBeforeVirama:
		switch jt {
		case joinL, joinD, joinT:
			return jsBefore
		}
	case jsAfter:
		switch jt {
		case joinD:
			return jsBefore
		case joinT, joinVirama:
			return jsAfter
		case joinR:
			return jsStart
		case joinL, joinZWNJ, joinZWJ:
			return jsFail
		}
	}
	return jsStart
}

// checkContextJ scans s for the CONTEXTJ join controls and verifies each
// one sits in a legal joining context. It returns nil quickly for the
// common case of a string with no join controls at all.
func checkContextJ(s string) error {
	if !strings.ContainsRune(s, 0x200C) && !strings.ContainsRune(s, 0x200D) {
		return nil
	}
	state := jsStart
	for _, r := range s {
		state = nextJoinState(state, joinTypeOf(r))
		if state == jsFail {
			return &RuneError{Rune: r, Reason: ReasonContextViolation}
		}
	}
	if state == jsAfter {
		return &RuneError{Reason: ReasonContextViolation}
	}
	return nil
}
