// Package precis implements the Preparation, Enforcement, and Comparison
// of Internationalized Strings (PRECIS) framework defined by RFC 8264,
// along with the UsernameCaseMapped, UsernameCasePreserved and
// OpaqueString profiles of RFC 8265 and the Nickname profile of RFC 8266.
//
// PRECIS profiles prepare a string for use as a protocol identifier by
// first classifying every codepoint against a string class (Identifier or
// Freeform), then optionally mapping, case-folding, normalizing and
// bidi-checking the result. A Profile's Prepare method performs only the
// checks (classification and, where the profile applies it, the Bidi Rule)
// without mapping or normalizing; its String, Bytes and Append methods
// additionally run the transformation pipeline associated with the profile
// (RFC 8264 §7-8).
package precis
