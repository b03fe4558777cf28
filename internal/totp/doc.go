// Package totp implements time-based one-time passwords (RFC 6238) from
// primitives: a strict base32 decoder, HMAC-SHA1 counter codes with dynamic
// truncation, and window validation.
//
// Validation is replay tolerant inside the window. The same code is accepted
// for every counter it matches, so callers that need single use must track
// consumed codes themselves.
package totp
