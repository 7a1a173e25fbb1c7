// Package chat is a provider-neutral chat message model built on
// [oneormany.OneOrMany].
//
// Upstream APIs disagree on whether a message's content is a bare string or
// a list of typed parts, and on whether a single tool call is wrapped in a
// list. Modelling both fields as OneOrMany lets every variant decode into the
// same value while always encoding the list form:
//
//	{"role":"user","content":"hi"}
//	{"role":"user","content":[{"type":"text","text":"hi"}]}
//
// both decode to the same [Message], which encodes as the second form.
//
// # History helpers
//
//   - [Coalesce] folds adjacent messages from the same speaker into one.
//   - [Fingerprint] and [HistoryFingerprint] produce BLAKE2b-256 digests of
//     the canonical encoding, so equivalent inputs hash identically.
//   - [DecodeArguments] decodes every tool call's JSON arguments at once.
package chat
