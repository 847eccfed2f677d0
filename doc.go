// Package fixie provides a generic codec for the FIX 5.0 SP2 tag-value wire
// protocol: tokenizing raw messages, resolving repeating groups into a nested
// field tree, and encoding trees back to checksum-valid wire bytes.
//
// # Architecture
//
// The codec is split into small, one-way layers:
//
//   - codec:  Tokenizer -> Resolver -> Field Tree on decode, and the exact
//     inverse (Encoder) on encode. This is the core of the library.
//   - groups: the static registry of repeating-group definitions that the
//     Resolver consults to tell "plain field" from "group count field" from
//     "group entry member". Definitions may be generic or scoped to a single
//     message type, and custom groups can be loaded from a JSON dictionary.
//   - schema: declarative per-message-type field descriptors and a tag-name
//     table. A thin collaborator layer on top of the codec; nothing in codec
//     depends on it.
//   - metric: optional Prometheus instrumentation wrapping the pure codec.
//
// The codec is purely functional per call: Parse and Encode share no mutable
// state, so messages may be processed concurrently without coordination
// beyond the group registry's one-time initialization.
//
// fixie deliberately implements no session layer (logon, heartbeats,
// sequence-number recovery) and no transport. Callers hand it complete
// in-memory buffers and take complete buffers back.
package fixie
