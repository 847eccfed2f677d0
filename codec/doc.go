// Package codec implements the generic FIX tag-value codec: tokenizing raw
// wire buffers, resolving repeating groups into a nested field tree, and
// encoding trees back to checksum-valid wire bytes.
//
// # Decode path
//
// Bytes flow one way through three stages:
//
//	buffer -> Tokenize -> []Token -> Resolver.Resolve -> []Node
//
// Tokenize splits the buffer on its record delimiter (auto-detected: the
// native SOH control byte, or the pipe character used by hand-authored
// fixtures) into ordered (tag, value) tokens. The Resolver then walks the
// token stream once, consulting the group registry to distinguish plain
// fields from group count fields and group entry members, and builds the
// field tree. Token order is the only signal for group-entry boundaries, so
// it is preserved exactly.
//
// # Encode path
//
// Encode is the exact inverse: the envelope's header fields are serialized
// in canonical order, the field tree is flattened depth-first, and
// BodyLength(9) and CheckSum(10) are recomputed. Round-tripping a resolved
// message reproduces an equivalent tree, with only those two fields rewritten.
//
// # Envelope
//
// Envelope owns the header/body/trailer split and the delimiter a message
// was parsed with. Parse and Encode allocate fresh outputs and share no
// state, so messages may be processed concurrently without coordination.
package codec
