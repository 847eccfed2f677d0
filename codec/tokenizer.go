package codec

import (
	"bytes"
	"strconv"
)

// DetectDelimiter reports the record delimiter a buffer uses: SOH if the
// buffer contains the native control byte, the pipe character if not, and
// SOH as the default when neither appears. A buffer never mixes the two.
func DetectDelimiter(buf []byte) byte {
	if bytes.IndexByte(buf, SOH) >= 0 {
		return SOH
	}
	if bytes.IndexByte(buf, Pipe) >= 0 {
		return Pipe
	}
	return SOH
}

// Tokenize splits a raw wire buffer into its ordered tag=value tokens.
//
// Each delimiter-separated chunk must match tag "=" value with a
// non-negative integer tag; a chunk that does not fails with a
// MalformedTokenError carrying the raw chunk. Empty chunks (a trailing
// delimiter, typically) are skipped, not tokens.
//
// The returned order is exactly the stream order. That ordering is
// load-bearing: it is the only signal the Resolver has for repeating-group
// entry boundaries.
func Tokenize(buf []byte) ([]Token, error) {
	delimiter := DetectDelimiter(buf)

	chunks := bytes.Split(buf, []byte{delimiter})
	tokens := make([]Token, 0, len(chunks))
	for _, chunk := range chunks {
		if len(chunk) == 0 {
			continue
		}
		eq := bytes.IndexByte(chunk, '=')
		if eq < 1 {
			return nil, &MalformedTokenError{Chunk: string(chunk)}
		}
		tag, err := strconv.ParseUint(string(chunk[:eq]), 10, 32)
		if err != nil {
			return nil, &MalformedTokenError{Chunk: string(chunk)}
		}
		tokens = append(tokens, Token{Tag: uint32(tag), Value: string(chunk[eq+1:])})
	}
	return tokens, nil
}
