package codec

import "fmt"

// Token is one tag=value pair from the wire, in stream order. Tokens are
// transient: produced by Tokenize and consumed immediately by the Resolver.
// The same tag may legitimately appear many times in one message - once per
// repeating-group entry - so tokens are never deduplicated.
type Token struct {
	Tag   uint32
	Value string
}

// String renders the token in wire form without a delimiter.
func (t Token) String() string {
	return fmt.Sprintf("%d=%s", t.Tag, t.Value)
}
