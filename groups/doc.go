// Package groups holds the static registry of FIX repeating-group
// definitions consulted by the codec resolver.
//
// A repeating group on the wire is announced by a "NoXXX" count tag whose
// value is the number of entries that follow; each entry starts with the
// group's delimiter tag. Groups carry no end marker, so the resolver can only
// detect entry and group boundaries by asking "does this tag belong here" -
// which makes the registry's member-tag sets load-bearing, not advisory.
//
// Definitions are either generic or scoped to a single message type.
// Lookup(countTag, msgType) prefers the message-scoped definition and falls
// back to the generic one; a miss means the tag is an ordinary scalar field.
//
// The built-in FIX 5.0 SP2 definitions are available through Default(),
// constructed once on first use and immutable afterwards, so concurrent
// readers need no synchronization. Custom groups for protocol extensions can
// be loaded from a JSON dictionary (see LoadDictionary) and combined with the
// built-ins via NewRegistry.
package groups
