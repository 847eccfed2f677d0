package codec

import (
	"strconv"

	"github.com/KatrinaE/fixie-sub000/groups"
)

// Resolver turns an ordered token stream into a field tree, using a group
// registry to distinguish plain fields, group count fields, and group entry
// members. A Resolver is stateless between calls and safe for concurrent use.
type Resolver struct {
	registry *groups.Registry
}

// NewResolver returns a Resolver backed by the given registry. A nil
// registry means the built-in definitions.
func NewResolver(registry *groups.Registry) *Resolver {
	if registry == nil {
		registry = groups.Default()
	}
	return &Resolver{registry: registry}
}

// groupContext is one open repeating group during resolution: its spec, how
// many entries its count tag declared, the entries closed so far, and the
// entry under construction.
type groupContext struct {
	spec     *groups.Spec
	expected int
	entries  []Entry
	current  Entry
}

// completed counts closed entries plus the in-progress entry, if any.
func (c *groupContext) completed() int {
	n := len(c.entries)
	if len(c.current) > 0 {
		n++
	}
	return n
}

// Resolve consumes the token stream in a single forward pass and produces
// the message's field tree.
//
// Repeating groups carry no end marker on the wire - only a declared entry
// count and a recognizable first-field-of-entry. Boundaries are therefore
// detected entirely through membership tests against the registry:
// recurrence of a group's delimiter tag starts a new entry, and a tag that
// belongs to no open group closes groups until it finds its level. Tags
// unknown at top level are tolerated as scalars, so unregistered or custom
// groups degrade to flat fields instead of failing the message.
//
// Resolution is all-or-nothing: any structural error leaves no partial tree.
func (r *Resolver) Resolve(tokens []Token, msgType string) (Tree, error) {
	run := &resolveRun{resolver: r, msgType: msgType}

	i := 0
	for i < len(tokens) {
		advance, err := run.step(tokens[i])
		if err != nil {
			return nil, err
		}
		if advance {
			i++
		}
	}

	// End of stream: close every open context, validating counts.
	for len(run.stack) > 0 {
		if err := run.closeTop(); err != nil {
			return nil, err
		}
	}
	return run.top, nil
}

// resolveRun is the mutable state of one Resolve call.
type resolveRun struct {
	resolver *Resolver
	msgType  string
	top      Tree
	stack    []*groupContext
}

// step processes one token against the current innermost context. It returns
// false when the token must be retried after a context pop.
func (run *resolveRun) step(tok Token) (advance bool, err error) {
	if len(run.stack) == 0 {
		return true, run.stepTopLevel(tok)
	}

	ctx := run.stack[len(run.stack)-1]

	// Recurrence of the delimiter tag starts the next entry - unless the
	// declared count is already satisfied, in which case the group is
	// complete and the token belongs to an enclosing scope.
	if tok.Tag == ctx.spec.DelimiterTag {
		if ctx.completed() >= ctx.expected {
			return false, run.closeTop()
		}
		if len(ctx.current) > 0 {
			ctx.entries = append(ctx.entries, ctx.current)
			ctx.current = nil
		}
		ctx.current = append(ctx.current, Scalar{Tag: tok.Tag, Value: tok.Value})
		return true, nil
	}

	// A registered count tag opens a nested group, but only where the
	// owning spec declares it. Registered count tags that are invalid here
	// fall through to the termination logic below.
	if spec := run.resolver.registry.Lookup(tok.Tag, run.msgType); spec != nil {
		if nested, ok := ctx.spec.NestedGroup(tok.Tag); ok {
			if nested.ParentTag != 0 {
				if _, ok := ctx.current.Field(nested.ParentTag); !ok {
					return false, &AmbiguousNestedGroupError{
						CountTag:  tok.Tag,
						ParentTag: nested.ParentTag,
					}
				}
			}
			return true, run.push(spec, tok)
		}
	}

	// Ordinary member of the current entry.
	if ctx.spec.IsMember(tok.Tag) {
		ctx.current = append(ctx.current, Scalar{Tag: tok.Tag, Value: tok.Value})
		return true, nil
	}

	// The tag belongs to no open construct at this level: the entry and the
	// group are over. Pop and retry; this may unwind several levels before
	// the token finds a home.
	return false, run.closeTop()
}

// stepTopLevel places a token when no group is open.
func (run *resolveRun) stepTopLevel(tok Token) error {
	if spec := run.resolver.registry.Lookup(tok.Tag, run.msgType); spec != nil {
		return run.push(spec, tok)
	}
	// Unknown and custom tags are always legal at top level.
	run.top = append(run.top, Scalar{Tag: tok.Tag, Value: tok.Value})
	return nil
}

// push opens a group context for a count-tag token. The Group node itself is
// emitted when the context closes.
func (run *resolveRun) push(spec *groups.Spec, tok Token) error {
	count, err := strconv.Atoi(tok.Value)
	if err != nil || count < 0 {
		return &InvalidGroupCountError{CountTag: tok.Tag, Value: tok.Value}
	}
	run.stack = append(run.stack, &groupContext{spec: spec, expected: count})
	return nil
}

// closeTop closes the in-progress entry of the innermost group, validates
// its entry count against the declared count, and emits the Group node into
// the parent scope.
func (run *resolveRun) closeTop() error {
	ctx := run.stack[len(run.stack)-1]
	run.stack = run.stack[:len(run.stack)-1]

	if len(ctx.current) > 0 {
		ctx.entries = append(ctx.entries, ctx.current)
		ctx.current = nil
	}
	if len(ctx.entries) != ctx.expected {
		return &GroupCountMismatchError{
			CountTag: ctx.spec.CountTag,
			Expected: ctx.expected,
			Actual:   len(ctx.entries),
		}
	}

	node := Group{CountTag: ctx.spec.CountTag, Entries: ctx.entries}
	if len(run.stack) == 0 {
		run.top = append(run.top, node)
	} else {
		parent := run.stack[len(run.stack)-1]
		parent.current = append(parent.current, node)
	}
	return nil
}
