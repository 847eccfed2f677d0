package groups

import (
	"fmt"
	"sync"

	"github.com/KatrinaE/fixie-sub000/errors"
)

// Nested declares that another repeating group may appear inside one entry
// of the owning group. ParentTag, when non-zero, names the member field the
// nested group is subordinate to: the nested count tag is only legal once
// that field is present in the entry under construction.
type Nested struct {
	CountTag  uint32
	ParentTag uint32
}

// Spec describes one repeating group: the count tag that announces it, the
// delimiter tag that starts every entry, the full ordered set of tags legal
// inside an entry, and any groups that nest inside an entry.
//
// Specs are immutable once registered. The resolver's boundary detection
// depends on MemberTags being complete: a member tag missing here makes the
// resolver close the group one field early.
type Spec struct {
	CountTag     uint32
	DelimiterTag uint32
	MemberTags   []uint32
	NestedGroups []Nested

	members map[uint32]bool
	nested  map[uint32]Nested
}

// IsMember reports whether tag is legal inside one entry of this group.
func (s *Spec) IsMember(tag uint32) bool {
	return s.members[tag]
}

// NestedGroup returns the nested-group declaration for the given count tag,
// if one entry of this group may contain it.
func (s *Spec) NestedGroup(countTag uint32) (Nested, bool) {
	n, ok := s.nested[countTag]
	return n, ok
}

// finalize builds the lookup sets. Called exactly once, by the registry.
func (s *Spec) finalize() {
	s.members = make(map[uint32]bool, len(s.MemberTags))
	for _, t := range s.MemberTags {
		s.members[t] = true
	}
	s.nested = make(map[uint32]Nested, len(s.NestedGroups))
	for _, n := range s.NestedGroups {
		s.nested[n.CountTag] = n
	}
}

// Key is the composite registry lookup key. An empty MsgType denotes the
// generic definition for a count tag, consulted only when no message-scoped
// entry exists.
type Key struct {
	CountTag uint32
	MsgType  string
}

// Def pairs a Spec with the message-type scope it is registered under.
// An empty MsgType registers the generic definition.
type Def struct {
	MsgType string
	Spec    Spec
}

// Registry maps (count tag, optional message type) to group specifications.
// It is built once and read-only afterwards.
type Registry struct {
	specs map[Key]*Spec
}

// NewRegistry builds a registry from the given definitions. Registering two
// definitions under the same (count tag, message type) key is a configuration
// error, reported here rather than at resolve time.
func NewRegistry(defs ...Def) (*Registry, error) {
	r := &Registry{specs: make(map[Key]*Spec, len(defs))}
	for _, d := range defs {
		key := Key{CountTag: d.Spec.CountTag, MsgType: d.MsgType}
		if _, exists := r.specs[key]; exists {
			return nil, errors.WrapConfig(
				fmt.Errorf("count tag %d, msg type %q: %w", key.CountTag, key.MsgType, errors.ErrDuplicateGroupSpec),
				"Registry", "NewRegistry", "registering group")
		}
		spec := d.Spec
		spec.finalize()
		r.specs[key] = &spec
	}
	return r, nil
}

// Lookup resolves the group specification for a count tag in the context of
// a message type. The message-scoped definition wins; the generic definition
// is the fallback. A nil return means the tag is not a recognized group
// count field in this context and should be treated as an ordinary scalar.
func (r *Registry) Lookup(countTag uint32, msgType string) *Spec {
	if msgType != "" {
		if spec, ok := r.specs[Key{CountTag: countTag, MsgType: msgType}]; ok {
			return spec
		}
	}
	if spec, ok := r.specs[Key{CountTag: countTag}]; ok {
		return spec
	}
	return nil
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.specs)
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry of built-in FIX 5.0 SP2 group definitions.
// It is constructed on first use and never mutated afterwards, so it is safe
// for unsynchronized concurrent reads.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry(builtinDefs()...)
		if err != nil {
			// The built-in table is part of the source; a duplicate key
			// is a programming error, not a runtime condition.
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}
