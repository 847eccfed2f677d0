package codec

// Node is one element of a field tree: either a Scalar field or a repeating
// Group. A message body is an ordered []Node; group entries are themselves
// ordered node lists, so groups nest to arbitrary depth.
type Node interface {
	isNode()
}

// Scalar is a plain tag=value field.
type Scalar struct {
	Tag   uint32
	Value string
}

func (Scalar) isNode() {}

// Entry is one repetition of a repeating group's field set. Its first node
// is always the group's delimiter-tag field.
type Entry []Node

// Field returns the value of the first Scalar in the entry with the given
// tag, and whether one exists.
func (e Entry) Field(tag uint32) (string, bool) {
	for _, n := range e {
		if s, ok := n.(Scalar); ok && s.Tag == tag {
			return s.Value, true
		}
	}
	return "", false
}

// Group returns the first nested Group in the entry announced by the given
// count tag, or nil.
func (e Entry) Group(countTag uint32) *Group {
	for _, n := range e {
		if g, ok := n.(Group); ok && g.CountTag == countTag {
			return &g
		}
	}
	return nil
}

// Group is a resolved repeating group: the count tag that announced it and
// its entries in stream order. len(Entries) always equals the count parsed
// from the wire; the Resolver rejects messages where the two disagree.
type Group struct {
	CountTag uint32
	Entries  []Entry
}

func (Group) isNode() {}

// Tree is an ordered list of field nodes - the parsed body of one message.
type Tree []Node

// Field returns the value of the first top-level Scalar with the given tag.
func (t Tree) Field(tag uint32) (string, bool) {
	return Entry(t).Field(tag)
}

// Group returns the first top-level Group announced by the given count tag,
// or nil.
func (t Tree) Group(countTag uint32) *Group {
	return Entry(t).Group(countTag)
}
