// Package schema provides the declarative collaborator layer on top of the
// codec: per-message-type field descriptor tables, a tag-name dictionary,
// and helpers that build or extract typed field sets by walking a resolved
// field tree.
//
// Where hand-written per-message conversion code would duplicate the same
// walk hundreds of times, a MessageDef describes a message once - which tags
// it carries and which are required - and Build/Extract process any
// described message generically. The codec package knows nothing about this
// layer; data flows strictly downward.
package schema
