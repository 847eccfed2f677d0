// Package errors provides standardized error handling patterns for the fixie
// codec. It defines the failure taxonomy shared by the tokenizer, the group
// resolver, and the registry, together with classification and wrapping
// helpers.
//
// # Error Classification
//
// Errors fall into three classes:
//
//   - ErrorSyntax: the buffer is not valid tag=value wire syntax, or a
//     required header field is absent. The message cannot be tokenized.
//   - ErrorStructure: the token stream tokenized cleanly but its repeating
//     groups are inconsistent (count mismatch, misplaced nested group,
//     unparsable count value).
//   - ErrorConfig: the group registry or a custom dictionary is misconfigured.
//     These surface at initialization, never per message.
//
// # Usage
//
// Sentinel errors support errors.Is matching across wrapped chains:
//
//	_, err := codec.Parse(buf)
//	if errors.Is(err, errors.ErrGroupCountMismatch) {
//	    // declared and actual entry counts disagree
//	}
//
// Wrapping helpers add component/operation context while preserving the
// sentinel for matching:
//
//	return errors.WrapStructure(err, "Resolver", "Resolve", "closing group")
//
// Decode is all-or-nothing: any error from this taxonomy means no partial
// message was produced.
package errors
