package schema

import (
	"fmt"

	"github.com/KatrinaE/fixie-sub000/codec"
	"github.com/KatrinaE/fixie-sub000/errors"
)

// FieldDef describes one body field of a message type.
type FieldDef struct {
	Tag      uint32
	Name     string
	Required bool
}

// MessageDef describes the body-level scalar fields of one message type.
// Repeating groups are not described here - they are resolved structurally
// by the codec's group registry - so a definition stays a flat table.
type MessageDef struct {
	MsgType string
	Name    string
	Fields  []FieldDef
}

// messageDefs is the catalogue of described message types. The table is the
// whole mapping layer: adding a message type means adding rows, not code.
var messageDefs = map[string]*MessageDef{
	codec.MsgTypeNewOrderSingle: {
		MsgType: codec.MsgTypeNewOrderSingle,
		Name:    "NewOrderSingle",
		Fields: []FieldDef{
			{Tag: 11, Name: "ClOrdID", Required: true},
			{Tag: 55, Name: "Symbol", Required: true},
			{Tag: 54, Name: "Side", Required: true},
			{Tag: 60, Name: "TransactTime", Required: true},
			{Tag: 40, Name: "OrdType", Required: true},
			{Tag: 38, Name: "OrderQty", Required: false},
			{Tag: 44, Name: "Price", Required: false},
			{Tag: 59, Name: "TimeInForce", Required: false},
			{Tag: 1, Name: "Account", Required: false},
			{Tag: 58, Name: "Text", Required: false},
		},
	},
	codec.MsgTypeExecutionReport: {
		MsgType: codec.MsgTypeExecutionReport,
		Name:    "ExecutionReport",
		Fields: []FieldDef{
			{Tag: 37, Name: "OrderID", Required: true},
			{Tag: 17, Name: "ExecID", Required: true},
			{Tag: 150, Name: "ExecType", Required: true},
			{Tag: 39, Name: "OrdStatus", Required: true},
			{Tag: 11, Name: "ClOrdID", Required: false},
			{Tag: 55, Name: "Symbol", Required: true},
			{Tag: 54, Name: "Side", Required: true},
			{Tag: 151, Name: "LeavesQty", Required: true},
			{Tag: 14, Name: "CumQty", Required: true},
			{Tag: 6, Name: "AvgPx", Required: false},
			{Tag: 31, Name: "LastPx", Required: false},
			{Tag: 32, Name: "LastQty", Required: false},
			{Tag: 58, Name: "Text", Required: false},
		},
	},
	codec.MsgTypeEmail: {
		MsgType: codec.MsgTypeEmail,
		Name:    "Email",
		Fields: []FieldDef{
			{Tag: 164, Name: "EmailThreadID", Required: true},
			{Tag: 94, Name: "EmailType", Required: true},
			{Tag: 147, Name: "Subject", Required: true},
			{Tag: 58, Name: "Text", Required: false},
		},
	},
}

// Lookup returns the descriptor for a message type, or nil when the type is
// not catalogued.
func Lookup(msgType string) *MessageDef {
	return messageDefs[msgType]
}

// Extract reads the described scalar fields out of a resolved envelope.
// A required field absent from the body is an error naming the tag; optional
// fields are simply omitted from the result.
func Extract(env *codec.Envelope, def *MessageDef) (map[uint32]string, error) {
	out := make(map[uint32]string, len(def.Fields))
	for _, f := range def.Fields {
		value, ok := env.Body.Field(f.Tag)
		if !ok {
			if f.Required {
				return nil, errors.WrapSyntax(
					fmt.Errorf("%s(%d) in %s: %w", f.Name, f.Tag, def.Name, errors.ErrMissingRequiredField),
					"MessageDef", "Extract", "reading required field")
			}
			continue
		}
		out[f.Tag] = value
	}
	return out, nil
}

// Build assembles an envelope body from field values, emitting fields in
// the descriptor's canonical order. Values for tags the descriptor does not
// describe are rejected rather than silently dropped.
func Build(def *MessageDef, values map[uint32]string) (*codec.Envelope, error) {
	described := make(map[uint32]bool, len(def.Fields))
	for _, f := range def.Fields {
		described[f.Tag] = true
	}
	for tag := range values {
		if !described[tag] {
			return nil, errors.WrapSyntax(
				fmt.Errorf("tag %d not described for %s", tag, def.Name),
				"MessageDef", "Build", "checking fields")
		}
	}

	env := &codec.Envelope{
		BeginString: codec.BeginStringFIXT11,
		MsgType:     def.MsgType,
		ApplVerID:   codec.ApplVerIDFIX50SP2,
	}
	for _, f := range def.Fields {
		value, ok := values[f.Tag]
		if !ok {
			if f.Required {
				return nil, errors.WrapSyntax(
					fmt.Errorf("%s(%d) in %s: %w", f.Name, f.Tag, def.Name, errors.ErrMissingRequiredField),
					"MessageDef", "Build", "checking required field")
			}
			continue
		}
		env.Body = append(env.Body, codec.Scalar{Tag: f.Tag, Value: value})
	}
	return env, nil
}
