package groups

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"

	"github.com/KatrinaE/fixie-sub000/errors"
)

// dictionarySchema is the JSON Schema a group dictionary document must
// satisfy. Validated before unmarshaling so misconfiguration is reported
// with the offending field path instead of a zero-valued Spec.
const dictionarySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["groups"],
  "properties": {
    "groups": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["count_tag", "delimiter_tag", "member_tags"],
        "properties": {
          "msg_type": {"type": "string"},
          "count_tag": {"type": "integer", "minimum": 1},
          "delimiter_tag": {"type": "integer", "minimum": 1},
          "member_tags": {
            "type": "array",
            "minItems": 1,
            "items": {"type": "integer", "minimum": 1}
          },
          "nested_groups": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["count_tag"],
              "properties": {
                "count_tag": {"type": "integer", "minimum": 1},
                "parent_tag": {"type": "integer", "minimum": 1}
              }
            }
          }
        }
      }
    }
  }
}`

// dictionaryDoc mirrors the on-disk dictionary format.
type dictionaryDoc struct {
	Groups []dictionaryGroup `json:"groups"`
}

type dictionaryGroup struct {
	MsgType      string             `json:"msg_type,omitempty"`
	CountTag     uint32             `json:"count_tag"`
	DelimiterTag uint32             `json:"delimiter_tag"`
	MemberTags   []uint32           `json:"member_tags"`
	NestedGroups []dictionaryNested `json:"nested_groups,omitempty"`
}

type dictionaryNested struct {
	CountTag  uint32 `json:"count_tag"`
	ParentTag uint32 `json:"parent_tag,omitempty"`
}

// ParseDictionary validates and decodes a JSON group dictionary. The returned
// definitions can be combined with builtins:
//
//	defs, err := groups.ParseDictionary(data)
//	reg, err := groups.NewRegistry(append(groups.BuiltinDefs(), defs...)...)
func ParseDictionary(data []byte) ([]Def, error) {
	schemaLoader := gojsonschema.NewStringLoader(dictionarySchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, errors.WrapConfig(
			fmt.Errorf("%w: %v", errors.ErrInvalidDictionary, err),
			"Dictionary", "ParseDictionary", "validating document")
	}
	if !result.Valid() {
		msg := ""
		for _, desc := range result.Errors() {
			msg += fmt.Sprintf("  - %s: %s\n", desc.Field(), desc.Description())
		}
		return nil, errors.WrapConfig(
			fmt.Errorf("%w:\n%s", errors.ErrInvalidDictionary, msg),
			"Dictionary", "ParseDictionary", "validating document")
	}

	var doc dictionaryDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapConfig(
			fmt.Errorf("%w: %v", errors.ErrInvalidDictionary, err),
			"Dictionary", "ParseDictionary", "decoding document")
	}

	defs := make([]Def, 0, len(doc.Groups))
	for _, g := range doc.Groups {
		spec := Spec{
			CountTag:     g.CountTag,
			DelimiterTag: g.DelimiterTag,
			MemberTags:   g.MemberTags,
		}
		for _, n := range g.NestedGroups {
			spec.NestedGroups = append(spec.NestedGroups, Nested{
				CountTag:  n.CountTag,
				ParentTag: n.ParentTag,
			})
		}
		defs = append(defs, Def{MsgType: g.MsgType, Spec: spec})
	}
	return defs, nil
}

// LoadDictionary reads and parses a JSON group dictionary from disk.
func LoadDictionary(path string) ([]Def, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapConfig(
			fmt.Errorf("%w: %v", errors.ErrInvalidDictionary, err),
			"Dictionary", "LoadDictionary", "reading file")
	}
	return ParseDictionary(data)
}

// BuiltinDefs returns a copy of the built-in FIX 5.0 SP2 definitions, for
// callers composing a custom registry on top of the defaults.
func BuiltinDefs() []Def {
	return builtinDefs()
}
