package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/KatrinaE/fixie-sub000/codec"
	"github.com/KatrinaE/fixie-sub000/schema"
)

// headerFields lists the header in canonical order for display.
func headerFields(env *codec.Envelope) []codec.Token {
	all := []codec.Token{
		{Tag: codec.TagBeginString, Value: env.BeginString},
		{Tag: codec.TagBodyLength, Value: env.BodyLength},
		{Tag: codec.TagMsgType, Value: env.MsgType},
		{Tag: codec.TagSenderCompID, Value: env.SenderCompID},
		{Tag: codec.TagTargetCompID, Value: env.TargetCompID},
		{Tag: codec.TagMsgSeqNum, Value: env.MsgSeqNum},
		{Tag: codec.TagSendingTime, Value: env.SendingTime},
		{Tag: codec.TagApplVerID, Value: env.ApplVerID},
	}
	present := all[:0]
	for _, f := range all {
		if f.Value != "" {
			present = append(present, f)
		}
	}
	return present
}

// printRaw dumps every field as tag=value, one per line, groups flattened.
func printRaw(w io.Writer, env *codec.Envelope) {
	for _, f := range headerFields(env) {
		fmt.Fprintf(w, "%d=%s\n", f.Tag, f.Value)
	}
	rawNodes(w, env.Body)
	if env.CheckSum != "" {
		fmt.Fprintf(w, "%d=%s\n", codec.TagCheckSum, env.CheckSum)
	}
}

func rawNodes(w io.Writer, nodes []codec.Node) {
	for _, node := range nodes {
		switch n := node.(type) {
		case codec.Scalar:
			fmt.Fprintf(w, "%d=%s\n", n.Tag, n.Value)
		case codec.Group:
			fmt.Fprintf(w, "%d=%d\n", n.CountTag, len(n.Entries))
			for _, entry := range n.Entries {
				rawNodes(w, entry)
			}
		}
	}
}

// printTree renders the message with tag names and indented group entries.
func printTree(w io.Writer, env *codec.Envelope) {
	fmt.Fprintf(w, "Message: %s (%s)\n", schema.MsgTypeName(env.MsgType), env.MsgType)

	fmt.Fprintln(w, "Header:")
	for _, f := range headerFields(env) {
		fmt.Fprintf(w, "  %s (%d): %s\n", schema.TagName(f.Tag), f.Tag, f.Value)
	}

	fmt.Fprintln(w, "Body:")
	treeNodes(w, env.Body, 1)

	if env.CheckSum != "" {
		fmt.Fprintln(w, "Trailer:")
		fmt.Fprintf(w, "  %s (%d): %s\n", schema.TagName(codec.TagCheckSum), codec.TagCheckSum, env.CheckSum)
	}
}

func treeNodes(w io.Writer, nodes []codec.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, node := range nodes {
		switch n := node.(type) {
		case codec.Scalar:
			fmt.Fprintf(w, "%s%s (%d): %s\n", indent, schema.TagName(n.Tag), n.Tag, n.Value)
		case codec.Group:
			fmt.Fprintf(w, "%s%s (%d): %d entries\n", indent, schema.TagName(n.CountTag), n.CountTag, len(n.Entries))
			for i, entry := range n.Entries {
				fmt.Fprintf(w, "%s  Entry %d:\n", indent, i+1)
				treeNodes(w, entry, depth+2)
			}
		}
	}
}

// printJSON renders the message as an indented JSON document.
func printJSON(w io.Writer, env *codec.Envelope) error {
	doc := map[string]any{
		"msg_type":      env.MsgType,
		"msg_type_name": schema.MsgTypeName(env.MsgType),
		"header":        jsonFields(headerFields(env)),
		"body":          jsonNodes(env.Body),
	}
	if env.CheckSum != "" {
		doc["trailer"] = map[string]any{"check_sum": env.CheckSum}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func jsonFields(fields []codec.Token) []map[string]any {
	out := make([]map[string]any, 0, len(fields))
	for _, f := range fields {
		out = append(out, map[string]any{
			"tag":   f.Tag,
			"name":  schema.TagName(f.Tag),
			"value": f.Value,
		})
	}
	return out
}

func jsonNodes(nodes []codec.Node) []map[string]any {
	out := make([]map[string]any, 0, len(nodes))
	for _, node := range nodes {
		switch n := node.(type) {
		case codec.Scalar:
			out = append(out, map[string]any{
				"tag":   n.Tag,
				"name":  schema.TagName(n.Tag),
				"value": n.Value,
			})
		case codec.Group:
			entries := make([][]map[string]any, 0, len(n.Entries))
			for _, entry := range n.Entries {
				entries = append(entries, jsonNodes(entry))
			}
			out = append(out, map[string]any{
				"tag":     n.CountTag,
				"name":    schema.TagName(n.CountTag),
				"entries": entries,
			})
		}
	}
	return out
}
