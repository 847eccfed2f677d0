// Package main implements the fixie command, a FIX message parser and
// pretty-printer over the fixie codec. It accepts a message as an argument
// or on stdin, in either native SOH-delimited or pipe-delimited form, and
// renders the resolved field tree as text, raw tag=value pairs, or JSON.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/KatrinaE/fixie-sub000/codec"
	"github.com/KatrinaE/fixie-sub000/groups"
)

const (
	Version = "0.1.0"
	appName = "fixie"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fixie failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := parseFlags()

	if cfg.ShowVersion {
		fmt.Printf("%s %s\n", appName, Version)
		return nil
	}

	registry, err := loadRegistry(cfg.Dictionary)
	if err != nil {
		return err
	}

	message := cfg.Message
	if message == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		message = strings.TrimRight(string(data), "\r\n")
	}
	if message == "" {
		return fmt.Errorf("no message given (argument or stdin)")
	}

	env, err := codec.ParseWith([]byte(message), registry)
	if err != nil {
		return fmt.Errorf("parsing message: %w", err)
	}

	switch {
	case cfg.Raw:
		printRaw(os.Stdout, env)
	case cfg.JSON:
		if err := printJSON(os.Stdout, env); err != nil {
			return err
		}
	default:
		printTree(os.Stdout, env)
	}
	return nil
}

// loadRegistry composes the built-in group definitions with a user
// dictionary, when one is configured.
func loadRegistry(path string) (*groups.Registry, error) {
	if path == "" {
		return groups.Default(), nil
	}
	defs, err := groups.LoadDictionary(path)
	if err != nil {
		return nil, err
	}
	slog.Info("loaded group dictionary", "path", path, "groups", len(defs))
	return groups.NewRegistry(append(groups.BuiltinDefs(), defs...)...)
}
