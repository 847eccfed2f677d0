package main

import (
	"flag"
	"fmt"
	"os"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	Message     string
	Dictionary  string
	Raw         bool
	JSON        bool
	ShowVersion bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	flag.StringVar(&cfg.Dictionary, "dictionary",
		getEnv("FIXIE_DICTIONARY", ""),
		"Path to a JSON group dictionary extending the built-in registry (env: FIXIE_DICTIONARY)")

	flag.BoolVar(&cfg.Raw, "raw", false, "Display raw tag=value pairs")
	flag.BoolVar(&cfg.Raw, "r", false, "Display raw tag=value pairs")
	flag.BoolVar(&cfg.JSON, "json", false, "Display as JSON")
	flag.BoolVar(&cfg.JSON, "j", false, "Display as JSON")
	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flag.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `fixie - FIX message parser and pretty-printer

Usage:
  fixie [flags] [message]

The message may be SOH- or pipe-delimited. When no message argument is
given, fixie reads one from stdin.

Flags:
`)
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() > 0 {
		cfg.Message = flag.Arg(0)
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
