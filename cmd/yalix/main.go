//-----------------------------------------------------------------------------
// Copyright (c) 2026-present The Yalix Authors
//
// This file is part of yalix.
//
// yalix is licensed under the terms of the MIT License. Please see file
// LICENSE.txt for your rights and obligations under this license.
//
// SPDX-License-Identifier: MIT
//-----------------------------------------------------------------------------

// Command yalix is the Yalix interpreter's command-line front end: it
// bootstraps the core library, then either evaluates a list of source
// files or drops into a read-eval-print loop over stdin.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
	"github.com/pkg/profile"

	"yalix.dev/yalix"
	"yalix.dev/yalix/builtins"
	"yalix.dev/yalix/eval"
	"yalix.dev/yalix/reader"
)

// config mirrors yalixrc.yaml (§ ambient configuration): values there
// are defaults, overridden by the matching CLI flag when given.
type config struct {
	PrintLength int    `yaml:"print_length"`
	Verbose     bool   `yaml:"verbose"`
	Profile     string `yaml:"profile"`
}

var cli struct {
	Config      string   `help:"Path to a yalixrc.yaml config file." default:"yalixrc.yaml"`
	PrintLength int      `help:"Truncate list printing after this many elements (0 keeps the config's print_length, default 100)."`
	Verbose     bool     `help:"Enable debug-level logging." short:"v"`
	Profile     string   `help:"Enable profiling: cpu, mem, or empty to disable." enum:"cpu,mem," default:""`
	Files       []string `arg:"" optional:"" help:"Yalix source files to evaluate; omit to start a REPL."`
}

func main() {
	kong.Parse(&cli, kong.Description("The Yalix interpreter."))

	cfg := loadConfig(cli.Config)
	if cli.PrintLength != 0 {
		cfg.PrintLength = cli.PrintLength
	}
	if cli.Verbose {
		cfg.Verbose = true
	}
	if cli.Profile != "" {
		cfg.Profile = cli.Profile
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if stop := startProfile(cfg.Profile); stop != nil {
		defer stop.Stop()
	}

	env := eval.NewEnvironment()
	env.Logger = logger
	builtins.Register(env)
	eval.SetPrintLength(env, cfg.PrintLength)

	sources, err := yalix.DefaultLibrarySources()
	if err != nil {
		logger.Error("failed to read embedded core library", "error", err)
		os.Exit(1)
	}
	if err := eval.Bootstrap(env, sources); err != nil {
		logger.Error("failed to bootstrap core library", "error", err)
		os.Exit(1)
	}

	if len(cli.Files) == 0 {
		repl(env, logger)
		return
	}
	for _, path := range cli.Files {
		if err := runFile(env, path); err != nil {
			logger.Error("evaluation failed", "file", path, "error", err)
			os.Exit(1)
		}
	}
}

func loadConfig(path string) config {
	cfg := config{PrintLength: 100}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "yalix: ignoring malformed %s: %v\n", path, err)
	}
	return cfg
}

func startProfile(kind string) interface{ Stop() } {
	switch kind {
	case "cpu":
		return profile.Start(profile.CPUProfile)
	case "mem":
		return profile.Start(profile.MemProfile)
	default:
		return nil
	}
}

func runFile(env *eval.Environment, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return evalAndPrint(env, path, string(data), os.Stdout)
}

func evalAndPrint(env *eval.Environment, name, src string, out *os.File) error {
	rd := eval.NewParser(name, src)
	for {
		node, err := rd.ReadForm()
		if err != nil {
			if reader.IsEOF(err) {
				return nil
			}
			return err
		}
		val, err := node.Compute(env, nil)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, eval.Repr(env, val))
	}
}

func repl(env *eval.Environment, logger *slog.Logger) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("yalix> ")
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			fmt.Print("yalix> ")
			continue
		}
		if err := evalAndPrint(env, "<repl>", line, os.Stdout); err != nil {
			logger.Error("error", "err", err)
		}
		fmt.Print("yalix> ")
	}
}
