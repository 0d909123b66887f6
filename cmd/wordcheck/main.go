// Copyright 2025 The WordCheck Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the WordCheck spell checker: a CLI, a msgpack IPC
server and an MCP tool server over one dictionary session.

WordCheck loads a plain text word list into a prefix tree, flags every word
of a text that the tree does not contain and suggests dictionary words that
share the unknown word's leading letters.

# Usage

Check a file and print a report (exit status 1 when mistakes are found):

	wordcheck -dict words.txt -check essay.txt

Check lines interactively:

	wordcheck -dict words.txt -c

Serve msgpack requests on stdin/stdout (the default mode):

	wordcheck -dict words.txt

Serve the spellcheck and suggest tools to an MCP client over stdio:

	wordcheck -dict words.txt -mcp

# Configuration

Settings are read from a TOML file, created with defaults if missing:

	[dict]
	path = "words.txt"

	[suggest]
	limit = 5

	[server]
	max_text_bytes = 1048576
	max_word_len = 64
	max_limit = 100
	allow_refresh_path = false

	[allow]
	words = ["golang"]
	prefixes = ["http"]

WORDCHECK_DICT, WORDCHECK_LIMIT and WORDCHECK_CONFIG override the file, and
may also be set in a .env file. Flags override everything.

# Command Line Flags

	-dict string
	    Word list to load
	-config string
	    Config file path
	-env string
	    Optional .env file (default ".env")
	-check string
	    Check a file and exit
	-c  Interactive CLI mode
	-mcp
	    Serve MCP tools over stdio
	-limit int
	    Suggestions per mistake
	-no-color
	    Plain report output
	-d  Debug logging
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordcheck/internal/cli"
	"github.com/bastiangx/wordcheck/internal/logger"
	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/config"
	"github.com/bastiangx/wordcheck/pkg/server"
	"github.com/bastiangx/wordcheck/pkg/session"
	"github.com/bastiangx/wordcheck/pkg/toolserver"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const Version = "0.3.0"

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, session and the selected front-end together.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "", "Word list to load (overrides config)")
	configPath := flag.String("config", os.Getenv(config.EnvConfig), "Config file path")
	envFile := flag.String("env", ".env", "Optional .env file with WORDCHECK_* overrides")
	checkPath := flag.String("check", "", "Check a file, print the report and exit")
	cliMode := flag.Bool("c", false, "Check lines typed on stdin")
	mcpMode := flag.Bool("mcp", false, "Serve MCP tools over stdio")
	limit := flag.Int("limit", 0, "Suggestions per mistake (overrides config)")
	noColor := flag.Bool("no-color", false, "Disable colored reports")
	debugMode := flag.Bool("d", false, "Toggle debug mode")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.Setup(*debugMode)

	cfg, usedConfig, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.ApplyEnv(*envFile)
	if *dictPath != "" {
		cfg.Dict.Path = *dictPath
	}
	if *limit > 0 {
		cfg.Suggest.Limit = *limit
	}
	log.Debug("Config ready", "path", utils.GetAbsolutePath(usedConfig), "dict", cfg.Dict.Path, "limit", cfg.Suggest.Limit)

	resolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}
	source := resolver.ResolveDictPath(cfg.Dict.Path)

	sess, err := session.Open(session.Options{
		Source:        source,
		Limit:         cfg.Suggest.Limit,
		AllowWords:    cfg.Allow.Words,
		AllowPrefixes: cfg.Allow.Prefixes,
	})
	if err != nil {
		log.Fatalf("Failed to build dictionary from %s: %v", source, err)
	}
	log.Debugf("Dictionary ready: %d words", sess.Stats()["totalWords"])

	switch {
	case *checkPath != "":
		err := cli.CheckFile(sess, *checkPath, os.Stdout, !*noColor, cfg.Server.MaxTextBytes)
		if errors.Is(err, cli.ErrMistakesFound) {
			os.Exit(1)
		}
		if err != nil {
			log.Fatalf("Check failed: %v", err)
		}

	case *cliMode:
		handler := cli.NewInputHandler(sess, os.Stdin, os.Stdout, !*noColor, cfg.Server.MaxTextBytes)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}

	case *mcpMode:
		tools := toolserver.New(sess, cfg.Server)
		mcpServer := toolserver.NewMCPServer("WordCheck", Version, tools)
		log.Debug("Serving MCP tools on stdio")
		if err := toolserver.Serve(mcpServer); err != nil {
			log.Fatalf("MCP server error: %v", err)
		}

	default:
		log.Debug("spawning IPC")
		srv := server.NewServer(sess, cfg, os.Stdin, os.Stdout)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}
}

// printVersion shows the styled version banner on stderr.
func printVersion() {
	banner := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ WordCheck ] dictionary spell checking")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
}
