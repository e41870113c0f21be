// Package main is the entry point for zemacscore, a line-oriented driver
// over a single core.Core.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/copyleftdev/zemacs/internal/config"
	"github.com/copyleftdev/zemacs/internal/config/loader"
	"github.com/copyleftdev/zemacs/internal/core"
	"github.com/copyleftdev/zemacs/internal/introspect"
	"github.com/copyleftdev/zemacs/internal/zlog"
)

var (
	version = "dev"
)

type options struct {
	ConfigPath string
	FilePath   string
	LogLevel   string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()
	log := zlog.New(zlog.ParseLevel(opts.LogLevel), os.Stderr)

	settings := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := loader.FromTOML(opts.ConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
			return 1
		}
		settings = loaded
	}

	c := core.New(settings)
	log.Info("core initialized: preset=%s max_undo=%d", settings.SyntaxPreset, settings.MaxUndoSteps)

	if opts.FilePath != "" {
		content, err := os.ReadFile(opts.FilePath)
		if err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: failed to read %s: %v\n", opts.FilePath, err)
			return 1
		}
		if err == nil {
			if ierr := c.Insert(0, string(content)); ierr != nil {
				fmt.Fprintf(os.Stderr, "Error: failed to load buffer: %v\n", ierr)
				return 1
			}
		}
	}

	if err := runCommandLoop(c, os.Stdin, os.Stdout, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.FilePath != "" {
		if err := os.WriteFile(opts.FilePath, c.Bytes(), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to write %s: %v\n", opts.FilePath, err)
			return 1
		}
	}

	return 0
}

// runCommandLoop reads one command per line from in and writes replies to
// out until EOF or a "quit" command. Recognized commands:
//
//	insert POS TEXT
//	delete POS N
//	undo
//	redo
//	begin-group
//	end-group
//	scan POS
//	dump
//	quit
func runCommandLoop(c *core.Core, in io.Reader, out io.Writer, log *zlog.Logger) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.SplitN(line, " ", 3)
		cmd := fields[0]

		switch cmd {
		case "quit":
			return nil

		case "insert":
			if len(fields) < 3 {
				fmt.Fprintln(out, "error: insert requires POS and TEXT")
				continue
			}
			pos, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Fprintf(out, "error: invalid position %q\n", fields[1])
				continue
			}
			if err := c.Insert(pos, fields[2]); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			fmt.Fprintln(out, "ok")

		case "delete":
			if len(fields) < 3 {
				fmt.Fprintln(out, "error: delete requires POS and N")
				continue
			}
			pos, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Fprintf(out, "error: invalid position %q\n", fields[1])
				continue
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				fmt.Fprintf(out, "error: invalid count %q\n", fields[2])
				continue
			}
			if err := c.Delete(pos, n); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			fmt.Fprintln(out, "ok")

		case "undo":
			fmt.Fprintln(out, c.Undo())

		case "redo":
			fmt.Fprintln(out, c.Redo())

		case "begin-group":
			c.BeginGroup()
			fmt.Fprintln(out, "ok")

		case "end-group":
			c.EndGroup()
			fmt.Fprintln(out, "ok")

		case "scan":
			if len(fields) < 2 {
				fmt.Fprintln(out, "error: scan requires POS")
				continue
			}
			pos, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Fprintf(out, "error: invalid position %q\n", fields[1])
				continue
			}
			got, err := c.ScanSexp(pos)
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			fmt.Fprintln(out, got)

		case "dump":
			data, err := introspect.Dump(c)
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			fmt.Fprintln(out, string(data))

		default:
			log.Warn("unrecognized command: %s", cmd)
			fmt.Fprintf(out, "error: unrecognized command %q\n", cmd)
		}
	}
	return scanner.Err()
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to a TOML configuration file")
	flag.StringVar(&opts.FilePath, "file", "", "Path to a file to load into the buffer and write back on exit")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "zemacscore - line-oriented driver for the zemacs editor core\n\n")
		fmt.Fprintf(os.Stderr, "Usage: zemacscore [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("zemacscore %s\n", version)
		os.Exit(0)
	}

	return opts
}
