// Package main provides nidctl, a small CLI for decoding and validating
// Egyptian national ID numbers: inspect a single number, check formats,
// or batch-validate a line-delimited list.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"bitaqa/internal/platform/config"
	"bitaqa/internal/platform/logger"
	"bitaqa/pkg/nationalid"
	str "bitaqa/pkg/string"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var code int
	switch os.Args[1] {
	case "inspect":
		code = runInspect(os.Args[2:], cfg)
	case "validate":
		code = runValidate(os.Args[2:], cfg)
	case "format":
		code = runFormat(os.Args[2:], cfg)
	case "check":
		code = runCheck(os.Args[2:], cfg, log)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "nidctl: unknown command %q\n", os.Args[1])
		usage()
		code = 2
	}
	os.Exit(code)
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: nidctl <command> [flags] [number]

Commands:
  inspect   decode a number and print the labeled breakdown (-json for the record)
  validate  exit 0 if the number is valid, 1 otherwise (-checksum, -quiet)
  format    print a canonical rendering (-style dashed|spaced|bracketed|masked|raw)
  check     batch-validate numbers from -f file or stdin, one per line

Environment:
  NIDCTL_VALIDATE_CHECKSUM  enable the best-effort checksum step by default
  NIDCTL_WORKERS            batch-check concurrency
  NIDCTL_LOG_LEVEL          debug|info|warn|error
`)
}

func parseOpts(cfg config.CLI, checksum bool) []nationalid.Option {
	var opts []nationalid.Option
	if checksum || cfg.ValidateChecksum {
		opts = append(opts, nationalid.WithChecksum())
	}
	return opts
}

func runInspect(args []string, cfg config.CLI) int {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	asJSON := fs.Bool("json", false, "Output the details record as JSON")
	checksum := fs.Bool("checksum", false, "Also validate the best-effort checksum")
	_ = fs.Parse(args)

	raw := strings.TrimSpace(fs.Arg(0))
	if raw == "" {
		fmt.Fprintln(os.Stderr, "nidctl inspect: a number is required")
		return 2
	}

	id, err := nationalid.Parse(raw, parseOpts(cfg, *checksum)...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nidctl inspect: %v\n", err)
		return 1
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(id.Details()); err != nil {
			fmt.Fprintf(os.Stderr, "nidctl inspect: %v\n", err)
			return 1
		}
		return 0
	}

	fmt.Println(id.Detailed())
	return 0
}

func runValidate(args []string, cfg config.CLI) int {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	checksum := fs.Bool("checksum", false, "Also validate the best-effort checksum")
	quiet := fs.Bool("quiet", false, "Suppress output; signal via exit code only")
	_ = fs.Parse(args)

	raw := strings.TrimSpace(fs.Arg(0))
	if raw == "" {
		fmt.Fprintln(os.Stderr, "nidctl validate: a number is required")
		return 2
	}

	if _, err := nationalid.Parse(raw, parseOpts(cfg, *checksum)...); err != nil {
		if !*quiet {
			fmt.Fprintf(os.Stderr, "invalid: %v\n", err)
		}
		return 1
	}
	if !*quiet {
		fmt.Println("valid")
	}
	return 0
}

func runFormat(args []string, cfg config.CLI) int {
	fs := flag.NewFlagSet("format", flag.ExitOnError)
	style := fs.String("style", "dashed", "One of dashed, spaced, bracketed, masked, raw")
	checksum := fs.Bool("checksum", false, "Also validate the best-effort checksum")
	_ = fs.Parse(args)

	raw := strings.TrimSpace(fs.Arg(0))
	if raw == "" {
		fmt.Fprintln(os.Stderr, "nidctl format: a number is required")
		return 2
	}

	id, err := nationalid.Parse(raw, parseOpts(cfg, *checksum)...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nidctl format: %v\n", err)
		return 1
	}

	out, err := render(id, *style)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nidctl format: %v\n", err)
		return 2
	}
	fmt.Println(out)
	return 0
}

func render(id nationalid.Identifier, style string) (string, error) {
	switch style {
	case "dashed":
		return id.Dashed(), nil
	case "spaced":
		return id.Spaced(), nil
	case "bracketed":
		return id.Bracketed(), nil
	case "masked":
		return id.Masked(), nil
	case "raw":
		return id.String(), nil
	default:
		return "", fmt.Errorf("unknown style %q", style)
	}
}

func runCheck(args []string, cfg config.CLI, log *slog.Logger) int {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	file := fs.String("f", "", "Read numbers from this file instead of stdin")
	checksum := fs.Bool("checksum", false, "Also validate the best-effort checksum")
	_ = fs.Parse(args)

	in := io.Reader(os.Stdin)
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "nidctl check: %v\n", err)
			return 2
		}
		defer f.Close()
		in = f
	}

	valid, invalid, err := checkAll(in, parseOpts(cfg, *checksum), cfg.Workers, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nidctl check: %v\n", err)
		return 2
	}

	fmt.Printf("valid: %d\ninvalid: %d\ntotal: %d\n", valid, invalid, valid+invalid)
	if invalid > 0 {
		return 1
	}
	return 0
}

// checkAll validates every non-blank line of in with bounded concurrency.
// Parsing is CPU-trivial per line; the worker pool exists so very large batch
// files still finish promptly when checksum logging is on.
func checkAll(in io.Reader, opts []nationalid.Option, workers int, log *slog.Logger) (valid, invalid int64, err error) {
	scanner := bufio.NewScanner(in)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return 0, 0, scanErr
	}
	str.TrimSlice(lines)

	var validCount, invalidCount atomic.Int64

	var g errgroup.Group
	g.SetLimit(workers)

	for i, raw := range lines {
		if raw == "" {
			continue
		}
		no := i + 1
		raw := raw
		g.Go(func() error {
			if _, ok := nationalid.TryParse(raw, opts...); ok {
				validCount.Add(1)
				return nil
			}
			invalidCount.Add(1)
			log.Debug("rejected number", "line", no, "masked_prefix", maskInput(raw))
			return nil
		})
	}

	if waitErr := g.Wait(); waitErr != nil {
		return 0, 0, waitErr
	}
	return validCount.Load(), invalidCount.Load(), nil
}

// maskInput redacts an arbitrary (possibly malformed) input line for logs.
func maskInput(raw string) string {
	if len(raw) <= 3 {
		return strings.Repeat("*", len(raw))
	}
	return raw[:3] + strings.Repeat("*", len(raw)-3)
}
