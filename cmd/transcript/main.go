// Command transcript normalizes chat transcripts.
//
// It reads a conversation in JSON or YAML, where message content and tool
// calls may be bare values or lists, and writes the canonical list form:
//
//	transcript -in chat.yaml -to json -coalesce -fingerprint
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"github.com/Jarekkkkk/rig/internal/transcript"
)

func main() {
	var (
		inPath      = flag.String("in", "-", "Input file (- for stdin)")
		from        = flag.String("from", "", "Input format: json or yaml (default: from extension, else json)")
		to          = flag.String("to", "json", "Output format: json or yaml")
		coalesce    = flag.Bool("coalesce", false, "Fold adjacent messages from the same speaker")
		fingerprint = flag.Bool("fingerprint", false, "Print the transcript fingerprint to stderr")
		noValidate  = flag.Bool("no-validate", false, "Skip message validation")
		dump        = flag.Bool("dump", false, "Dump the normalized (post-coalesce) transcript to stderr")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	transcript.SetLogger(logger)

	cfg := transcript.DefaultConfig()
	cfg.Coalesce = *coalesce
	cfg.Fingerprint = *fingerprint
	cfg.Validate = !*noValidate

	if err := run(cfg, *inPath, *from, *to, *dump); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return zcfg.Build()
}

func run(cfg transcript.Config, inPath, from, to string, dump bool) error {
	var (
		in  io.Reader = os.Stdin
		err error
	)
	if inPath != "-" {
		f, err := os.Open(inPath)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	if from != "" {
		if cfg.Input, err = transcript.ParseFormat(from); err != nil {
			return err
		}
	} else if inPath != "-" {
		if format, err := transcript.FormatFromPath(inPath); err == nil {
			cfg.Input = format
		}
	}
	if cfg.Output, err = transcript.ParseFormat(to); err != nil {
		return err
	}

	res, err := transcript.Normalize(cfg, in, os.Stdout)
	if err != nil {
		return err
	}

	if dump {
		spew.Fdump(os.Stderr, res.Transcript.Slice())
	}
	if res.Fingerprint != "" {
		fmt.Fprintf(os.Stderr, "fingerprint: %s\n", res.Fingerprint)
	}
	if res.Folded > 0 {
		fmt.Fprintf(os.Stderr, "folded %d of %d messages\n", res.Folded, res.Read)
	}
	return nil
}
