package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"github.com/Dzonas/befunge93/engine"
	"github.com/Dzonas/befunge93/ioport"
	"github.com/Dzonas/befunge93/manifest"
)

func main() {
	var (
		program     = flag.String("program", "", "Path to Befunge93 program file (- for stdin)")
		limit       = flag.Int("limit", 0, "Maximum number of steps (0 = unbounded)")
		stdin       = flag.String("stdin", "", "Program input for & and ~")
		configDir   = flag.String("config", ".", "Directory containing befunge.toml")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging to stderr")
	)
	flag.Parse()

	if *program == "" {
		fmt.Fprintln(os.Stderr, "Usage: run -program <file.bf> [-limit n] [-stdin text]")
		fmt.Fprintln(os.Stderr, "       run -program <file.bf> -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "       run -program -  (read program from stdin)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			engine.SetLogger(logger)
			defer logger.Sync()
		}
	}

	cfg, err := manifest.Load(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *limit == 0 {
		*limit = cfg.Run.StepLimit
	}
	if *stdin == "" {
		*stdin = cfg.Run.Stdin
	}

	if *interactive {
		if err := runInteractive(*program, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*program, *stdin, *limit); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func readProgram(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}

func run(path, stdin string, limit int) error {
	text, err := readProgram(path)
	if err != nil {
		return err
	}

	// ctrl+c cancels the run between steps
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var input io.Reader = os.Stdin
	if stdin != "" || path == "-" {
		// stdin is already consumed by the program text in the - case
		input = strings.NewReader(stdin)
	}

	eng := engine.New(ioport.NewStreamPort(input, os.Stdout))
	if err := eng.Load(text); err != nil {
		return err
	}

	outcome := eng.Run(ctx, limit)
	switch outcome.Status {
	case engine.RunCompleted:
		return nil
	case engine.RunLimitReached:
		return fmt.Errorf("step limit of %d reached without termination", outcome.Steps)
	case engine.RunCanceled:
		return fmt.Errorf("canceled after %d steps", outcome.Steps)
	case engine.RunFaulted:
		return outcome.Err
	}
	return nil
}
