// Command replhm is the read-parse-infer-print loop described in
// spec.md §6, modeled on the orizon-repl command in the pack: a plain
// bufio.Scanner loop over stdin, an optional -eval for one-shot
// scripted use, and -debug for a trace line per evaluated input.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/lirlia/100day_challenge_backend/day100_algorithm_j/ctx"
	"github.com/lirlia/100day_challenge_backend/day100_algorithm_j/inference"
	"github.com/lirlia/100day_challenge_backend/day100_algorithm_j/parser"
)

func main() {
	var (
		debug  = flag.Bool("debug", false, "log a trace line per evaluated input")
		evalIn = flag.String("eval", "", "evaluate one expression and exit, instead of starting the REPL")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Algorithm J type inferencer REPL.\n\n")
		fmt.Fprintf(os.Stderr, "OPTIONS:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *evalIn != "" {
		result, err := evalLine(*evalIn, *debug)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(result)
		return
	}

	if isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Println("Algorithm J type inferencer. Ctrl-D to exit.")
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(">> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		result, err := evalLine(line, *debug)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(result)
	}
}

// evalLine parses and infers one line of input with a fresh context,
// so that printed variable names always restart at 'a regardless of
// what ran before (spec.md §7).
func evalLine(line string, debug bool) (string, error) {
	runID := uuid.New()
	if debug {
		log.Printf("run %s: evaluating %q", runID, line)
	}

	expr, err := parser.Parse(line)
	if err != nil {
		if debug {
			log.Printf("run %s: parse error: %v", runID, err)
		}
		return "", fmt.Errorf("parse error: %w", err)
	}

	c := ctx.New()
	typ, err := inference.Infer(c, expr)
	if err != nil {
		if debug {
			log.Printf("run %s: type error: %v", runID, err)
		}
		return "", fmt.Errorf("type error: %w", err)
	}

	if debug {
		log.Printf("run %s: inferred %s", runID, typ)
	}
	return typ.String(), nil
}
