// Command minpress reads press puzzles, one per line, and prints the minimum
// number of presses for each line followed by the total.
//
// Usage:
//
//	minpress [-input task.txt] [-workers N] [-steps N] [-timeout D]
//	         [-enum K] [-bound share|peak] [-format text|json]
//
// Use -input - to read from stdin. glog flags (-v, -logtostderr, ...) are
// available too; -v=1 logs one line per instance.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/golang/glog"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/katalvlaran/minpress/batch"
	"github.com/katalvlaran/minpress/presses"
	"github.com/katalvlaran/minpress/puzzle"
)

var (
	inputFlag   = flag.String("input", "task.txt", "puzzle file, or - for stdin")
	workersFlag = flag.Int("workers", batch.DefaultOptions().Workers, "concurrent solver goroutines")
	stepsFlag   = flag.Int64("steps", 0, "search node budget per line (0 = unlimited)")
	timeoutFlag = flag.Duration("timeout", 0, "wall-clock budget per line (0 = unlimited)")
	enumFlag    = flag.Int("enum", presses.DefaultEnumerationBudget, "max free columns solved by enumeration")
	boundFlag   = flag.String("bound", "share", "branch-and-bound lower bound: share or peak")
	formatFlag  = flag.String("format", "text", "output format: text or json")
)

// config is the validated flag set.
type config struct {
	workers int
	format  string
	solver  presses.Options
}

func parseConfig() (config, error) {
	cfg := config{workers: *workersFlag, format: *formatFlag, solver: presses.DefaultOptions()}
	if cfg.workers < 1 {
		return config{}, fmt.Errorf("-workers must be >= 1, got %d", cfg.workers)
	}
	if *stepsFlag < 0 {
		return config{}, fmt.Errorf("-steps must be >= 0, got %d", *stepsFlag)
	}
	if *timeoutFlag < 0 {
		return config{}, fmt.Errorf("-timeout must be >= 0, got %s", *timeoutFlag)
	}
	if *enumFlag < 0 || *enumFlag > presses.MaxEnumerationBudget {
		return config{}, fmt.Errorf("-enum must be in [0, %d], got %d", presses.MaxEnumerationBudget, *enumFlag)
	}
	cfg.solver.StepLimit = *stepsFlag
	cfg.solver.TimeLimit = *timeoutFlag
	cfg.solver.EnumerationBudget = *enumFlag

	switch *boundFlag {
	case "share":
		cfg.solver.Bound = presses.ShareBound
	case "peak":
		cfg.solver.Bound = presses.PeakBound
	default:
		return config{}, fmt.Errorf("-bound must be share or peak, got %q", *boundFlag)
	}
	switch cfg.format {
	case "text", "json":
	default:
		return config{}, fmt.Errorf("-format must be text or json, got %q", cfg.format)
	}

	return cfg, nil
}

// run parses r, solves every line and writes the report to w.
func run(ctx context.Context, r io.Reader, w io.Writer, cfg config) error {
	lines, err := puzzle.ParseReader(r)
	if err != nil {
		return err
	}

	start := time.Now()
	outcomes := batch.Run(ctx, lines, batch.Options{
		Workers: cfg.workers,
		Solver:  []presses.Option{presses.WithOptions(cfg.solver)},
	})
	summary := batch.Summarize(outcomes)
	log.V(1).Infof("solved %d lines in %s", len(outcomes), time.Since(start))

	if cfg.format == "json" {
		return writeJSON(w, outcomes, summary)
	}

	return writeText(w, outcomes, summary)
}

func writeText(w io.Writer, outcomes []batch.Outcome, summary batch.Summary) error {
	for _, oc := range outcomes {
		if _, err := fmt.Fprintf(w, "Line %d: %s\n", oc.Number, describe(oc)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nTotal: %d\n", summary.Total)

	return err
}

// describe renders one outcome in the line format of the text report.
func describe(oc batch.Outcome) string {
	switch {
	case oc.Err != nil && puzzle.IsParseError(oc.Err):
		return "parse error: " + oc.Err.Error()
	case oc.Err != nil:
		return "error: " + oc.Err.Error()
	case oc.Result.Status == presses.Optimal:
		return fmt.Sprint(oc.Result.Sum)
	case oc.Result.Status == presses.Infeasible:
		return "No solution found"
	case oc.Result.Found:
		return fmt.Sprintf("undetermined, best known %d", oc.Result.Sum)
	default:
		return "undetermined"
	}
}

// report builds the JSON document as a structpb.Struct.
func report(outcomes []batch.Outcome, summary batch.Summary) (*structpb.Struct, error) {
	lines := make([]any, 0, len(outcomes))
	for _, oc := range outcomes {
		entry := map[string]any{"line": oc.Number}
		if oc.Err != nil {
			entry["error"] = oc.Err.Error()
		} else {
			entry["status"] = oc.Result.Status.String()
			entry["strategy"] = oc.Result.Strategy.String()
			entry["steps"] = oc.Result.Steps
			if oc.Result.Found {
				entry["sum"] = oc.Result.Sum
				entry["presses"] = intsToAny(oc.Result.Presses)
			}
		}
		lines = append(lines, entry)
	}

	return structpb.NewStruct(map[string]any{
		"lines":        lines,
		"total":        summary.Total,
		"optimal":      summary.Optimal,
		"infeasible":   intsToAny(summary.Infeasible),
		"undetermined": intsToAny(summary.Undetermined),
		"failed":       intsToAny(summary.Failed),
	})
}

func intsToAny(v []int) []any {
	out := make([]any, len(v))
	for i, x := range v {
		out[i] = x
	}

	return out
}

func writeJSON(w io.Writer, outcomes []batch.Outcome, summary batch.Summary) error {
	doc, err := report(outcomes, summary)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	_, err = w.Write(append(b, '\n'))

	return err
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	return os.Open(path)
}

// execute runs the command for the parsed flags and writes the report to w.
// Deferred cleanup lives here so main can exit without skipping it.
func execute(ctx context.Context, w io.Writer) error {
	cfg, err := parseConfig()
	if err != nil {
		flag.Usage()

		return err
	}
	in, err := openInput(*inputFlag)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	return run(ctx, in, w, cfg)
}

func main() {
	flag.Parse()
	// log.Exitf flushes glog before exiting.
	if err := execute(context.Background(), os.Stdout); err != nil {
		log.Exitf("minpress: %v", err)
	}
	log.Flush()
}
