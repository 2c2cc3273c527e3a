package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/katalvlaran/minpress/presses"
)

const input = `[.#] (0,1) (1,2) {2,3,1}
(0) {3,5}

(0) junk {1}
(0) (0) {4}
`

func testConfig(format string) config {
	return config{workers: 2, format: format, solver: presses.DefaultOptions()}
}

func TestRun_Text(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), strings.NewReader(input), &out, testConfig("text")))

	got := strings.Split(out.String(), "\n")
	require.Equal(t, "Line 1: 3", got[0])
	require.Equal(t, "Line 2: No solution found", got[1])
	require.True(t, strings.HasPrefix(got[2], "Line 3: parse error: "), got[2])
	require.Equal(t, "Line 4: 4", got[3])
	require.Equal(t, "", got[4])
	require.Equal(t, "Total: 7", got[5])
}

func TestRun_TextUndetermined(t *testing.T) {
	cfg := testConfig("text")
	cfg.solver.StepLimit = 1
	cfg.solver.SeedUpperBound = false

	var out bytes.Buffer
	in := "(0) (0) (0) (0) (0) (0) (0) (0) {9}\n(5) {1}\n"
	require.NoError(t, run(context.Background(), strings.NewReader(in), &out, cfg))
	require.True(t, strings.HasPrefix(out.String(), "Line 1: undetermined\nLine 2: error: "), out.String())
	require.True(t, strings.HasSuffix(out.String(), "\nTotal: 0\n"), out.String())
}

func TestRun_JSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), strings.NewReader("(0) (0) {4}\n(0) {3,5}\n"), &out, testConfig("json")))

	got := &structpb.Struct{}
	require.NoError(t, protojson.Unmarshal(out.Bytes(), got))
	// Node counts depend on pruning details; drop them before comparing.
	for _, v := range got.Fields["lines"].GetListValue().GetValues() {
		delete(v.GetStructValue().GetFields(), "steps")
	}

	want, err := structpb.NewStruct(map[string]any{
		"lines": []any{
			map[string]any{
				"line":     1,
				"status":   "optimal",
				"strategy": "enumerate",
				"sum":      4,
				"presses":  []any{4, 0},
			},
			map[string]any{
				"line":     2,
				"status":   "infeasible",
				"strategy": "inconsistent",
			},
		},
		"total":        4,
		"optimal":      1,
		"infeasible":   []any{2},
		"undetermined": []any{},
		"failed":       []any{},
	})
	require.NoError(t, err)
	if diff := cmp.Diff(want, got, protocmp.Transform()); diff != "" {
		t.Errorf("json report mismatch (-want +got):\n%s", diff)
	}
}

// setFlag sets a command-line flag for the duration of the test.
func setFlag(t *testing.T, name, value string) {
	t.Helper()
	old := flag.Lookup(name).Value.String()
	require.NoError(t, flag.Set(name, value))
	t.Cleanup(func() { require.NoError(t, flag.Set(name, old)) })
}

func TestExecute_ReadsInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "task.txt")
	require.NoError(t, os.WriteFile(path, []byte("(0,1) (1,2) {2,3,1}\n"), 0o600))
	setFlag(t, "input", path)

	var out bytes.Buffer
	require.NoError(t, execute(context.Background(), &out))
	require.Equal(t, "Line 1: 3\n\nTotal: 3\n", out.String())
}

func TestExecute_Errors(t *testing.T) {
	t.Run("bad flag", func(t *testing.T) {
		setFlag(t, "bound", "bogus")
		err := execute(context.Background(), &bytes.Buffer{})
		require.ErrorContains(t, err, "-bound must be share or peak")
	})
	t.Run("missing input", func(t *testing.T) {
		setFlag(t, "input", filepath.Join(t.TempDir(), "missing.txt"))
		err := execute(context.Background(), &bytes.Buffer{})
		require.ErrorIs(t, err, os.ErrNotExist)
		require.ErrorContains(t, err, "open input")
	})
}
