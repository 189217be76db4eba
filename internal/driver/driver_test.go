package driver

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nvandessel/snakewalk/internal/board"
	"github.com/nvandessel/snakewalk/internal/logging"
	"github.com/nvandessel/snakewalk/internal/rotation"
	"github.com/nvandessel/snakewalk/internal/store"
	"github.com/nvandessel/snakewalk/internal/walk"
)

func newTestDriver(t *testing.T) (*Driver, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	log := logging.NewLogger("info", io.Discard)
	return New(rotation.DefaultParams(), &out, log), &out
}

func defaultOpts() Options {
	return Options{CapFactor: 35, UseCap: true, Workers: 1, Ceiling: 200, ProbeBlocks: 200}
}

func TestRunBoardsReportsPerBoard(t *testing.T) {
	d, out := newTestDriver(t)

	sum, err := d.RunBoards(context.Background(), board.ParseList([]string{"2x2", "10x10", "11x15"}), defaultOpts())
	if err != nil {
		t.Fatalf("RunBoards: %v", err)
	}
	if sum.Checked != 3 || sum.Fails != 1 {
		t.Errorf("summary = %+v, want checked=3 fails=1", sum)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	want := []string{
		"[OK] 2x2: steps=3 (0.750·S), S=4 cap=140",
		"[OK] 10x10: steps=288 (2.880·S), S=100 cap=3500",
		"[FAIL] 11x15: steps=5776 (35.006·S), S=165 cap=5775",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines:\n%s", len(lines), out.String())
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

func TestRunBoardsCaplessLabel(t *testing.T) {
	d, out := newTestDriver(t)

	opts := defaultOpts()
	opts.UseCap = false
	if _, err := d.RunBoards(context.Background(), []board.Board{{A: 11, B: 15}}, opts); err != nil {
		t.Fatalf("RunBoards: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "[OK] 11x15: steps=6311 (38.248·S), S=165 cap=off" {
		t.Errorf("capless line = %q", got)
	}
}

func TestRunBoardsJSON(t *testing.T) {
	d, out := newTestDriver(t)
	d.JSON = true

	if _, err := d.RunBoards(context.Background(), []board.Board{{A: 2, B: 2}, {A: 3, B: 3}}, defaultOpts()); err != nil {
		t.Fatalf("RunBoards: %v", err)
	}

	scanner := bufio.NewScanner(out)
	var results []walk.Result
	for scanner.Scan() {
		var r walk.Result
		if err := json.Unmarshal(scanner.Bytes(), &r); err != nil {
			t.Fatalf("bad JSON line %q: %v", scanner.Text(), err)
		}
		results = append(results, r)
	}
	if len(results) != 2 {
		t.Fatalf("got %d JSON results, want 2", len(results))
	}
	if results[0].Steps != 3 || results[1].Steps != 19 {
		t.Errorf("steps = %d, %d; want 3, 19", results[0].Steps, results[1].Steps)
	}
}

// TestRunSweepSerial sweeps all 1086 boards below 200 cells. Exactly one
// board in that range outruns the default cap.
func TestRunSweepSerial(t *testing.T) {
	d, out := newTestDriver(t)

	sum, err := d.RunSweep(context.Background(), defaultOpts())
	if err != nil {
		t.Fatalf("RunSweep: %v", err)
	}
	if sum.Checked != 1086 || sum.Fails != 1 {
		t.Errorf("summary = %+v, want checked=1086 fails=1", sum)
	}
	if !strings.Contains(out.String(), "[FAIL] 11x15 steps=5776 (35.006·S) cap=5775") {
		t.Errorf("missing failure line:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "[DONE] checked=1086 fails=1") {
		t.Errorf("missing done line:\n%s", out.String())
	}
}

func TestRunSweepParallelMatchesSerial(t *testing.T) {
	serial, _ := newTestDriver(t)
	serialSum, err := serial.RunSweep(context.Background(), defaultOpts())
	if err != nil {
		t.Fatalf("serial sweep: %v", err)
	}

	parallel, _ := newTestDriver(t)
	opts := defaultOpts()
	opts.Workers = 4
	parallelSum, err := parallel.RunSweep(context.Background(), opts)
	if err != nil {
		t.Fatalf("parallel sweep: %v", err)
	}
	if parallelSum != serialSum {
		t.Errorf("parallel summary %+v != serial %+v", parallelSum, serialSum)
	}
}

func TestRunSweepValidation(t *testing.T) {
	d, _ := newTestDriver(t)
	opts := defaultOpts()
	opts.Workers = 0
	if _, err := d.RunSweep(context.Background(), opts); err == nil {
		t.Error("accepted zero workers")
	}
	opts = defaultOpts()
	opts.Ceiling = 1
	if _, err := d.RunSweep(context.Background(), opts); err == nil {
		t.Error("accepted ceiling below 2")
	}
}

func TestRunSweepCancellation(t *testing.T) {
	d, _ := newTestDriver(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := d.RunSweep(ctx, defaultOpts()); err == nil {
		t.Error("cancelled sweep returned nil error")
	}
}

func TestRunSampleDeterministic(t *testing.T) {
	opts := defaultOpts()
	opts.Samples = 300
	opts.Seed = 42
	opts.Ceiling = 2000

	first, _ := newTestDriver(t)
	firstSum, err := first.RunSample(context.Background(), opts)
	if err != nil {
		t.Fatalf("RunSample: %v", err)
	}
	if firstSum.Checked != 300 {
		t.Errorf("checked = %d, want 300", firstSum.Checked)
	}

	second, _ := newTestDriver(t)
	secondSum, err := second.RunSample(context.Background(), opts)
	if err != nil {
		t.Fatalf("RunSample: %v", err)
	}
	if firstSum != secondSum {
		t.Errorf("same seed gave %+v then %+v", firstSum, secondSum)
	}
}

func TestSelfCheckAgreesWithSimulator(t *testing.T) {
	d, out := newTestDriver(t)

	boards := board.ParseList([]string{"1x1", "2x2", "3x3", "5x7", "10x10", "11x15", "37x53"})
	if err := d.SelfCheck(context.Background(), boards, defaultOpts()); err != nil {
		t.Fatalf("SelfCheck: %v", err)
	}
	// 11x15 fails under the cap on both paths, so the line still prints.
	if !strings.Contains(out.String(), "[FAIL] 11x15:") {
		t.Errorf("missing capped board line:\n%s", out.String())
	}
	if got := strings.Count(out.String(), "\n"); got != len(boards) {
		t.Errorf("got %d lines, want %d", got, len(boards))
	}
}

func TestSelfCheckCapless(t *testing.T) {
	d, _ := newTestDriver(t)
	opts := defaultOpts()
	opts.UseCap = false

	if err := d.SelfCheck(context.Background(), board.ParseList([]string{"11x15", "12x34"}), opts); err != nil {
		t.Fatalf("SelfCheck capless: %v", err)
	}
}

func TestRunTheoremOutput(t *testing.T) {
	d, out := newTestDriver(t)

	report := d.RunTheorem(100_000)
	if report.Degenerate {
		t.Fatalf("production constants reported degenerate at B=%d", report.ResonantB)
	}
	if !strings.Contains(out.String(), "[OK] Quick check: for all B < 100000") {
		t.Errorf("missing OK line:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "     Necessary-condition scan only: this is not a proof.\n") {
		t.Errorf("missing disclaimer:\n%s", out.String())
	}
}

func TestPrintProbeOutput(t *testing.T) {
	d, out := newTestDriver(t)

	d.PrintProbe(200)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d probe lines, want 8:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "[probe] ch0: P=1425089352415399680, alpha=0.618034, t=1:31, t=2:19") {
		t.Errorf("unexpected first probe line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "         head t: [1 1 2 1 1 2") {
		t.Errorf("unexpected head line: %q", lines[1])
	}
}

func TestRecordingWritesStore(t *testing.T) {
	d, _ := newTestDriver(t)

	s, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	d.Store = s

	ctx := context.Background()
	sum, err := d.RunBoards(ctx, board.ParseList([]string{"2x2", "11x15"}), defaultOpts())
	if err != nil {
		t.Fatalf("RunBoards: %v", err)
	}

	runs, err := s.ListRuns(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].Mode != "boards" || runs[0].Checked != sum.Checked || runs[0].Fails != sum.Fails {
		t.Errorf("recorded run %+v does not match summary %+v", runs[0], sum)
	}

	fails, err := s.FailedResults(ctx, runs[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(fails) != 1 || fails[0].A != 11 || fails[0].B != 15 {
		t.Errorf("failed results = %+v, want one 11x15 row", fails)
	}
}

func TestFailureLoggerReceivesFailures(t *testing.T) {
	d, _ := newTestDriver(t)

	dir := t.TempDir()
	fl := logging.NewFailureLogger(dir, "debug")
	if fl == nil {
		t.Fatal("failure logger not created")
	}
	defer fl.Close()
	d.Failures = fl

	if _, err := d.RunBoards(context.Background(), []board.Board{{A: 11, B: 15}}, defaultOpts()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "failures.jsonl"))
	if err != nil {
		t.Fatalf("reading failures.jsonl: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &entry); err != nil {
		t.Fatalf("bad JSONL: %v", err)
	}
	if entry["a"] != float64(11) || entry["b"] != float64(15) {
		t.Errorf("unexpected failure entry: %v", entry)
	}
}
