package context

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"slate/internal/interp"
)

// Helper function to create a temporary test file
func createTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

func TestRunSimpleProgram(t *testing.T) {
	value, err := Run("let x = 5; x + 1;")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if value.Kind != interp.IntValue || value.Int != 6 {
		t.Errorf("expected 6, got %s", value)
	}
}

// Re-running the same source always yields the same result: every run gets
// a fresh environment, on a shared context too.
func TestRunIsIdempotent(t *testing.T) {
	ctx := New(nil)

	for i := 0; i < 3; i++ {
		value, err := ctx.Run("prog.sl", "let x = 5; let x = x + 1; x;")
		if err != nil {
			t.Fatalf("run %d failed: %v", i, err)
		}
		if value.Int != 6 {
			t.Errorf("run %d: expected 6, got %s", i, value)
		}
	}
}

func TestRunLeavesPhaseOutputsOnContext(t *testing.T) {
	ctx := New(nil)

	if _, err := ctx.Run("prog.sl", "let x = 2; x;"); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(ctx.Tokens) == 0 {
		t.Error("expected tokens on context after run")
	}
	if ctx.Program == nil || len(ctx.Program.Statements) != 2 {
		t.Errorf("expected 2 parsed statements, got %v", ctx.Program)
	}
	if ctx.Env == nil || !ctx.Env.Has("x") {
		t.Error("expected environment with x bound")
	}
}

func TestRunFile(t *testing.T) {
	path := createTestFile(t, "main.sl", "let answer = 6 * 7; answer;")

	ctx := New(nil)
	value, err := ctx.RunFile(path)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if value.Int != 42 {
		t.Errorf("expected 42, got %s", value)
	}
	if ctx.FileName != path {
		t.Errorf("expected file name %q, got %q", path, ctx.FileName)
	}
}

func TestRunFileMissing(t *testing.T) {
	ctx := New(nil)
	if _, err := ctx.RunFile(filepath.Join(t.TempDir(), "missing.sl")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestFailedRunRecordsDiagnostic(t *testing.T) {
	ctx := New(nil)

	_, err := ctx.Run("prog.sl", "let x = 5 $;")
	if err == nil {
		t.Fatal("expected a lex error")
	}
	if !ctx.HasErrors() {
		t.Error("expected the diagnostics bag to hold the error")
	}
	if ctx.Diagnostics.ErrorCount() != 1 {
		t.Errorf("expected exactly 1 error, got %d", ctx.Diagnostics.ErrorCount())
	}
}

func TestEmitDiagnosticsRendersSourceLine(t *testing.T) {
	ctx := New(nil)
	_, err := ctx.Run("prog.sl", "let x = 5 $;")
	if err == nil {
		t.Fatal("expected a lex error")
	}

	var buf bytes.Buffer
	ctx.EmitDiagnostics(&buf)
	out := buf.String()

	if !strings.Contains(out, "L0001") {
		t.Errorf("expected code L0001 in output:\n%s", out)
	}
	if !strings.Contains(out, "prog.sl:1:11") {
		t.Errorf("expected position prog.sl:1:11 in output:\n%s", out)
	}
	if !strings.Contains(out, "let x = 5 $;") {
		t.Errorf("expected offending source line in output:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("expected caret underline in output:\n%s", out)
	}
}

func TestSuccessfulRunHasNoDiagnostics(t *testing.T) {
	ctx := New(nil)
	if _, err := ctx.Run("prog.sl", "1;"); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if ctx.HasErrors() {
		t.Error("expected no diagnostics after a clean run")
	}
}
