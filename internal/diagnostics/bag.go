package diagnostics

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// DiagnosticBag collects diagnostics during a run. A run stops at its first
// error, so the bag normally holds at most one error, but warnings and info
// messages may accompany it.
type DiagnosticBag struct {
	diagnostics []*Diagnostic
	filepath    string
	mu          sync.Mutex
	errorCount  int
}

// NewDiagnosticBag creates a new diagnostic bag for a file
func NewDiagnosticBag(filepath string) *DiagnosticBag {
	return &DiagnosticBag{
		diagnostics: make([]*Diagnostic, 0),
		filepath:    filepath,
	}
}

// Add adds a diagnostic to the bag
func (db *DiagnosticBag) Add(diag *Diagnostic) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.diagnostics = append(db.diagnostics, diag)

	if db.filepath == "" && diag.FilePath != "" {
		db.filepath = diag.FilePath
	}

	if diag.Severity == Error {
		db.errorCount++
	}
}

// HasErrors returns true if there are any errors
func (db *DiagnosticBag) HasErrors() bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount > 0
}

// ErrorCount returns the number of errors
func (db *DiagnosticBag) ErrorCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount
}

// Diagnostics returns all diagnostics
func (db *DiagnosticBag) Diagnostics() []*Diagnostic {
	db.mu.Lock()
	defer db.mu.Unlock()
	out := make([]*Diagnostic, len(db.diagnostics))
	copy(out, db.diagnostics)
	return out
}

// EmitAllToWriter renders every collected diagnostic to w, reading source
// lines from disk when needed.
func (db *DiagnosticBag) EmitAllToWriter(w io.Writer) {
	db.EmitAllToWriterWithCache(w, nil)
}

// EmitAllToWriterWithCache renders every collected diagnostic to w. When
// sourceLines is non-nil it is used as the content of the bag's file, which
// lets inline and wasm input render without touching the filesystem.
func (db *DiagnosticBag) EmitAllToWriterWithCache(w io.Writer, sourceLines []string) {
	emitter := NewEmitterWithWriter(w)

	db.mu.Lock()
	diagnostics := make([]*Diagnostic, len(db.diagnostics))
	copy(diagnostics, db.diagnostics)
	filepath := db.filepath
	db.mu.Unlock()

	if sourceLines != nil {
		emitter.SetSourceLines(filepath, sourceLines)
	}

	for _, diag := range diagnostics {
		emitter.Emit(filepath, diag)
	}
}

// EmitAllToString renders every collected diagnostic to a string.
func (db *DiagnosticBag) EmitAllToString(sourceLines []string) string {
	var buf bytes.Buffer
	db.EmitAllToWriterWithCache(&buf, sourceLines)

	db.mu.Lock()
	errorCount := db.errorCount
	db.mu.Unlock()

	if errorCount > 0 {
		fmt.Fprintf(&buf, "\nRun failed with %d error(s)\n", errorCount)
	}

	return buf.String()
}

// Clear removes all diagnostics
func (db *DiagnosticBag) Clear() {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.diagnostics = make([]*Diagnostic, 0)
	db.errorCount = 0
}
