package diagnostics

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"slate/internal/source"
)

// SourceCache caches source file contents for error reporting
type SourceCache struct {
	files map[string][]string
}

func NewSourceCache() *SourceCache {
	return &SourceCache{
		files: make(map[string][]string),
	}
}

// SetLines seeds the cache for a file without reading the filesystem.
func (sc *SourceCache) SetLines(filepath string, lines []string) {
	sc.files[filepath] = lines
}

// GetLine retrieves a specific line from a source file
func (sc *SourceCache) GetLine(filepath string, line int) (string, error) {
	if lines, ok := sc.files[filepath]; ok {
		if line > 0 && line <= len(lines) {
			return lines[line-1], nil
		}
		return "", fmt.Errorf("line %d out of range", line)
	}

	file, err := os.Open(filepath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	lines := make([]string, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	sc.files[filepath] = lines

	if line > 0 && line <= len(lines) {
		return lines[line-1], nil
	}

	return "", fmt.Errorf("line %d out of range", line)
}

// Emitter handles the rendering and output of diagnostics
type Emitter struct {
	out   io.Writer
	cache *SourceCache
}

func NewEmitter() *Emitter {
	return NewEmitterWithWriter(os.Stderr)
}

func NewEmitterWithWriter(w io.Writer) *Emitter {
	return &Emitter{
		out:   w,
		cache: NewSourceCache(),
	}
}

// SetSourceLines pre-populates the source cache for a file.
func (e *Emitter) SetSourceLines(filepath string, lines []string) {
	e.cache.SetLines(filepath, lines)
}

// Emit renders one diagnostic:
//
//	error[L0001]: unrecognized character '$'
//	 --> prog.sl:1:11
//	  1 | let x = 5 $;
//	    |           ^ no lexical rule matches here
//	help: remove this character or check if it's a typo
func (e *Emitter) Emit(filepath string, diag *Diagnostic) {
	if diag.FilePath != "" {
		filepath = diag.FilePath
	}

	e.printHeader(diag)

	for _, label := range diag.Labels {
		e.printLabel(filepath, label)
	}

	for _, note := range diag.Notes {
		fmt.Fprintf(e.out, "note: %s\n", note.Message)
	}
	if diag.Help != "" {
		fmt.Fprintf(e.out, "help: %s\n", diag.Help)
	}
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	if diag.Code != "" {
		fmt.Fprintf(e.out, "%s[%s]: %s\n", diag.Severity, diag.Code, diag.Message)
	} else {
		fmt.Fprintf(e.out, "%s: %s\n", diag.Severity, diag.Message)
	}
}

func (e *Emitter) printLabel(filepath string, label Label) {
	loc := label.Location
	if loc == nil || loc.Start == nil {
		return
	}

	fmt.Fprintf(e.out, " --> %s:%s\n", filepath, loc.Start)

	line, err := e.cache.GetLine(filepath, loc.Start.Line)
	if err != nil {
		// No source available (e.g. unreadable file); the header and
		// position line are still useful on their own.
		return
	}

	lineNum := fmt.Sprintf("%d", loc.Start.Line)
	gutter := strings.Repeat(" ", len(lineNum))

	fmt.Fprintf(e.out, "  %s | %s\n", lineNum, line)
	fmt.Fprintf(e.out, "  %s | %s%s", gutter, caretPadding(line, loc.Start.Column), carets(loc))
	if label.Message != "" {
		fmt.Fprintf(e.out, " %s", label.Message)
	}
	fmt.Fprintln(e.out)
}

// caretPadding aligns the caret with the offending column, preserving tabs
// so the underline lines up with the printed source line.
func caretPadding(line string, column int) string {
	var pad strings.Builder
	for i := 0; i < column-1 && i < len(line); i++ {
		if line[i] == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
	}
	for i := len(line); i < column-1; i++ {
		pad.WriteByte(' ')
	}
	return pad.String()
}

func carets(loc *source.Location) string {
	width := 1
	if loc.End != nil && loc.End.Line == loc.Start.Line && loc.End.Column > loc.Start.Column {
		width = loc.End.Column - loc.Start.Column
	}
	return strings.Repeat("^", width)
}
