package context

import (
	"fmt"
	"os"

	"slate/internal/diagnostics"
	"slate/internal/frontend/lexer"
	"slate/internal/frontend/parser"
	"slate/internal/interp"
)

// Run executes src with a fresh context and environment and returns the
// value of the program's last statement. This is the library entry point:
// callers get either a value or exactly one typed error.
func Run(src string) (interp.Value, error) {
	ctx := New(nil)
	return ctx.Run("<input>", src)
}

// Run executes the pipeline over src. Each call gets a fresh environment,
// so re-running the same source always yields the same result.
func (ctx *InterpContext) Run(name, src string) (interp.Value, error) {
	ctx.SetSource(name, src)

	if err := ctx.runLexerPhase(); err != nil {
		return interp.Unit, ctx.fail(err)
	}
	if err := ctx.runParserPhase(); err != nil {
		return interp.Unit, ctx.fail(err)
	}

	value, err := ctx.runEvalPhase()
	if err != nil {
		return interp.Unit, ctx.fail(err)
	}

	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "  ✓ Result: %s\n", value)
	}

	return value, nil
}

// RunFile reads path and executes its contents.
func (ctx *InterpContext) RunFile(path string) (interp.Value, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return interp.Unit, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return ctx.Run(path, string(content))
}

// fail records the run's error in the diagnostics bag and passes it through.
func (ctx *InterpContext) fail(err error) error {
	ctx.Diagnostics.Add(diagnostics.FromError(ctx.FileName, err))
	return err
}

func (ctx *InterpContext) runLexerPhase() error {
	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "\n[Phase 1] Lexer\n")
		fmt.Fprintf(os.Stderr, "  Tokenizing %s (%d bytes)\n", ctx.FileName, len(ctx.Source))
	}

	tokens, err := lexer.New(ctx.FileName, ctx.Source).Tokenize()
	if err != nil {
		return err
	}
	ctx.Tokens = tokens

	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "    Generated %d tokens\n", len(tokens))
	}

	return nil
}

func (ctx *InterpContext) runParserPhase() error {
	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "\n[Phase 2] Parser\n")
		fmt.Fprintf(os.Stderr, "  Parsing %s (%d tokens)\n", ctx.FileName, len(ctx.Tokens))
	}

	program, err := parser.Parse(ctx.Tokens, ctx.FileName)
	if err != nil {
		return err
	}
	ctx.Program = program

	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "    Generated %d top-level statements\n", len(program.Statements))
	}

	return nil
}

func (ctx *InterpContext) runEvalPhase() (interp.Value, error) {
	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "\n[Phase 3] Evaluator\n")
	}

	ctx.Env = interp.NewEnv()
	return interp.Eval(ctx.Program, ctx.Env)
}
