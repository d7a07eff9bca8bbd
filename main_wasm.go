//go:build js && wasm

package main

import (
	"bytes"
	"fmt"
	"syscall/js"

	"slate/internal/context"
	"slate/internal/interp"
)

// runSource executes one program and returns the printable value along with
// the rendered diagnostics on failure.
func runSource(src string, debug bool) (string, error) {
	jsConsole := js.Global().Get("console")

	defer func() {
		if r := recover(); r != nil {
			jsConsole.Call("error", "PANIC in interpreter:", fmt.Sprint(r))
		}
	}()

	ctx := context.New(&context.InterpOptions{Debug: debug})

	value, err := ctx.Run("input.sl", src)
	if err != nil {
		var buf bytes.Buffer
		ctx.EmitDiagnostics(&buf)
		return buf.String(), err
	}

	if value.Kind == interp.UnitValue {
		return "", nil
	}
	return value.String(), nil
}

// slateRunJS is the JavaScript-callable function
func slateRunJS(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{
			"success": false,
			"error":   "Expected at least 1 argument (source string)",
		}
	}

	src := args[0].String()
	debug := false
	if len(args) > 1 {
		debug = args[1].Bool()
	}

	output, err := runSource(src, debug)
	if err != nil {
		return map[string]interface{}{
			"success": false,
			"error":   output,
		}
	}

	return map[string]interface{}{
		"success": true,
		"value":   output,
	}
}

func main() {
	// Prevent the program from exiting
	c := make(chan struct{})

	js.Global().Set("slateRun", js.FuncOf(slateRunJS))

	fmt.Println("slate wasm interpreter ready")

	<-c
}
