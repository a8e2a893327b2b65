//go:build js && wasm

package zed

import (
	"bytes"
	"fmt"
	"strings"
	"syscall/js"
)

// CheckAndShowTypes infers the types of the program passed as its only argument
// and returns the inferred types of the program's declarations, or
// the program's errors if it does not parse or type-check
func CheckAndShowTypes(_ js.Value, args []js.Value) (ret any) {
	defer func() {
		if r := recover(); r != nil {
			ret = "the checker panicked: " + fmt.Sprint(r)
		}
	}()

	p := NewProgramFromBytes([]byte(args[0].String()), "program.zed", DefaultConfig())
	if errs := p.Errors(); errs.HasError() {
		sb := strings.Builder{}
		sb.WriteString("the program has the following errors:\n")
		sb.WriteString(p.FormatErrors(errs))
		return sb.String()
	}

	typesStr, err := p.DisplayTypes()
	if err != nil {
		return fmt.Sprintf("the checker encountered a failure:\n%s", err)
	}
	return typesStr
}

// runAndShowResult evaluates the program passed as its only argument
//
// output: { types: string, stdout: string, value: string }
func runAndShowResult(_ js.Value, args []js.Value) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument, got %d", len(args))
	}
	stdout := &bytes.Buffer{}
	eval, err := Eval(args[0].String(), stdout, DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("%s\n%s", stdout, eval.Program.FormatError(err))
	}
	typesStr, _ := eval.Program.DisplayTypes()
	return map[string]any{
		"types":  typesStr,
		"stdout": stdout.String(),
		"value":  eval.Value.String(),
	}, nil
}

// asPromise implemented based on
// https://stackoverflow.com/questions/67437284/how-to-throw-js-error-from-go-web-assembly
//
// It wraps a JS-API function that also returns an error into one that returns a promise,
// which is rejected with that error
func asPromise(function func(js.Value, []js.Value) (any, error)) any {
	return js.FuncOf(func(this js.Value, args []js.Value) any {
		handler := js.FuncOf(func(_ js.Value, promiseArgs []js.Value) any {
			resolve := promiseArgs[0]
			reject := promiseArgs[1]

			go func() {
				defer func() {
					if r := recover(); r != nil {
						reject.Invoke(js.Global().Get("Error").New(fmt.Sprintf("%s", r)))
					}
				}()

				data, err := function(this, args)
				if err != nil {
					reject.Invoke(js.Global().Get("Error").New(err.Error()))
					return
				}
				resolve.Invoke(js.ValueOf(data))
			}()
			return nil
		})
		return js.Global().Get("Promise").New(handler)
	})
}

var RunAndShowResult = asPromise(runAndShowResult)
