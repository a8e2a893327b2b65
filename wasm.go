//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cottand/zed/zed"
)

func main() {
	js.Global().Set("CheckAndShowTypes", js.FuncOf(zed.CheckAndShowTypes))
	js.Global().Set("RunAndShowResult", zed.RunAndShowResult)

	// wait indefinitely so that Go does not terminate execution
	// and the functions remain available
	<-make(chan struct{})
}
