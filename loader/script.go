package loader

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dop251/goja"
)

// ErrScriptTimeout is returned when a JS menu file runs past its timeout.
var ErrScriptTimeout = errors.New("menu script timed out")

// decodeJS runs data in a fresh goja runtime and exports the completion
// value. A menu file is normally a single array literal:
//
//	[{name: "Rajasthani Thali", items: ["dal", "churma"], price: 250, isVeg: true}]
func decodeJS(data []byte, timeout time.Duration) ([]any, error) {
	prog, err := goja.Compile("menu.js", string(data), true)
	if err != nil {
		return nil, fmt.Errorf("failed to compile menu script: %w", err)
	}

	vm := goja.New()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	go func() {
		<-ctx.Done()
		// After RunProgram returns, cancel() lands here too; interrupting an
		// idle runtime is harmless.
		vm.Interrupt(ErrScriptTimeout.Error())
	}()

	v, err := vm.RunProgram(prog)
	cancel()

	if err != nil {
		var interrupted *goja.InterruptedError
		if errors.As(err, &interrupted) {
			return nil, ErrScriptTimeout
		}
		return nil, fmt.Errorf("failed to run menu script: %w", err)
	}

	return asList(v.Export())
}
