package cli

import (
	"context"
	"fmt"
)

// Root prints the banner and runs the REPL on the app input.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to CarFlow (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}
