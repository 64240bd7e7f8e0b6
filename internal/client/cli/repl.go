package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	ShowUser(ctx context.Context, id string) error
	Profile(ctx context.Context) error
	Passwd(ctx context.Context) error
	Reset(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the CarFlow CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a'. Command handlers read their prompts from the
// same reader, so piped input works line by line. The loop exits on EOF or
// when the user types "exit" or "quit".
//
//	Signed out: help, login, signup, reset, user <id>, exit
//	Signed in:  help, whoami, profile, passwd, user <id>, logout, exit
//
// Errors returned by command handlers are ignored here; the account store
// already reported them as notifications.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("carflow%s> ", withSpace(statusFn())))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, profile, passwd, user <id>, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, reset, user <id>, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup", "register":
			_ = a.Signup(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "user":
			if len(args) == 0 {
				printlnFn("Usage: user <id>")
				continue
			}
			_ = a.ShowUser(ctx, args[0])

		case "profile":
			_ = a.Profile(ctx)

		case "passwd":
			_ = a.Passwd(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func withSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
