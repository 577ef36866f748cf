// Package main implements the daybaby command, a terminal front end for the
// journal's client state: preferences and analytics, printable reports and
// the session's background loops.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/giseleterencioa-design/app-daybaby/internal/redact"
)

const usage = `usage: daybaby <command> [flags]

commands:
  stats    print the analytics statistics as JSON
  prefs    show or change the display preferences
  summary  print the dashboard values of a journal snapshot as JSON
  report   render a journal snapshot to a printable HTML report
  watch    run the session loops until interrupted
  pull     sign in and save the account's journal as a snapshot
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

type command func(ctx context.Context, app *application, args []string, stdout io.Writer) error

var commands = map[string]command{
	"stats":   runStats,
	"prefs":   runPrefs,
	"summary": runSummary,
	"report":  runReport,
	"watch":   runWatch,
	"pull":    runPull,
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	app, err := newApplication(ctx, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "daybaby: %s\n", redact.Error(err))
		return 1
	}
	defer app.Close()

	if err := cmd(ctx, app, args[1:], stdout); err != nil {
		msg := redact.Error(err)
		app.logger.Error("command failed", "command", args[0], "error", msg)
		fmt.Fprintf(stderr, "daybaby %s: %s\n", args[0], msg)
		return 1
	}
	return 0
}
