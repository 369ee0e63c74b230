package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the command surface the REPL needs. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	Status(ctx context.Context) error
	Probe(ctx context.Context) error
	Server(ctx context.Context, addr string) error
	Setup(ctx context.Context) error
	Verify(ctx context.Context) error
	Create(ctx context.Context) error
	OTP(ctx context.Context, code string) error
	Resend(ctx context.Context) error
	Cancel(ctx context.Context) error
	List(ctx context.Context) error
	ChangeMaster(ctx context.Context) error
	ResetSecret(ctx context.Context) error
	Strength(ctx context.Context) error
}

const helpText = `Available commands:
  status               show trust mode and pending operation
  probe                test the server connection now
  server <addr>        switch to another server (host:port or http URL)
  setup                create the master password
  verify               check the master password
  change-master        replace the master password
  strength             rate a candidate password
  create               add an account (confirmed by OTP)
  reset-secret         replace an account secret (confirmed by OTP)
  otp <code>           confirm the pending operation
  resend               send a new OTP for the pending operation
  cancel               drop the pending operation
  list                 show all accounts (asks for the master password)
  exit | quit          leave the program`

// runREPL reads commands from reader until EOF, "exit" or "quit", or until
// ctx is done. Command errors are printed and never end the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "locksafe [%s]> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help", "?":
			fmt.Fprintln(w, helpText)
		case "status":
			cmdErr = a.Status(ctx)
		case "probe":
			cmdErr = a.Probe(ctx)
		case "server":
			if len(args) != 1 {
				fmt.Fprintln(w, "Usage: server <addr>")
				continue
			}
			cmdErr = a.Server(ctx, args[0])
		case "setup":
			cmdErr = a.Setup(ctx)
		case "verify":
			cmdErr = a.Verify(ctx)
		case "change-master":
			cmdErr = a.ChangeMaster(ctx)
		case "strength":
			cmdErr = a.Strength(ctx)
		case "create":
			cmdErr = a.Create(ctx)
		case "reset-secret":
			cmdErr = a.ResetSecret(ctx)
		case "otp":
			if len(args) != 1 {
				fmt.Fprintln(w, "Usage: otp <code>")
				continue
			}
			cmdErr = a.OTP(ctx, args[0])
		case "resend":
			cmdErr = a.Resend(ctx)
		case "cancel":
			cmdErr = a.Cancel(ctx)
		case "l", "list":
			cmdErr = a.List(ctx)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(w, "Error:", cmdErr)
		}
	}
}
