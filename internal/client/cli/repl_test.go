package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
	arg   string
	err   error
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return f.err
}

func (f *fakeExec) Status(context.Context) error { return f.record("status") }
func (f *fakeExec) Probe(context.Context) error  { return f.record("probe") }
func (f *fakeExec) Server(_ context.Context, addr string) error {
	f.arg = addr
	return f.record("server")
}
func (f *fakeExec) Setup(context.Context) error  { return f.record("setup") }
func (f *fakeExec) Verify(context.Context) error { return f.record("verify") }
func (f *fakeExec) Create(context.Context) error { return f.record("create") }
func (f *fakeExec) OTP(_ context.Context, code string) error {
	f.arg = code
	return f.record("otp")
}
func (f *fakeExec) Resend(context.Context) error       { return f.record("resend") }
func (f *fakeExec) Cancel(context.Context) error       { return f.record("cancel") }
func (f *fakeExec) List(context.Context) error         { return f.record("list") }
func (f *fakeExec) ChangeMaster(context.Context) error { return f.record("change-master") }
func (f *fakeExec) ResetSecret(context.Context) error  { return f.record("reset-secret") }
func (f *fakeExec) Strength(context.Context) error     { return f.record("strength") }

func runScript(t *testing.T, exec execIface, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "status" }, in, &out)
	return out.String()
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	exec := &fakeExec{}
	out := runScript(t, exec,
		"help",
		"status",
		"probe",
		"setup",
		"verify",
		"create",
		"otp 1234",
		"resend",
		"cancel",
		"reset-secret",
		"list",
		"change-master",
		"strength",
		"",
		"exit",
		"list",
	)

	assert.Equal(t, []string{
		"status", "probe", "setup", "verify", "create", "otp", "resend",
		"cancel", "reset-secret", "list", "change-master", "strength",
	}, exec.calls)
	assert.Equal(t, "1234", exec.arg)
	assert.Contains(t, out, "Available commands:")
	assert.Contains(t, out, "locksafe [status]> ")
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_UsageAndUnknown(t *testing.T) {
	exec := &fakeExec{}
	out := runScript(t, exec, "otp", "server", "server a b", "foobar", "quit")

	assert.Empty(t, exec.calls)
	assert.Contains(t, out, "Usage: otp <code>")
	assert.Contains(t, out, "Usage: server <addr>")
	assert.Contains(t, out, "Unknown command: foobar")
}

func TestRunREPL_ServerArgument(t *testing.T) {
	exec := &fakeExec{}
	runScript(t, exec, "server http://10.0.0.1:8080", "exit")

	assert.Equal(t, []string{"server"}, exec.calls)
	assert.Equal(t, "http://10.0.0.1:8080", exec.arg)
}

func TestRunREPL_ErrorsDoNotStopLoop(t *testing.T) {
	exec := &fakeExec{err: errors.New("boom")}
	out := runScript(t, exec, "status", "probe", "exit")

	assert.Equal(t, []string{"status", "probe"}, exec.calls)
	assert.Equal(t, 2, strings.Count(out, "Error: boom"))
}

func TestRunREPL_EOFAndCancelledContext(t *testing.T) {
	exec := &fakeExec{}
	runScript(t, exec, "status")
	assert.Equal(t, []string{"status"}, exec.calls, "a final line without newline still runs")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec = &fakeExec{}
	var out bytes.Buffer
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("status\n")), &out)
	assert.Empty(t, exec.calls)
}
