package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/locksafe/internal/backend"
	"github.com/dmitrijs2005/locksafe/internal/client/services"
	"github.com/dmitrijs2005/locksafe/internal/common"
)

var errPasswordMismatch = errors.New("passwords do not match")

// check prints the policy violations carried by err, if any, and returns it
// for the REPL to report.
func (a *App) check(err error) error {
	var re *backend.ResponseError
	if errors.As(err, &re) {
		for _, v := range re.Violations {
			a.printf("  - %s\n", v)
		}
	}
	return err
}

func (a *App) printResult(res backend.Result) error {
	if err := res.Err(); err != nil {
		return a.check(err)
	}
	if res.Message != "" {
		a.printf("%s\n", res.Message)
	}
	return nil
}

func (a *App) printSent(resp *backend.SendOTPResponse) {
	a.printf("%s\n", resp.Message)
	if resp.Channel == backend.ChannelDebug {
		a.printf("OTP: %s (valid until %s)\n", resp.DebugCode, resp.ExpiresAt.Local().Format(time.TimeOnly))
	}
	a.printf("Confirm with: otp <code>\n")
}

func (a *App) Status(_ context.Context) error {
	a.printf("Mode: %s\n", a.ctrl.Mode())
	if ep := a.ctrl.Endpoint(); ep != "" {
		a.printf("Server: %s\n", ep)
	}
	if op, ok := a.workflow.Pending(); ok {
		a.printf("Pending: %s %s/%s, OTP sent to %s\n", op.Kind, op.Platform, op.Username, op.Email)
	}
	return nil
}

func (a *App) Probe(ctx context.Context) error {
	a.printf("Mode: %s\n", a.ctrl.TestConnection(ctx))
	return nil
}

// Server replaces the remote endpoint and probes it.
func (a *App) Server(ctx context.Context, addr string) error {
	remote, err := newRemote(addr)
	if err != nil {
		return err
	}
	a.printf("Mode: %s\n", a.ctrl.SetRemote(ctx, remote))
	return nil
}

func (a *App) Setup(ctx context.Context) error {
	ex, err := a.ctrl.CheckMasterExists(ctx)
	if err != nil {
		return err
	}
	if ex.Exists {
		return common.ErrAlreadyInitialized
	}

	pw, err := GetPassword(a.reader, "New master password", a.out)
	if err != nil {
		return err
	}
	confirm, err := GetPassword(a.reader, "Repeat master password", a.out)
	if err != nil {
		return err
	}
	if pw != confirm {
		return errPasswordMismatch
	}

	res, err := a.ctrl.SetupMaster(ctx, &backend.PasswordRequest{Password: pw})
	if err != nil {
		return err
	}
	return a.printResult(*res)
}

func (a *App) Verify(ctx context.Context) error {
	pw, err := GetPassword(a.reader, "Master password", a.out)
	if err != nil {
		return err
	}
	res, err := a.ctrl.VerifyMaster(ctx, &backend.PasswordRequest{Password: pw})
	if err != nil {
		return err
	}
	if err := res.Err(); err != nil {
		return err
	}
	a.printf("Master password is correct\n")
	return nil
}

func (a *App) ChangeMaster(ctx context.Context) error {
	current, err := GetPassword(a.reader, "Current master password", a.out)
	if err != nil {
		return err
	}
	next, err := GetPassword(a.reader, "New master password", a.out)
	if err != nil {
		return err
	}
	confirm, err := GetPassword(a.reader, "Repeat new master password", a.out)
	if err != nil {
		return err
	}
	if next != confirm {
		return errPasswordMismatch
	}

	res, err := a.ctrl.ChangeMaster(ctx, &backend.ChangeMasterRequest{CurrentPassword: current, NewPassword: next})
	if err != nil {
		return err
	}
	return a.printResult(*res)
}

// Strength rates a candidate against the local policy without storing it.
func (a *App) Strength(_ context.Context) error {
	pw, err := GetPassword(a.reader, "Password to rate", a.out)
	if err != nil {
		return err
	}
	res := a.evaluator.Evaluate(pw)
	a.printf("Strength: %s\n", res.Strength)
	for _, m := range res.Messages {
		a.printf("  - %s\n", m)
	}
	return nil
}

func (a *App) Create(ctx context.Context) error {
	return a.submit(ctx, services.KindCreateAccount)
}

func (a *App) ResetSecret(ctx context.Context) error {
	return a.submit(ctx, services.KindResetSecret)
}

func (a *App) submit(ctx context.Context, kind services.Kind) error {
	if a.workflow.State() != services.StateIdle {
		return services.ErrOperationPending
	}

	op := services.PendingOperation{Kind: kind}
	var err error
	if op.Platform, err = GetSimpleText(a.reader, "Platform", a.out); err != nil {
		return err
	}
	if op.Username, err = GetSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if op.Email, err = GetSimpleText(a.reader, "Email for OTP confirmation", a.out); err != nil {
		return err
	}
	prompt := "Secret"
	if kind == services.KindResetSecret {
		prompt = "New secret"
	}
	if op.Secret, err = GetPassword(a.reader, prompt, a.out); err != nil {
		return err
	}

	resp, err := a.workflow.Submit(ctx, op)
	if err != nil {
		return a.check(err)
	}
	a.printSent(resp)
	return nil
}

func (a *App) OTP(ctx context.Context, code string) error {
	out, err := a.workflow.Resolve(ctx, code)
	switch {
	case errors.Is(err, common.ErrOTPExpired):
		return fmt.Errorf("%w, use 'resend' for a new code", err)
	case errors.Is(err, common.ErrOTPInvalid):
		return fmt.Errorf("%w, try again or 'cancel'", err)
	case out == nil:
		return err
	}

	if err := a.printResult(out.Result); err != nil {
		return err
	}
	if out.Kind == services.KindResetSecret && out.Email != "" {
		a.printf("Confirmation for %s\n", out.Email)
	}
	return nil
}

func (a *App) Resend(ctx context.Context) error {
	resp, err := a.workflow.Resend(ctx)
	if err != nil {
		return a.check(err)
	}
	a.printSent(resp)
	return nil
}

func (a *App) Cancel(ctx context.Context) error {
	if err := a.workflow.Cancel(ctx); err != nil {
		return err
	}
	a.printf("Pending operation cancelled\n")
	return nil
}

func (a *App) List(ctx context.Context) error {
	pw, err := GetPassword(a.reader, "Master password", a.out)
	if err != nil {
		return err
	}
	resp, err := a.ctrl.ListAccounts(ctx, &backend.ListAccountsRequest{MasterPassword: pw})
	if err != nil {
		return err
	}
	if err := resp.Err(); err != nil {
		return err
	}
	if len(resp.Accounts) == 0 {
		a.printf("No accounts stored\n")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PLATFORM\tUSERNAME\tEMAIL\tSECRET")
	for _, acc := range resp.Accounts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", acc.Platform, acc.Username, acc.Email, acc.Secret)
	}
	return tw.Flush()
}
