package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/carflow/internal/client/models"
	"github.com/dmitrijs2005/carflow/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

var errPasswordMismatch = errors.New("passwords do not match")

// askKind prompts for the account kind. An empty answer means client.
func (a *App) askKind() (models.AccountKind, error) {
	s, err := getSimpleText(a.reader, "Account type (client/agency) [client]", a.out)
	if err != nil {
		return "", err
	}
	if s == "" {
		return models.KindClient, nil
	}
	kind, err := models.ParseAccountKind(s)
	if err != nil {
		fmt.Fprintf(a.out, "Unknown account type %q\n", s)
		return "", err
	}
	return kind, nil
}

// askNewPassword reads a password twice and checks both entries match.
func (a *App) askNewPassword(prompt string) ([]byte, error) {
	pw, err := getPassword(a.reader, prompt, a.out)
	if err != nil {
		return nil, err
	}

	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		common.WipeByteArray(pw)
		return nil, err
	}
	defer common.WipeByteArray(confirm)

	if string(pw) != string(confirm) {
		common.WipeByteArray(pw)
		fmt.Fprintln(a.out, "Passwords do not match")
		return nil, errPasswordMismatch
	}
	return pw, nil
}

// Login prompts for email, password and account type and signs in.
// The password bytes are wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	kind, err := a.askKind()
	if err != nil {
		return err
	}

	return a.accounts.Login(ctx, email, string(password), kind)
}

// Signup prompts for the signup form and creates an account, which is then
// signed in.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone (optional)", a.out)
	if err != nil {
		return err
	}
	kind, err := a.askKind()
	if err != nil {
		return err
	}

	password, err := a.askNewPassword("Choose password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	data := models.SignupData{Name: name, Email: email, Phone: phone}
	return a.accounts.Signup(ctx, data, string(password), kind)
}

// Logout ends the session. Stored accounts are kept.
func (a *App) Logout(ctx context.Context) error {
	a.accounts.Logout(ctx)
	return nil
}

// Reset asks for an email and requests a reset link for it.
func (a *App) Reset(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter the email of your account", a.out)
	if err != nil {
		return err
	}
	return a.accounts.ResetPassword(ctx, email)
}
