package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/carflow/internal/client/models"
	"github.com/dmitrijs2005/carflow/internal/common"
)

func printUser(w io.Writer, u *models.PublicUser) {
	fmt.Fprintf(w, "ID:       %s\n", u.ID)
	fmt.Fprintf(w, "Name:     %s\n", u.Name)
	fmt.Fprintf(w, "Email:    %s\n", u.Email)
	if u.Phone != "" {
		fmt.Fprintf(w, "Phone:    %s\n", u.Phone)
	}
	if u.Address != "" {
		fmt.Fprintf(w, "Address:  %s\n", u.Address)
	}
	fmt.Fprintf(w, "Type:     %s\n", u.Type)
	fmt.Fprintf(w, "Member since: %s\n", u.CreatedAt.Format(time.DateOnly))
}

// WhoAmI prints the signed-in account.
func (a *App) WhoAmI(context.Context) error {
	u := a.accounts.CurrentUser()
	if u == nil {
		fmt.Fprintln(a.out, "Not signed in")
		return common.ErrorUnauthorized
	}
	printUser(a.out, u)
	return nil
}

// ShowUser prints the public profile with the given id.
func (a *App) ShowUser(ctx context.Context, id string) error {
	u, err := a.accounts.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintf(a.out, "User %s not found\n", id)
		}
		return err
	}
	printUser(a.out, u)
	return nil
}

// askField prompts with the current value; an empty answer keeps it.
func (a *App) askField(label, current string) (string, error) {
	v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", label, current), a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

// Profile edits name, email, phone and address of the signed-in account.
func (a *App) Profile(ctx context.Context) error {
	u := a.accounts.CurrentUser()
	if u == nil {
		fmt.Fprintln(a.out, "Sign in first")
		return common.ErrorUnauthorized
	}

	name, err := a.askField("Name", u.Name)
	if err != nil {
		return err
	}
	email, err := a.askField("Email", u.Email)
	if err != nil {
		return err
	}
	phone, err := a.askField("Phone", u.Phone)
	if err != nil {
		return err
	}
	address, err := a.askField("Address", u.Address)
	if err != nil {
		return err
	}

	p := models.ProfileUpdate{ID: u.ID, Name: name, Email: email}
	if phone != u.Phone {
		p.Phone = &phone
	}
	if address != u.Address {
		p.Address = &address
	}
	return a.accounts.UpdateProfile(ctx, p)
}

// Passwd changes the password of the signed-in account.
func (a *App) Passwd(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Sign in first")
		return common.ErrorUnauthorized
	}

	current, err := getPassword(a.reader, "Current password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	next, err := a.askNewPassword("New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	return a.accounts.UpdatePassword(ctx, string(current), string(next))
}
