package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"spendtui/api"
)

// loginCmd exchanges credentials for a session token.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the expense tracker backend",
	Long:  `Exchange your email and password for a session token. Save the token in the config file or the SPENDTUI_TOKEN environment variable.`,
	RunE:  loginRun,
}

// registerCmd creates a new account.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long:  `Create a new account on the expense tracker backend and receive the first session token.`,
	RunE:  registerRun,
}

// logoutCmd invalidates the current session token.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Invalidate the current session token",
	RunE:  logoutRun,
}

func init() {
	loginCmd.Flags().String("email", "", "account email address")
	loginCmd.Flags().String("password", "", "account password (prompted when omitted)")

	registerCmd.Flags().String("username", "", "display name for the new account")
	registerCmd.Flags().String("email", "", "account email address")
	registerCmd.Flags().String("password", "", "account password (prompted when omitted)")
}

func loginRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	if email == "" {
		return errors.New("email is required")
	}
	if password == "" {
		var err error
		password, err = promptForPassword()
		if err != nil {
			return err
		}
	}

	session, err := client.Login(ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	printSession(cmd, session)
	return nil
}

func registerRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	username, _ := cmd.Flags().GetString("username")
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	if username == "" || email == "" {
		return errors.New("username and email are required")
	}
	if password == "" {
		var err error
		password, err = promptForPassword()
		if err != nil {
			return err
		}
	}

	session, err := client.Register(ctx, api.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	printSession(cmd, session)
	return nil
}

func logoutRun(cmd *cobra.Command, _ []string) error {
	if err := client.Logout(cmd.Context()); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Session token invalidated.")
	return nil
}

func promptForPassword() (string, error) {
	var password string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("password is required")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}
	return password, nil
}

func printSession(cmd *cobra.Command, session *api.Session) {
	out := cmd.OutOrStdout()

	if session.User != nil {
		fmt.Fprintf(out, "Logged in as %s\n", session.User.Username)
	}
	fmt.Fprintf(out, "Session token: %s\n", session.Token)
	fmt.Fprintln(out, "Save it in your config file or export SPENDTUI_TOKEN to keep the session.")
}
