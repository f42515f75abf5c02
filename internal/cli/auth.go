package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dtroode/pdfgenie-client/internal/model"
)

func (a *App) loginCommand() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.waitReady(ctx); err != nil {
				return err
			}

			pw, err := a.password(cmd, password)
			if err != nil {
				return err
			}

			if _, err := a.deps.Sessions.Login(ctx, username, pw); err != nil {
				return err
			}
			a.deps.Runner.Forget()

			a.present.Success(fmt.Sprintf("Welcome back, %s!", a.deps.Sessions.Current().User.Username))
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (or "+passwordEnv+")")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func (a *App) signupCommand() *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and log into it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.waitReady(ctx); err != nil {
				return err
			}

			pw, err := a.password(cmd, password)
			if err != nil {
				return err
			}

			if err := a.deps.Sessions.Signup(ctx, username, email, pw); err != nil {
				return err
			}
			a.deps.Runner.Forget()

			a.present.Success("Your account has been successfully created!")
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (or "+passwordEnv+")")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.waitReady(cmd.Context()); err != nil {
				return err
			}

			a.deps.Sessions.Logout()
			a.deps.Runner.Forget()

			a.present.Success("You have been successfully logged out.")
			return nil
		},
	}
}

func (a *App) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "whoami",
		Aliases: []string{"dashboard"},
		Short:   "Show the logged in user",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.deps.Guard.Require(cmd.Context(), model.ViewDashboard, func(ctx context.Context) error {
				session := a.deps.Sessions.Current()

				var expiry time.Time
				if a.deps.Inspector != nil {
					expiry, _ = a.deps.Inspector.Expiry(session.Token)
				}
				a.present.User(*session.User, expiry)
				return nil
			})
		},
	}
}
