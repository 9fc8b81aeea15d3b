package main

import (
	articles "github.com/goliatone/go-articles"
	"github.com/spf13/cobra"
)

func userCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User commands",
	}
	cmd.AddCommand(
		userCreateCommand(),
		userGrantAdminCommand(),
	)
	return cmd
}

func userCreateCommand() *cobra.Command {
	var (
		name      string
		email     string
		password  string
		admin     bool
		useHashid bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create user",
		Long:  "Creates a user with the provided name, email, and password. Pass --admin to\ngrant admin group membership in the same run.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, err := NewApp(ctx)
			if err != nil {
				return err
			}

			if err := WithPersistence(ctx, app); err != nil {
				return err
			}

			var record *articles.User
			registerUser := articles.NewRegisterUserHandler(app.repo)
			err = registerUser.Execute(ctx, articles.RegisterUserMessage{
				Name:      name,
				Email:     email,
				Password:  password,
				UseHashid: useHashid,
				OnResponse: func(u *articles.User) {
					record = u
				},
			})
			if err != nil {
				return err
			}

			logger := app.GetLogger("user")
			logger.Info("created user", "id", record.ID.String(), "email", record.Email)

			if admin {
				grantAdmin := articles.NewGrantAdminHandler(app.repo)
				if err := grantAdmin.Execute(ctx, articles.GrantAdminMessage{Email: email}); err != nil {
					return err
				}
				logger.Info("granted admin", "email", email)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	cmd.Flags().BoolVar(&admin, "admin", false, "grant admin group membership")
	cmd.Flags().BoolVar(&useHashid, "hashid", false, "derive the user id from the email")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func userGrantAdminCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "grant-admin EMAIL",
		Short: "Grant admin group membership",
		Long:  "Adds the user to the admin group. Granting a user that is already an admin\nis a no-op.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := NewApp(ctx)
			if err != nil {
				return err
			}

			if err := WithPersistence(ctx, app); err != nil {
				return err
			}

			grantAdmin := articles.NewGrantAdminHandler(app.repo)
			if err := grantAdmin.Execute(ctx, articles.GrantAdminMessage{Email: args[0]}); err != nil {
				return err
			}

			app.GetLogger("user").Info("granted admin", "email", args[0])
			return nil
		},
	}
}
