package main

import (
	"github.com/spf13/cobra"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
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

			if err := WithHTTPServer(ctx, app); err != nil {
				return err
			}

			if err := WithHTTPAuth(ctx, app); err != nil {
				return err
			}

			app.srv.Serve(app.Config().GetServer().GetAddr())

			WaitExitSignal()

			return nil
		},
	}
}
