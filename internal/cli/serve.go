package cli

import (
	"github.com/spf13/cobra"

	"github.com/sfneal/dependencies/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		manifest string
		dev      bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve dependency links as JSON over HTTP",
		Long: `Serve dependency links as JSON over HTTP until interrupted.

Routes:
  GET /healthz
  GET /dependencies
  GET /dependencies/{vendor}/{name}?type=docker`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sess, err := c.newSession(ctx, nil)
			if err != nil {
				return err
			}
			defer sess.Close()

			srv := server.New(sess.runner, sess.source(manifest, dev))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVarP(&manifest, "manifest", "m", "", "manifest file (default: composer.json)")
	cmd.Flags().BoolVar(&dev, "dev", false, "include development requirements")

	return cmd
}
