package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/coursemap/internal/server"
)

// serveCommand creates the serve command, the local preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog API and graph preview over HTTP",
		Long: `Serve a read-only preview of the active catalog.

Endpoints:
  GET /                              graph preview page
  GET /graph.svg?focus=ID            rendered graph
  GET /api/courses?search=&year=&spec=
  GET /api/courses/{id}
  GET /api/courses/{id}/relations
  GET /api/highlight?focus=ID
  GET /api/timeline
  GET /api/specializations
  GET /api/legend
  GET /api/lint
  GET /api/version`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			reg, err := c.loadRegistry(ctx)
			if err != nil {
				return err
			}
			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			if addr == "" {
				addr = c.Config.Server.Addr
			}
			if addr == "" {
				addr = defaultServeAddr
			}
			printInfo("Serving %d courses on %s", reg.Len(), StyleHighlight.Render("http://"+addr))
			return server.New(reg, runner, c.Logger).Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, else "+defaultServeAddr+")")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	return cmd
}
