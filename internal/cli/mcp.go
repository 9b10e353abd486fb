package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"dothis/internal/mcp"
)

func newServeMCPCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve-mcp",
		Short: "Start the dothis MCP server on stdio",
		Long: `Start the dothis MCP (Model Context Protocol) server on stdio transport.

The server exposes the extractor and the recurrence engine as tools that AI
assistants can call: parse_task, next_occurrence, describe_recurrence.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dates, clock, err := opts.dates()
			if err != nil {
				return err
			}

			srv := mcp.NewServer(dates, clock, appVersion)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			if err := srv.Run(ctx); err != nil {
				return fmt.Errorf("running MCP server: %w", err)
			}
			return nil
		},
	}
}
