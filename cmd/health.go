package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mark3labs/raindrop/internal/config"
	"github.com/mark3labs/raindrop/internal/translate"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the translation server is up",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		client, err := newClient(cfg)
		if err != nil {
			return err
		}
		return runHealth(cmd.Context(), cmd.OutOrStdout(), client)
	},
}

// runHealth probes the server and reports its status. An unhealthy server is
// an error so scripts can rely on the exit code.
func runHealth(ctx context.Context, w io.Writer, client *translate.Client) error {
	h, err := client.Health(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", client.HealthEndpoint(), err)
	}

	checked := "unknown"
	if h.TimestampMillis > 0 {
		checked = time.UnixMilli(h.TimestampMillis).Format(time.RFC3339)
	}
	fmt.Fprintf(w, "endpoint:  %s\n", client.HealthEndpoint())
	fmt.Fprintf(w, "status:    %s\n", h.Status)
	fmt.Fprintf(w, "model:     %t\n", h.ModelAvailable)
	fmt.Fprintf(w, "checked:   %s\n", checked)

	if !h.Healthy() {
		return fmt.Errorf("translation server is not ready (status %q, model available: %t)", h.Status, h.ModelAvailable)
	}
	return nil
}
