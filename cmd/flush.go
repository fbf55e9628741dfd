package main

import (
	"context"
	"fmt"
	"purger/internal/config"
	"purger/internal/events"
	"purger/pkg/domain"
	"purger/pkg/logger"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// parseParams turns repeated key=value flags into ordered params.
func parseParams(raw []string) (domain.Params, error) {
	var params domain.Params
	for _, kv := range raw {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return params, fmt.Errorf("invalid param %q, want key=value", kv)
		}
		params.Set(k, v)
	}

	return params, nil
}

// flushCommand constructs the 'flush' subcommand that publishes one event
// locally and waits until the resulting bans were delivered.
func flushCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flush <event>",
		Short: "Publishes an event (e.g. varnish_flush_all) and waits for the bans",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			postID, _ := cmd.Flags().GetInt64("post-id")
			termID, _ := cmd.Flags().GetInt64("term-id")
			taxonomy, _ := cmd.Flags().GetString("taxonomy")
			url, _ := cmd.Flags().GetString("url")
			action, _ := cmd.Flags().GetString("action")
			postType, _ := cmd.Flags().GetString("post-type")
			rawParams, _ := cmd.Flags().GetStringArray("param")

			params, err := parseParams(rawParams)
			if err != nil {
				return err
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			purger, _, drain := setupPurger(ctx, cfg, strg, true)

			bus := events.NewBus()
			events.Bind(bus, purger)
			if !bus.Has(args[0]) {
				return fmt.Errorf("unknown event %q", args[0])
			}

			n := bus.Publish(ctx, events.Event{
				Name: args[0],
				Payload: events.Payload{
					PostID:   domain.PostID(postID),
					TermID:   domain.TermID(termID),
					Taxonomy: domain.Taxonomy(taxonomy),
					URL:      url,
					Action:   action,
					Params:   params,
					PostType: domain.PostType(postType),
				},
			})

			drainCtx, cancel := context.WithTimeout(ctx, cfg.GracefulShutdownTimeout)
			defer cancel()
			drain(drainCtx)

			logger.Info(ctx, "event published", zap.String("event", args[0]), zap.Int("handlers", n))

			return nil
		},
	}

	cmd.Flags().Int64("post-id", 0, "Post ID")
	cmd.Flags().Int64("term-id", 0, "Term ID")
	cmd.Flags().String("taxonomy", "", "Taxonomy of the term (e.g., category)")
	cmd.Flags().String("url", "", "URL to purge")
	cmd.Flags().String("action", "", "AJAX action")
	cmd.Flags().StringArray("param", nil, "AJAX parameter as key=value, repeatable, order is kept")
	cmd.Flags().String("post-type", "", "Post type whose archive is purged")

	return cmd
}
