package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xyz-asif/hazardwatch/internal/config"
	"github.com/xyz-asif/hazardwatch/internal/database"
	"github.com/xyz-asif/hazardwatch/internal/pkg/cloudinary"
)

func newCheckCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify MongoDB and Cloudinary settings from the environment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			out := cmd.OutOrStdout()
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			failed := 0

			if cfg.SessionBackend == "mongo" {
				db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
				if err != nil {
					fmt.Fprintf(out, "✗ MongoDB %s: %v\n", cfg.MongoDB, err)
					failed++
				} else {
					fmt.Fprintf(out, "✓ MongoDB %s\n", cfg.MongoDB)
					_ = db.Disconnect(context.Background())
				}
			} else {
				fmt.Fprintf(out, "- MongoDB skipped (SESSION_BACKEND=%s)\n", cfg.SessionBackend)
			}

			if cfg.CloudinaryEnabled() {
				cld, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryUploadFolder)
				if err == nil {
					err = cld.Ping(ctx)
				}
				if err != nil {
					fmt.Fprintf(out, "✗ Cloudinary %s: %v\n", cfg.CloudinaryCloudName, err)
					failed++
				} else {
					fmt.Fprintf(out, "✓ Cloudinary %s\n", cfg.CloudinaryCloudName)
				}
			} else {
				fmt.Fprintln(out, "- Cloudinary skipped (credentials not set)")
			}

			if failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "overall time limit")
	return cmd
}
