package config

import (
	"context"

	"github.com/prato-lab/prato/pkg/service/extractor"
	"github.com/urfave/cli/v3"
)

// Storage holds configuration for the attachment archive bucket
type Storage struct {
	bucket string
}

// Flags returns CLI flags for storage configuration
func (s *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "storage-bucket",
			Usage:       "Cloud Storage bucket for archived attachments",
			Sources:     cli.EnvVars("PRATO_STORAGE_BUCKET"),
			Destination: &s.bucket,
		},
	}
}

// Bucket returns the configured bucket name
func (s *Storage) Bucket() string {
	return s.bucket
}

// Configure creates an attachment extractor backed by the configured
// bucket. Returns nil if no bucket is configured (attachments are
// acknowledged but not archived).
func (s *Storage) Configure(ctx context.Context) (extractor.Service, error) {
	if s.bucket == "" {
		return nil, nil
	}

	return extractor.New(ctx, s.bucket)
}
