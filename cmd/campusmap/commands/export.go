package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"campusmap/internal/logger"
	"campusmap/pkg/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the map dataset as JSON",
	Long: `Export every building, floor, room, staff member, event, path and
setting to a JSON snapshot file, and optionally upload it to S3.

Examples:
  # Export to the configured path
  campusmap export

  # Export to a specific file
  campusmap export --output /tmp/campus.json

  # Export and upload to S3
  campusmap export --s3-bucket campus-backups --s3-region eu-central-1`,
	RunE: runExport,
}

var (
	exportOutput   string
	exportS3Bucket string
	exportS3Region string
	exportS3Prefix string
)

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: from configuration)")
	exportCmd.Flags().StringVar(&exportS3Bucket, "s3-bucket", "", "S3 bucket to upload the snapshot to")
	exportCmd.Flags().StringVar(&exportS3Region, "s3-region", "", "AWS region of the S3 bucket")
	exportCmd.Flags().StringVar(&exportS3Prefix, "s3-prefix", "", "Key prefix for the uploaded snapshot")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigAndLogger()
	if err != nil {
		return err
	}

	path := exportOutput
	if path == "" {
		path = cfg.Export.Path
	}

	s3cfg := cfg.Export.S3
	if exportS3Bucket != "" {
		s3cfg.Bucket = exportS3Bucket
	}
	if exportS3Region != "" {
		s3cfg.Region = exportS3Region
	}
	if exportS3Prefix != "" {
		s3cfg.Prefix = exportS3Prefix
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	ctx := cmd.Context()
	snap, err := export.NewExporter(st).WriteFile(ctx, path)
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d entities to %s\n", snap.EntityCount(), path)

	if s3cfg.Bucket == "" {
		return nil
	}

	uploader, err := export.NewS3UploaderFromConfig(ctx, s3cfg.Bucket, s3cfg.Region, s3cfg.Prefix)
	if err != nil {
		return err
	}

	key, err := uploader.Upload(ctx, snap)
	if err != nil {
		return fmt.Errorf("failed to upload snapshot: %w", err)
	}

	logger.Info("snapshot uploaded", "bucket", s3cfg.Bucket, "key", key)
	fmt.Printf("Uploaded snapshot to s3://%s/%s\n", s3cfg.Bucket, key)
	return nil
}
