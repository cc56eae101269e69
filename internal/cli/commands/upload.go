package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/biogleam/biogleam/internal/api"
)

// NewUploadCmd creates the upload command
func NewUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file> [file...]",
		Short: "Upload one or more images",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(cmd, args)
		},
	}
}

func runUpload(cmd *cobra.Command, paths []string) error {
	client, _, err := newClient(cmd)
	if err != nil {
		return err
	}

	if len(paths) == 1 {
		f, err := os.Open(paths[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", paths[0], err)
		}
		defer f.Close()

		up, err := client.UploadImage(cmd.Context(), filepath.Base(paths[0]), f)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Uploaded %s\n  %s\n", paths[0], up.URL)
		return nil
	}

	files := make([]api.UploadFile, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", p, err)
		}
		defer f.Close()
		files = append(files, api.UploadFile{Name: filepath.Base(p), Reader: f})
	}

	uploads, err := client.UploadImages(cmd.Context(), files)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Uploaded %d files\n", len(uploads))
	for _, up := range uploads {
		fmt.Printf("  %s\n", up.URL)
	}
	return nil
}
