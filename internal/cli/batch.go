package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/auragen/internal/manifest"
	"github.com/roach88/auragen/internal/metadata"
	"github.com/roach88/auragen/internal/render"
)

// BatchOptions holds flags for the batch command.
type BatchOptions struct {
	*RootOptions
	OutDir string
}

// NewBatchCommand creates the batch command: render every entry of a
// validated manifest to a directory.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "batch <manifest.yaml>",
		Short: "Render every entry of a manifest",
		Long: `Render every entry of a YAML manifest. Each entry produces
<name>.svg (the raw document) and <name>.json (the decoded metadata
envelope) in the output directory.

The manifest is schema-validated before any file is written; a manifest
that fails validation renders nothing.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.OutDir, "out-dir", ".", "directory for rendered output")

	return cmd
}

func runBatch(opts *BatchOptions, path string, cmd *cobra.Command) error {
	log := opts.logger()
	defer log.Sync() //nolint:errcheck

	m, err := manifest.Load(path)
	if err != nil {
		return WrapExitError(ExitFailure, "batch", err)
	}
	log.Debug("manifest loaded", zap.String("name", m.Name), zap.Int("entries", len(m.Entries)))

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return WrapExitError(ExitCommandError, "batch: output directory", err)
	}

	for _, e := range m.Entries {
		rec, err := e.Record()
		if err != nil {
			return WrapExitError(ExitFailure, "batch", err)
		}

		svg := render.Compose(rec)
		envelope, err := metadata.EncodeJSON(rec, svg, e.DisplayID)
		if err != nil {
			return WrapExitError(ExitFailure, "batch", err)
		}

		svgPath := filepath.Join(opts.OutDir, e.Name+".svg")
		jsonPath := filepath.Join(opts.OutDir, e.Name+".json")
		if err := os.WriteFile(svgPath, []byte(svg), 0o644); err != nil {
			return WrapExitError(ExitCommandError, "batch: write svg", err)
		}
		if err := os.WriteFile(jsonPath, envelope, 0o644); err != nil {
			return WrapExitError(ExitCommandError, "batch: write metadata", err)
		}

		log.Debug("entry rendered",
			zap.String("entry", e.Name),
			zap.String("category", rec.Category.Name()))
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s palette -> %s, %s\n", e.Name, rec.Category.Name(), svgPath, jsonPath)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "rendered %d entries from %s\n", len(m.Entries), m.Name)
	return nil
}
