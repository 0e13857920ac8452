package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/auragen/internal/metadata"
	"github.com/roach88/auragen/internal/render"
)

// MetadataOptions holds flags for the metadata command.
type MetadataOptions struct {
	*RootOptions
	Identity  string
	Entropy   string
	Sequence  uint64
	DisplayID uint64
	Decode    bool
}

// NewMetadataCommand creates the metadata command: the full envelope
// entry point.
func NewMetadataCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MetadataOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Emit the metadata envelope for an identity/entropy pair",
		Long: `Emit the metadata envelope: a data:application/json;base64 URI
wrapping the name, description, attributes, and embedded SVG image.

Pass --decode to print the JSON document instead of the data URI.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMetadata(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Identity, "identity", "", "identity key (0x-prefixed 40 hex digits)")
	cmd.Flags().StringVar(&opts.Entropy, "entropy", "", "entropy value (hex with 0x prefix, or decimal)")
	cmd.Flags().Uint64Var(&opts.Sequence, "seq", 0, "sequence index for the record")
	cmd.Flags().Uint64Var(&opts.DisplayID, "id", 1, "public display id used in the name field")
	cmd.Flags().BoolVar(&opts.Decode, "decode", false, "print decoded JSON instead of the data URI")
	_ = cmd.MarkFlagRequired("identity")
	_ = cmd.MarkFlagRequired("entropy")

	return cmd
}

func runMetadata(opts *MetadataOptions, cmd *cobra.Command) error {
	log := opts.logger()
	defer log.Sync() //nolint:errcheck

	rec, err := buildRecord(opts.Identity, opts.Entropy, opts.Sequence, log)
	if err != nil {
		return WrapExitError(ExitFailure, "metadata", err)
	}

	svg := render.Compose(rec)

	if opts.Decode {
		raw, err := metadata.EncodeJSON(rec, svg, opts.DisplayID)
		if err != nil {
			return WrapExitError(ExitFailure, "metadata", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(raw))
		return nil
	}

	uri, err := metadata.Encode(rec, svg, opts.DisplayID)
	if err != nil {
		return WrapExitError(ExitFailure, "metadata", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), uri)
	return nil
}
