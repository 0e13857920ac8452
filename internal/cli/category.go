package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/auragen/internal/art"
)

// NewCategoryCommand creates the category command: report the category
// and palette an identity maps to, without rendering anything.
func NewCategoryCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category <identity>",
		Short: "Show the category and palette for an identity",
		Long: `Show the category an identity key maps to, plus its palette.

Category assignment is a pure function of the identity (hash mod 5);
entropy plays no part in it.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategory(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runCategory(opts *RootOptions, identity string, cmd *cobra.Command) error {
	id, err := art.ParseIdentity(identity)
	if err != nil {
		return WrapExitError(ExitFailure, "category", err)
	}

	cat := art.SelectCategory(id)
	pal := art.PaletteFor(cat)

	if opts.Format == "json" {
		out := map[string]any{
			"identity": id.String(),
			"category": cat.Name(),
			"palette": map[string]string{
				"background": pal.Background,
				"primary":    pal.Primary,
				"secondary":  pal.Secondary,
				"glow":       pal.Glow,
			},
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Identity: %s\n", id)
	fmt.Fprintf(cmd.OutOrStdout(), "Category: %s\n", cat.Name())
	fmt.Fprintf(cmd.OutOrStdout(), "Palette:  background %s, primary %s, secondary %s, glow %s\n",
		pal.Background, pal.Primary, pal.Secondary, pal.Glow)
	return nil
}
