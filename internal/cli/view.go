package cli

import (
	"github.com/spf13/cobra"

	"github.com/blockscope/blockscope/pkg/block"
	"github.com/blockscope/blockscope/pkg/errors"
	"github.com/blockscope/blockscope/pkg/viz/viewer"
)

// viewCommand creates the view command for opening the interactive diagram.
func (c *CLI) viewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view <manifest.toml>",
		Short: "Open the interactive dependency diagram",
		Long: `Open the interactive dependency diagram for a block manifest.

The diagram is a full-screen modal view. Blocks are laid out in category
columns (core, feature, presentation, bonus) with their dependency edges.
Mouse motion highlights blocks, clicking selects them, dragging pans, and
the scroll wheel zooms. Press 'g' to reload the manifest without losing
the camera position, and 'q' to close.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			path := args[0]

			// Validate eagerly so a broken manifest fails before the
			// terminal switches to the alternate screen.
			if _, err := block.LoadManifest(path); err != nil {
				return err
			}

			provider := func() ([]block.Block, error) {
				return block.LoadManifest(path)
			}
			if err := viewer.Show(provider, logger); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "view %s", path)
			}
			return nil
		},
	}
}
