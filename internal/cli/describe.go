package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blockscope/blockscope/pkg/block"
	"github.com/blockscope/blockscope/pkg/errors"
	"github.com/blockscope/blockscope/pkg/resolver"
	"github.com/blockscope/blockscope/pkg/viz/inspect"
)

// describeCommand creates the describe command for one block's summary.
func (c *CLI) describeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <manifest.toml> <block-id>",
		Short: "Print the dependency summary for one block",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			blocks, err := block.LoadManifest(args[0])
			if err != nil {
				return err
			}

			b, ok := block.FindBlock(blocks, args[1])
			if !ok {
				return errors.New(errors.ErrCodeUnknownBlock, "no block with id %q", args[1])
			}

			data := resolver.BuildVisualizationData(blocks)
			cycleNodes := resolver.CycleNodeSet(resolver.Resolve(blocks).Cycles)

			fmt.Println(inspect.Describe(b, cycleNodes,
				data.OutgoingEdges(b.ID), data.IncomingEdges(b.ID)))
			return nil
		},
	}
}
