package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/blockscope/blockscope/pkg/block"
	"github.com/blockscope/blockscope/pkg/resolver"
)

// checkCommand creates the check command for reporting dependency issues.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <manifest.toml>",
		Short: "Resolve a manifest and report dependency issues",
		Long: `Resolve a block manifest and report circular dependencies,
references to missing blocks, and conflicts between enabled blocks.

Exits non-zero when issues are found, so check can gate CI pipelines.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			blocks, err := block.LoadManifest(args[0])
			if err != nil {
				return err
			}
			logger.Debug("loaded manifest", "path", args[0], "blocks", len(blocks))

			result := resolver.Resolve(blocks)
			printReport(result)

			if result.HasIssues() {
				return errIssuesFound
			}
			return nil
		},
	}
}

// errIssuesFound signals a non-zero exit after the report was printed.
var errIssuesFound = issuesError{}

type issuesError struct{}

func (issuesError) Error() string { return "dependency issues found" }

func printReport(result resolver.Result) {
	for _, cycle := range result.Cycles {
		printError("dependency cycle: %s", formatCycle(cycle))
	}

	missing := result.Missing
	resolver.SortMissing(missing)
	for _, m := range missing {
		printWarning("%s %s missing block %q", m.BlockID, m.Kind, m.DependsOn)
	}

	for _, cf := range result.Conflicts {
		printWarning("%s conflicts with enabled block %s", cf.BlockID, cf.ConflictsWith)
	}

	if !result.HasIssues() {
		printSuccess("no dependency issues")
		return
	}
	printDetail("%d cycle(s), %d missing, %d conflict(s)",
		len(result.Cycles), len(result.Missing), len(result.Conflicts))
}

// formatCycle renders a cycle path with the entry node repeated at the end.
func formatCycle(c block.Cycle) string {
	parts := append([]string{}, c.Path...)
	if len(parts) > 0 {
		parts = append(parts, parts[0])
	}
	return strings.Join(parts, " "+iconArrow+" ")
}
