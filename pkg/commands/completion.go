package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/missioncontrol/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(mission completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(mission completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func memoryCompletions(toComplete string) []string {
	var ids []string
	for _, r := range store.Fixed(nil).Memories(context.Background()) {
		if strings.HasPrefix(r.ID, toComplete) {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

func agentCompletions(toComplete string) []string {
	var ids []string
	for _, a := range store.Fixed(nil).OfficeAgents(context.Background()) {
		if strings.HasPrefix(a.ID, toComplete) {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

func tagCompletions(toComplete string) []string {
	seen := map[string]bool{}
	var tags []string
	for _, r := range store.Fixed(nil).Memories(context.Background()) {
		for _, t := range r.Tags {
			if !seen[t] && strings.HasPrefix(strings.ToLower(t), strings.ToLower(toComplete)) {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}
