package main

import (
	"fmt"
	"strconv"

	"translationflow/internal/service"
	"translationflow/internal/workflow"

	"github.com/spf13/cobra"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print dashboard statistics for one owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withProjects(cmd, func(svc service.ProjectServiceInterface) error {
				stats, err := svc.Stats(cmd.Context(), owner)
				if err != nil {
					return err
				}
				if ctx.jsonOutput {
					return ctx.printJSON(cmd, stats)
				}

				rows := [][]string{
					{"Projects", strconv.Itoa(stats.ActiveProjects)},
					{"Translations pending", strconv.Itoa(stats.PendingTranslations)},
					{"Translations completed", strconv.Itoa(stats.CompletedTranslations)},
					{"Languages", strconv.Itoa(stats.TotalLanguages)},
					{"Average progress", percent(stats.AverageProgress)},
				}
				for _, status := range []workflow.ProjectStatus{workflow.ProjectNotStarted, workflow.ProjectActive, workflow.ProjectCompleted} {
					rows = append(rows, []string{"Status " + string(status), strconv.Itoa(stats.ByStatus[status])})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Metric", "Value"},
					rows,
					[]columnAlignment{alignLeft, alignRight},
				))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "User ID that owns the projects")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}
