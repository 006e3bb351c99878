package main

import (
	"fmt"
	"strconv"
	"strings"

	"translationflow/internal/service"
	"translationflow/internal/workflow"

	"github.com/spf13/cobra"
)

func newProjectsCommand(ctx *commandContext) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List, inspect and advance projects of one owner",
	}
	cmd.PersistentFlags().StringVar(&owner, "owner", "", "User ID that owns the projects")
	_ = cmd.MarkPersistentFlagRequired("owner")

	cmd.AddCommand(newProjectsListCommand(ctx, &owner))
	cmd.AddCommand(newProjectsShowCommand(ctx, &owner))
	cmd.AddCommand(newProjectsPhaseCommand(ctx, &owner))
	return cmd
}

func newProjectsListCommand(ctx *commandContext, owner *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects, most recently updated first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withProjects(cmd, func(svc service.ProjectServiceInterface) error {
				list, err := svc.ListByOwner(cmd.Context(), *owner)
				if err != nil {
					return err
				}
				if ctx.jsonOutput {
					return ctx.printJSON(cmd, list)
				}
				if len(list.Projects) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No projects found")
					return nil
				}

				rows := make([][]string, 0, len(list.Projects))
				for _, p := range list.Projects {
					rows = append(rows, []string{
						p.ID,
						p.Name,
						languagesSummary(p.SourceLanguage, p.TargetLanguages),
						p.CurrentPhase.Label(),
						string(p.Status),
						percent(p.Progress),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Name", "Languages", "Current Phase", "Status", "Progress"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
				))
				return nil
			})
		},
	}
}

func newProjectsShowCommand(ctx *commandContext, owner *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a project with the status of every phase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withProjects(cmd, func(svc service.ProjectServiceInterface) error {
				project, err := svc.GetByID(cmd.Context(), *owner, args[0])
				if err != nil {
					return err
				}
				if ctx.jsonOutput {
					return ctx.printJSON(cmd, project)
				}
				printProject(cmd, project)
				return nil
			})
		},
	}
}

func newProjectsPhaseCommand(ctx *commandContext, owner *string) *cobra.Command {
	var force bool
	var version int64

	cmd := &cobra.Command{
		Use:   "phase ID PHASE STATUS",
		Short: "Change the status of one phase",
		Long: "Change the status of one phase. PHASE is one of " + strings.Join(phaseKeys(), ", ") +
			"; STATUS is not_started, in_progress or completed. Moving backwards or starting a phase " +
			"before its predecessor is completed requires --force.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &service.UpdatePhaseRequest{Status: args[2], Force: force}
			if cmd.Flags().Changed("version") {
				req.Version = &version
			}
			return ctx.withProjects(cmd, func(svc service.ProjectServiceInterface) error {
				project, err := svc.UpdatePhaseStatus(cmd.Context(), *owner, args[0], args[1], req)
				if err != nil {
					return err
				}
				if ctx.jsonOutput {
					return ctx.printJSON(cmd, project)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s is now %s (progress %s, version %d)\n",
					project.Name, args[1], args[2], percent(project.Progress), project.Version)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Allow backward moves and out-of-order starts")
	cmd.Flags().Int64Var(&version, "version", 0, "Fail unless the project is still at this version")
	return cmd
}

func printProject(cmd *cobra.Command, p *service.ProjectResponse) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Project:   %s\n", p.Name)
	fmt.Fprintf(out, "ID:        %s\n", p.ID)
	if p.Description != "" {
		fmt.Fprintf(out, "About:     %s\n", p.Description)
	}
	fmt.Fprintf(out, "Languages: %s\n", languagesSummary(p.SourceLanguage, p.TargetLanguages))
	fmt.Fprintf(out, "Status:    %s (%s)\n", p.Status, percent(p.Progress))
	fmt.Fprintf(out, "Version:   %d\n", p.Version)
	fmt.Fprintf(out, "Updated:   %s\n\n", p.UpdatedAt)

	rows := make([][]string, 0, workflow.PhaseCount)
	for i, phase := range workflow.Sequence() {
		current := ""
		if phase == p.CurrentPhase {
			current = "*"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			phase.Label(),
			p.Phases.Get(phase).Label(),
			current,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"#", "Phase", "Status", "Current"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
	))
}

func languagesSummary(source string, targets []string) string {
	return source + " -> " + strings.Join(targets, ", ")
}

func percent(v int) string {
	return strconv.Itoa(v) + "%"
}

func phaseKeys() []string {
	keys := make([]string, 0, workflow.PhaseCount)
	for _, p := range workflow.Sequence() {
		keys = append(keys, p.String())
	}
	return keys
}
