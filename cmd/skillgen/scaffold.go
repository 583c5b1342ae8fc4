package main

import (
	"github.com/spf13/cobra"

	"github.com/skillgen/skillgen/pkg/scaffold"
	"github.com/skillgen/skillgen/pkg/template"
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Expo app lifecycle reference and checklists",
}

var scaffoldCommandsCmd = &cobra.Command{
	Use:   "commands [stage]",
	Short: "Print the Expo command reference table",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			cmd.Print(scaffold.ReferenceTable())
			return nil
		}
		for _, entry := range scaffold.ByStage(scaffold.Stage(args[0])) {
			cmd.Printf("%-60s %s\n", entry.Line, entry.Purpose)
		}
		return nil
	},
}

var scaffoldChecklistCmd = &cobra.Command{
	Use:   "checklist <app>",
	Short: "Render a scaffold report for a new Expo app",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tpl, _ := cmd.Flags().GetString("template")
		pm, _ := cmd.Flags().GetString("package-manager")
		modules, _ := cmd.Flags().GetStringArray("module")
		eas, _ := cmd.Flags().GetBool("eas")
		notes, _ := cmd.Flags().GetString("notes")

		plan := scaffold.Plan{
			App:            args[0],
			PackageManager: pm,
			Template:       tpl,
			Modules:        modules,
			EAS:            eas,
		}

		reg, err := template.Builtin()
		if err != nil {
			return err
		}
		report, err := plan.Report(reg, notes)
		if err != nil {
			return err
		}

		cmd.Println(report)
		return nil
	},
}

func init() {
	scaffoldChecklistCmd.Flags().String("template", "", "create-expo-app template")
	scaffoldChecklistCmd.Flags().String("package-manager", "", "npm, yarn, pnpm, or bun")
	scaffoldChecklistCmd.Flags().StringArray("module", nil, "native module to install (repeatable)")
	scaffoldChecklistCmd.Flags().Bool("eas", false, "include EAS build and submit steps")
	scaffoldChecklistCmd.Flags().String("notes", "", "notes for the report")

	scaffoldCmd.AddCommand(scaffoldCommandsCmd)
	scaffoldCmd.AddCommand(scaffoldChecklistCmd)
	rootCmd.AddCommand(scaffoldCmd)
}
