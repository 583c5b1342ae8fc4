package main

import (
	"github.com/spf13/cobra"

	"github.com/skillgen/skillgen/internal/ui"
	"github.com/skillgen/skillgen/pkg/template"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Inspect the built-in templates",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in template names",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := template.Builtin()
		if err != nil {
			return err
		}
		for _, name := range reg.List() {
			ui.PrintInfo("%s", name)
		}
		return nil
	},
}

var templatesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a template body and its placeholders",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := template.Builtin()
		if err != nil {
			return err
		}
		tpl, err := reg.Get(args[0])
		if err != nil {
			return err
		}

		ui.PrintTitle("%s", tpl.Name())
		for _, placeholder := range tpl.Placeholders() {
			ui.PrintDim("  {%s}", placeholder)
		}
		ui.PrintRule()
		cmd.Println(tpl.Body())
		return nil
	},
}

func init() {
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesShowCmd)
	rootCmd.AddCommand(templatesCmd)
}
