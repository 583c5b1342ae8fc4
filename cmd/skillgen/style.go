package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/skillgen/skillgen/internal/config"
	"github.com/skillgen/skillgen/internal/ui"
	"github.com/skillgen/skillgen/pkg/aesthetics"
	"github.com/skillgen/skillgen/pkg/template"
)

var styleCmd = &cobra.Command{
	Use:   "style",
	Short: "Browse the design aesthetics catalog",
}

var styleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every style in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := aesthetics.DefaultCatalog()
		if err != nil {
			return err
		}
		for _, style := range catalog.All() {
			ui.PrintInfo("%-24s %s", style.Slug, style.Label())
		}
		return nil
	},
}

var styleSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search styles by slug, name, or keyword",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := aesthetics.DefaultCatalog()
		if err != nil {
			return err
		}

		limit, _ := cmd.Flags().GetInt("limit")
		results := catalog.Search(strings.Join(args, " "), limit)
		if len(results) == 0 {
			ui.PrintWarning("no styles match")
			return nil
		}
		for _, style := range results {
			ui.PrintInfo("%-24s %s", style.Slug, style.Label())
			ui.PrintDim("  %s", strings.Join(style.Keywords, ", "))
		}
		return nil
	},
}

var styleShowCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show one style in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := aesthetics.DefaultCatalog()
		if err != nil {
			return err
		}
		style, err := catalog.Get(args[0])
		if err != nil {
			return err
		}
		printStyle(style)
		return nil
	},
}

var stylePickCmd = &cobra.Command{
	Use:   "pick [query]",
	Short: "Interactively pick a style",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := aesthetics.DefaultCatalog()
		if err != nil {
			return err
		}

		query := ""
		if len(args) > 0 {
			query = args[0]
		}

		style, err := aesthetics.NewPicker(catalog, nil).Pick(query)
		if err != nil {
			return err
		}
		printStyle(style)
		return nil
	},
}

var styleBriefCmd = &cobra.Command{
	Use:   "brief <slug>",
	Short: "Render a design brief for a style",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := aesthetics.DefaultCatalog()
		if err != nil {
			return err
		}
		style, err := catalog.Get(args[0])
		if err != nil {
			return err
		}

		project, _ := cmd.Flags().GetString("project")
		if project == "" {
			project = config.Load().Project
		}
		guidance, _ := cmd.Flags().GetString("guidance")

		reg, err := template.Builtin()
		if err != nil {
			return err
		}
		brief, err := aesthetics.Brief(reg, style, project, guidance)
		if err != nil {
			return err
		}

		cmd.Println(brief)
		return nil
	},
}

func printStyle(style aesthetics.Style) {
	ui.PrintTitle("%s", style.Label())
	ui.PrintKeyValue("slug", style.Slug)
	ui.PrintKeyValue("keywords", strings.Join(style.Keywords, ", "))
	ui.PrintKeyValue("palette", strings.Join(style.Palette, " "))
	ui.PrintRule()
	ui.PrintInfo("%s", style.Description)
}

func init() {
	styleSearchCmd.Flags().Int("limit", 10, "maximum results")
	styleBriefCmd.Flags().String("project", "", "project name for the brief")
	styleBriefCmd.Flags().String("guidance", "", "extra direction to include")

	styleCmd.AddCommand(styleListCmd)
	styleCmd.AddCommand(styleSearchCmd)
	styleCmd.AddCommand(styleShowCmd)
	styleCmd.AddCommand(stylePickCmd)
	styleCmd.AddCommand(styleBriefCmd)
	rootCmd.AddCommand(styleCmd)
}
