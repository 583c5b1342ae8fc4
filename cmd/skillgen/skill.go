package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skillgen/skillgen/internal/config"
	"github.com/skillgen/skillgen/internal/ui"
	"github.com/skillgen/skillgen/pkg/skill"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage skill documents",
	Long: `Manage SKILL.md documents: list and inspect the built-ins, export them
to disk, install them into assistant tool directories, or author new ones.

Supported tools:
  - claude: .claude/skills/<name>/
  - cursor: .cursor/skills/<name>/
  - codex:  .codex/skills/<name>/`,
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in skills",
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := skill.Builtin()
		if err != nil {
			return err
		}
		for _, sk := range set.All() {
			ui.PrintInfo("%s", sk.Name)
			ui.PrintDim("  %s", sk.Description)
		}
		return nil
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a skill document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sk, err := resolveSkill(args[0])
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(sk.Document())
		return err
	},
}

var skillExportCmd = &cobra.Command{
	Use:   "export <name> <dir>",
	Short: "Write a skill document under a directory",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sk, err := resolveSkill(args[0])
		if err != nil {
			return err
		}

		target := filepath.Join(args[1], sk.Name, skill.FileName)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(target, sk.Document(), 0o644); err != nil {
			return err
		}
		ui.PrintSuccess("exported %s to %s", sk.Name, target)
		return nil
	},
}

var skillInstallCmd = &cobra.Command{
	Use:   "install <name>",
	Short: "Install a skill into a tool's skill directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sk, err := resolveSkill(args[0])
		if err != nil {
			return err
		}

		toolName, _ := cmd.Flags().GetString("tool")
		global, _ := cmd.Flags().GetBool("global")
		force, _ := cmd.Flags().GetBool("force")

		scope := skill.ScopeProject
		if global {
			scope = skill.ScopeGlobal
		}

		var tools []skill.Tool
		if toolName != "" {
			tools = []skill.Tool{skill.Tool(toolName)}
		} else {
			tools = skill.DetectTools(".")
			if len(tools) == 0 {
				return fmt.Errorf("no tool directories detected; pass --tool explicitly")
			}
		}

		for _, tool := range tools {
			target, err := skill.Install(sk, tool, scope, ".", force)
			if err != nil {
				return err
			}
			ui.PrintSuccess("installed %s for %s at %s", sk.Name, tool, target)
		}
		return nil
	},
}

var skillNewCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Author a new skill document",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")
		description, _ := cmd.Flags().GetString("description")
		overview, _ := cmd.Flags().GetString("overview")
		sections, _ := cmd.Flags().GetStringArray("section")
		checklist, _ := cmd.Flags().GetStringArray("check")

		draft := skill.Draft{
			Title:       title,
			Description: description,
			Overview:    overview,
			Checklist:   checklist,
		}
		for _, pair := range sections {
			heading, body, ok := strings.Cut(pair, "=")
			if !ok {
				return fmt.Errorf("invalid section %q, want title=body", pair)
			}
			draft.Sections = append(draft.Sections, skill.Section{Title: heading, Body: body})
		}

		sk, err := skill.Author(draft)
		if err != nil {
			return err
		}

		if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
			target := filepath.Join(dir, sk.Name, skill.FileName)
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(target, sk.Document(), 0o644); err != nil {
				return err
			}
			ui.PrintSuccess("wrote %s", target)
			return nil
		}

		_, err = cmd.OutOrStdout().Write(sk.Document())
		return err
	},
}

// resolveSkill looks up name among the built-ins, then the skill_dirs from
// configuration.
func resolveSkill(name string) (*skill.Skill, error) {
	set, err := skill.Builtin()
	if err != nil {
		return nil, err
	}
	if set.Has(name) {
		return set.Get(name)
	}

	for _, dir := range configSkillDirs() {
		loaded, err := skill.LoadFS(os.DirFS(dir), ".")
		if err != nil {
			continue
		}
		if loaded.Has(name) {
			return loaded.Get(name)
		}
	}

	return nil, fmt.Errorf("skill %q not found", name)
}

func configSkillDirs() []string {
	return config.Load().SkillDirs
}

func init() {
	skillInstallCmd.Flags().String("tool", "", "target tool: claude, cursor, or codex (default: detect)")
	skillInstallCmd.Flags().Bool("global", false, "install under the home directory instead of the project")
	skillInstallCmd.Flags().Bool("force", false, "overwrite an existing install")

	skillNewCmd.Flags().String("description", "", "one-line skill description")
	skillNewCmd.Flags().String("overview", "", "opening paragraph")
	skillNewCmd.Flags().StringArray("section", nil, "section as title=body (repeatable)")
	skillNewCmd.Flags().StringArray("check", nil, "checklist item (repeatable)")
	skillNewCmd.Flags().String("dir", "", "write under this directory instead of stdout")

	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
	skillCmd.AddCommand(skillExportCmd)
	skillCmd.AddCommand(skillInstallCmd)
	skillCmd.AddCommand(skillNewCmd)
	rootCmd.AddCommand(skillCmd)
}
