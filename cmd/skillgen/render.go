package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/skillgen/skillgen/internal/config"
	"github.com/skillgen/skillgen/pkg/generator"
	"github.com/skillgen/skillgen/pkg/output"
	"github.com/skillgen/skillgen/pkg/template"
)

var renderCmd = &cobra.Command{
	Use:   "render <template>",
	Short: "Render a template with the given fields",
	Long: `Render substitutes field values into the named template and writes the
result to stdout or a file.

Fields come from repeated --field key=value flags, from a YAML file via
--fields-file, or both (flags win).`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringArray("field", nil, "field value as key=value (repeatable)")
	renderCmd.Flags().String("fields-file", "", "YAML file of field values")
	renderCmd.Flags().String("output", "", "output renderer: markdown, term, or tracker")
	renderCmd.Flags().StringP("out", "o", "", "write to file instead of stdout")
	renderCmd.Flags().Int("wrap", 0, "word wrap width for term output")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	fields, err := collectFields(cmd)
	if err != nil {
		return err
	}

	outputName, _ := cmd.Flags().GetString("output")
	if outputName == "" {
		outputName = cfg.Output
	}
	wrap, _ := cmd.Flags().GetInt("wrap")
	if wrap == 0 {
		wrap = cfg.WordWrap
	}

	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	log.Debug("rendering template", "template", args[0], "output", outputName)

	result, err := gen.Generate(cmd.Context(), generator.Request{
		Template: args[0],
		Fields:   fields,
		Output:   outputName,
		Options:  output.Options{WordWrap: wrap},
	})
	if err != nil {
		return err
	}

	if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
		if err := os.WriteFile(outPath, result, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		return nil
	}

	_, err = cmd.OutOrStdout().Write(result)
	return err
}

// newGenerator wires a generator honoring the template_dir config, layering
// on-disk templates over the built-ins.
func newGenerator(cfg config.Config) (*generator.Generator, error) {
	if cfg.TemplateDir == "" {
		return generator.New(), nil
	}

	reg, err := template.Builtin()
	if err != nil {
		return nil, err
	}
	merged := template.NewRegistry()
	for _, name := range reg.List() {
		tpl, err := reg.Get(name)
		if err != nil {
			return nil, err
		}
		if err := merged.Register(tpl); err != nil {
			return nil, err
		}
	}

	extra, err := template.LoadFS(os.DirFS(cfg.TemplateDir), ".")
	if err != nil {
		return nil, fmt.Errorf("load templates from %s: %w", cfg.TemplateDir, err)
	}
	for _, name := range extra.List() {
		tpl, err := extra.Get(name)
		if err != nil {
			return nil, err
		}
		if err := merged.Register(tpl); err != nil {
			return nil, fmt.Errorf("template %q from %s: %w", name, cfg.TemplateDir, err)
		}
	}

	return generator.New(generator.WithTemplates(merged)), nil
}

func collectFields(cmd *cobra.Command) (template.FieldSet, error) {
	fields := template.FieldSet{}

	if path, _ := cmd.Flags().GetString("fields-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fields file: %w", err)
		}
		var fromFile map[string]string
		if err := yaml.Unmarshal(data, &fromFile); err != nil {
			return nil, fmt.Errorf("parse fields file %s: %w", path, err)
		}
		for key, value := range fromFile {
			fields[key] = value
		}
	}

	pairs, _ := cmd.Flags().GetStringArray("field")
	flagFields, err := parseFieldArgs(pairs)
	if err != nil {
		return nil, err
	}
	for key, value := range flagFields {
		fields[key] = value
	}

	return fields, nil
}

// parseFieldArgs turns key=value pairs into a field set.
func parseFieldArgs(pairs []string) (template.FieldSet, error) {
	fields := template.FieldSet{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid field %q, want key=value", pair)
		}
		fields[strings.TrimSpace(key)] = value
	}
	return fields, nil
}
