package scaffold

import (
	"fmt"
	"strings"

	"github.com/skillgen/skillgen/pkg/template"
)

// Plan describes the app to scaffold.
type Plan struct {
	// App is the app name passed to create-expo-app.
	App string
	// PackageManager is npm, yarn, pnpm, or bun. Defaults to npm.
	PackageManager string
	// Template names the create-expo-app template, empty for the default.
	Template string
	// Modules lists native modules to install with expo install.
	Modules []string
	// EAS includes the build and submit stages when set.
	EAS bool
}

func (p Plan) normalized() Plan {
	if strings.TrimSpace(p.App) == "" {
		p.App = "my-app"
	}
	if strings.TrimSpace(p.PackageManager) == "" {
		p.PackageManager = "npm"
	}
	return p
}

// Checklist produces the ordered setup steps for the plan.
func (p Plan) Checklist() []string {
	p = p.normalized()

	create := "npx create-expo-app@latest " + p.App
	if p.Template != "" {
		create += " --template " + p.Template
	}

	steps := []string{
		"Create the app: " + create,
		"Enter the project: cd " + p.App,
	}
	for _, module := range p.Modules {
		steps = append(steps, "Install "+module+": npx expo install "+module)
	}
	steps = append(steps,
		"Start the dev server: npx expo start",
		"Check project health: npx expo-doctor",
	)
	if p.EAS {
		steps = append(steps,
			"Authenticate: eas login",
			"Link the project: eas init",
			"Build for both stores: eas build --platform all",
			"Submit when ready: eas submit --platform ios",
		)
	}
	return steps
}

// commandLines collects the bare commands from the checklist, one per line.
func (p Plan) commandLines() []string {
	var lines []string
	for _, step := range p.Checklist() {
		if _, cmd, ok := strings.Cut(step, ": "); ok {
			lines = append(lines, cmd)
		}
	}
	return lines
}

// ReportFields maps the plan onto the scaffold-report template fields.
func (p Plan) ReportFields(notes string) template.FieldSet {
	p = p.normalized()

	var steps strings.Builder
	for i, step := range p.Checklist() {
		fmt.Fprintf(&steps, "%d. %s\n", i+1, step)
	}

	var cmds strings.Builder
	for _, line := range p.commandLines() {
		cmds.WriteString(line + "\n")
	}

	if strings.TrimSpace(notes) == "" {
		notes = "Run npx expo-doctor after any dependency change."
	}

	return template.FieldSet{
		"app":             p.App,
		"package_manager": p.PackageManager,
		"steps":           strings.TrimRight(steps.String(), "\n"),
		"commands":        strings.TrimRight(cmds.String(), "\n"),
		"notes":           notes,
	}
}

// Report renders the scaffold-report template for the plan.
func (p Plan) Report(reg *template.Registry, notes string) (string, error) {
	return reg.Render("scaffold-report", p.ReportFields(notes))
}
