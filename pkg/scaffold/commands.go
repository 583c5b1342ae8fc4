// Package scaffold holds the Expo app lifecycle reference: the canonical
// command table by stage, and checklist plans that feed the scaffold-report
// template.
package scaffold

import (
	"fmt"
	"strings"
)

// Stage groups commands by where they sit in the app lifecycle.
type Stage string

const (
	StageCreate  Stage = "create"
	StageDevelop Stage = "develop"
	StageBuild   Stage = "build"
	StageSubmit  Stage = "submit"
	StageUpdate  Stage = "update"
)

// Stages returns the lifecycle stages in order.
func Stages() []Stage {
	return []Stage{StageCreate, StageDevelop, StageBuild, StageSubmit, StageUpdate}
}

// Command is one entry in the reference table.
type Command struct {
	Stage   Stage
	Line    string
	Purpose string
}

// commands is the canonical reference, ordered by lifecycle.
var commands = []Command{
	{StageCreate, "npx create-expo-app@latest <name>", "Create a new Expo app from the default template."},
	{StageCreate, "npx create-expo-app@latest <name> --template blank-typescript", "Create a minimal TypeScript app."},
	{StageCreate, "npx expo install <package>", "Install a dependency at the version matching the SDK."},
	{StageDevelop, "npx expo start", "Start the development server."},
	{StageDevelop, "npx expo run:ios", "Build and run on the iOS simulator."},
	{StageDevelop, "npx expo run:android", "Build and run on an Android emulator."},
	{StageDevelop, "npx expo prebuild", "Generate native ios/ and android/ projects."},
	{StageDevelop, "npx expo lint", "Run the project linter."},
	{StageDevelop, "npx expo-doctor", "Diagnose dependency and config problems."},
	{StageBuild, "eas login", "Authenticate with Expo Application Services."},
	{StageBuild, "eas init", "Link the project to an EAS project id."},
	{StageBuild, "eas credentials", "Configure signing credentials per platform."},
	{StageBuild, "eas build --platform all", "Build release binaries for both stores."},
	{StageBuild, "npx expo export", "Export the JS bundle for self-hosting."},
	{StageSubmit, "eas submit --platform ios", "Upload the latest build to App Store Connect."},
	{StageSubmit, "eas submit --platform android", "Upload the latest build to Google Play."},
	{StageUpdate, "eas update", "Push an over-the-air JS update."},
}

// Commands returns the full reference table in lifecycle order. The slice is
// a copy.
func Commands() []Command {
	out := make([]Command, len(commands))
	copy(out, commands)
	return out
}

// ByStage returns the commands for one stage, in table order.
func ByStage(stage Stage) []Command {
	var out []Command
	for _, cmd := range commands {
		if cmd.Stage == stage {
			out = append(out, cmd)
		}
	}
	return out
}

// Lookup finds the first command whose line contains the query,
// case-insensitively.
func Lookup(query string) (Command, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return Command{}, fmt.Errorf("scaffold: query is required")
	}
	for _, cmd := range commands {
		if strings.Contains(strings.ToLower(cmd.Line), query) {
			return cmd, nil
		}
	}
	return Command{}, fmt.Errorf("scaffold: no command matches %q", query)
}

// ReferenceTable renders the command table as markdown.
func ReferenceTable() string {
	var b strings.Builder
	b.WriteString("| Stage | Command | Purpose |\n")
	b.WriteString("|-------|---------|--------|\n")
	for _, cmd := range commands {
		fmt.Fprintf(&b, "| %s | `%s` | %s |\n", cmd.Stage, cmd.Line, cmd.Purpose)
	}
	return b.String()
}
