// Command skillgen renders built-in document templates, manages skill
// documents, and browses the design aesthetics catalog.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skillgen/skillgen/internal/ui"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "skillgen",
	Short: "Template-driven generator for review comments, scaffolds, and design briefs",
	Long: `skillgen renders structured markdown documents from built-in templates:
PR review comments, issue reports, Expo scaffold checklists, and design
briefs drawn from a catalog of one hundred aesthetics. It also authors and
installs SKILL.md documents for assistant tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			log.SetLevel(log.DebugLevel)
			log.Debug("debug logging enabled")
		}
		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			ui.SetQuiet(true)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the skillgen version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("skillgen " + version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .skillgen.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress decorative output")

	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".skillgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("SKILLGEN")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		ui.PrintError("%v", err)
		os.Exit(1)
	}
}
