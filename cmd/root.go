package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "intervu",
	Short: "Terminal interview practice",
	Long:  "Intervu — practice job interviews in your terminal: pick a role, answer AI-generated questions, get scored feedback.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("base-url", "", "Backend base URL (overrides INTERVU_BASE_URL)")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(rolesCmd)
	rootCmd.AddCommand(versionCmd)
}
