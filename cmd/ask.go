package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/intervu/internal/session"
)

// askCmd fetches a single question without starting the TUI. Handy for
// smoke-testing the backend connection.
var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Fetch one interview question and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")
		if !session.ValidRole(role) {
			return fmt.Errorf("unknown role %q; run 'intervu roles' for the list", role)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		gw := buildGateway(cfg, zerolog.Nop())
		q, err := gw.FetchQuestion(cmd.Context(), role)
		if err != nil {
			return err
		}

		fmt.Printf("Question #%d [%s] for %s\n\n", q.ID, q.Difficulty, q.Role)
		fmt.Println(q.QuestionText)
		if q.Hints != "" {
			fmt.Println("\nHint:", q.Hints)
		}
		return nil
	},
}

func init() {
	askCmd.Flags().String("role", "Backend Developer", "Interview role to fetch a question for")
}
