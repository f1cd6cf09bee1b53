package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/intervu/internal/session"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the offered interview roles",
	Run: func(cmd *cobra.Command, args []string) {
		for _, role := range session.Roles() {
			fmt.Println(role)
		}
	},
}
