package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(loginCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Checks that the configured credentials can log in.",
	Run: func(cmd *cobra.Command, args []string) {
		client := login(cmd.Context())
		_, hasToken := client.Session().Token()
		fmt.Printf("logged in as %s (session token: %v)\n", config.Email, hasToken)
	},
}
