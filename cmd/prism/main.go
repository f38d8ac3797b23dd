package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/prism-finance/prism/internal/interfaces/cli/migrate"
	"github.com/prism-finance/prism/internal/interfaces/cli/seed"
	"github.com/prism-finance/prism/internal/interfaces/cli/server"
	"github.com/prism-finance/prism/internal/interfaces/cli/user"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "prism",
		Short: "Prism - supplier management backend",
		Long:  `Prism manages suppliers, their compliance documents and the contracts generated for them from company templates.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		user.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
