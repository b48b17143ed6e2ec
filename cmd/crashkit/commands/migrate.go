package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Remove the legacy unversioned storage layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx.Store.CleanupLegacyFiles()
			fmt.Println("Legacy cleanup done.")
			return nil
		},
	}
}
