package commands

import (
	"github.com/spf13/cobra"

	"crashkit/internal/app"
)

var (
	baseDir string
	verbose bool
	appCtx  *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "crashkit",
		Short: "Inspect and maintain on-device crash-report storage",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.FromEnv()
			if err != nil {
				return err
			}
			if baseDir != "" {
				cfg.BaseDir = baseDir
			}
			if verbose {
				cfg.Verbose = true
			}

			appCtx, err = app.NewWire(cfg)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				appCtx.Close()
			}
		},
	}

	root.PersistentFlags().StringVar(&baseDir, "base", "", "storage base dir (default $CRASHKIT_BASE or $HOME)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level diagnostics")

	root.AddCommand(
		sessionsCmd(), filesCmd(), purgeCmd(),
		reportsCmd(), rmReportCmd(), trimCmd(),
		watchCmd(), migrateCmd(),
	)
	return root.Execute()
}
