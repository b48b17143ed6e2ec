package commands

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Stream report arrivals until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := appCtx.NewWatcher()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := w.Start(ctx); err != nil {
				return err
			}
			defer w.Stop()

			fmt.Println("Watching for prepared reports (Ctrl-C to stop)...")
			for {
				select {
				case <-ctx.Done():
					return nil
				case rep, ok := <-w.Reports():
					if !ok {
						return nil
					}
					fmt.Printf("%s  %s  %d B  %s\n",
						rep.SessionID, rep.Kind, rep.Size, rep.Fingerprint)
				}
			}
		},
	}
}
