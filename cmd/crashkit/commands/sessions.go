package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"crashkit/internal/domain"
)

func sessionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List open session ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := appCtx.Sessions.List()
			if len(ids) == 0 {
				fmt.Println("No open sessions.")
				return nil
			}
			for _, id := range ids {
				line := id
				if meta, ok, err := appCtx.Sessions.Meta(domain.SessionID(id)); err == nil && ok {
					line = fmt.Sprintf("%s  started %s", id, meta.StartedAt.Format("2006-01-02 15:04:05"))
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func filesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files <session-id>",
		Short: "List the files of one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := appCtx.Sessions.Files(domain.SessionID(args[0]), nil)
			if len(paths) == 0 {
				fmt.Println("No files.")
				return nil
			}
			for _, p := range paths {
				fmt.Println(filepath.Base(p))
			}
			return nil
		},
	}
}

func purgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge <session-id>",
		Short: "Delete a session's working directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !appCtx.Sessions.Discard(domain.SessionID(args[0])) {
				return fmt.Errorf("no session directory for %q", args[0])
			}
			fmt.Printf("Purged session %s.\n", args[0])
			return nil
		},
	}
}
