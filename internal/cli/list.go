package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"appin/internal/config"
	"appin/internal/state"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded installations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := state.Open(config.StatePath())
			if err != nil {
				return err
			}
			defer store.Close()

			recs, err := store.List()
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				fmt.Println("No applications installed")
				return nil
			}

			for _, rec := range recs {
				line := fmt.Sprintf("%s %s", green("✓"), bold(rec.Name))
				if rec.Version != "" {
					line += dim("-" + rec.Version)
				}
				fmt.Println(line)
				fmt.Printf("  %s %s\n", cyan("path:"), rec.Path)
				fmt.Printf("  %s %s\n", cyan("installed:"), rec.InstalledAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}
