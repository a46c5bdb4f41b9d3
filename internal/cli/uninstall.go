package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"appin/internal/archive"
	"appin/internal/config"
	"appin/internal/installer"
	"appin/internal/state"
)

func newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall <name>...",
		Short: "Remove recorded installations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := state.Open(config.StatePath())
			if err != nil {
				return err
			}
			defer store.Close()

			inst := installer.New(archive.New(), confirmStdin, store)

			var failed int
			for _, name := range args {
				if err := inst.Uninstall(name); err != nil {
					fmt.Printf("%s %s: %v\n", red("✗"), name, err)
					failed++
					continue
				}
				fmt.Printf("%s %s\n", green("✓"), bold(name))
			}

			if failed > 0 {
				return fmt.Errorf("failed to uninstall %d application(s)", failed)
			}
			return nil
		},
	}
}
