package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hotedge/command"
	"hotedge/config"
	"hotedge/zone"
)

func newZonesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "zones",
		Short: "Show the zone bindings from the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			raw, err := resolveCommands(nil, cfg.Commands, true)
			if err != nil {
				return err
			}
			bindings, err := command.NewBindings(raw)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, zone.NumBindable)
			for _, z := range zone.Zones() {
				desc := bindings.Describe(z)
				if desc == "" {
					desc = "(unbound)"
				}
				rows = append(rows, []string{z.String(), desc})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Zone", "Command"}, rows))
			return nil
		},
	}
}
