package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hotedge/config"
	"hotedge/storage"
)

func newHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently fired triggers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.Dir()
			if err != nil {
				return err
			}
			db, err := storage.Open(dir)
			if err != nil {
				return err
			}
			defer db.Close()

			triggers, err := db.GetTriggers(limit, 0)
			if err != nil {
				return err
			}
			if len(triggers) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no triggers recorded")
				return nil
			}

			rows := make([][]string, 0, len(triggers))
			for _, t := range triggers {
				outcome := "ok"
				if !t.Success {
					outcome = t.ErrorMessage
				}
				rows = append(rows, []string{
					t.Timestamp.Format("2006-01-02 15:04:05"),
					t.Zone,
					strconv.Itoa(t.X) + "," + strconv.Itoa(t.Y),
					t.Command,
					outcome,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Time", "Zone", "Position", "Command", "Outcome"}, rows))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries to show")
	return cmd
}
