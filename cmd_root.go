package main

import (
	"github.com/spf13/cobra"
)

const version = "1.0.0"

func newRootCommand() *cobra.Command {
	var opts daemonOptions
	flagCommands := make(map[string]*string)

	cmd := &cobra.Command{
		Use:           "hotedge",
		Short:         "Run commands when the pointer hits a screen corner or edge",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.delaySet = cmd.Flags().Changed("delay")
			opts.flagCommands = make(map[string]string)
			for key, value := range flagCommands {
				if *value != "" {
					opts.flagCommands[key] = *value
				}
			}
			return runDaemon(cmd.Context(), opts)
		},
	}

	for _, key := range []string{"top-left", "top-right", "bottom-right", "bottom-left", "left", "top", "right", "bottom"} {
		value := new(string)
		flagCommands[key] = value
		cmd.Flags().StringVar(value, key, "", "set "+key+" command CMD")
	}
	cmd.Flags().BoolVarP(&opts.noBlocking, "no-blocking", "b", false, "do not wait until the child process exits")
	cmd.Flags().BoolVarP(&opts.useConfig, "use-config", "c", false, "commands from the config file override passed commands")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "print pointer positions and command calls")
	cmd.Flags().IntVarP(&opts.delayMs, "delay", "d", 0, "delay command execution for N milliseconds")

	cmd.AddCommand(newHistoryCommand())
	cmd.AddCommand(newZonesCommand())

	return cmd
}
