package main

import (
	"fmt"

	"github.com/Station-Manager/logfacade"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the log levels and their numeric values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		for l := logfacade.LevelTrace; l <= logfacade.LevelOff; l++ {
			if _, err := fmt.Fprintf(out, "%d\t%s\n", uint32(l), l); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(levelsCmd)
}
