package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thatguystone/murmur/murmur"
)

func newDumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <path>",
		Short: "Dump every stored point in a murmur database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := murmur.Open(args[0])
			if err != nil {
				return err
			}
			defer db.Close()

			printInfo(db.Info())
			fmt.Println()

			return db.Dump(func(dp murmur.DumpPoint) error {
				_, err := fmt.Fprintf(os.Stdout, "%d = %v\n", dp.Point.Interval, dp.Point.Value)
				return err
			})
		},
	}
}
