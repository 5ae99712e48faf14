package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thatguystone/murmur/murmur"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <path>",
		Short: "Print header information about a murmur database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := murmur.Open(args[0])
			if err != nil {
				return err
			}
			defer db.Close()

			printInfo(db.Info())
			return nil
		},
	}
}

func printInfo(info murmur.Info) {
	fmt.Printf("Max data age: %d seconds\n", info.MaxRetention)
	fmt.Printf("Accumulation factor: %d\n", info.XFilesFactor)
	fmt.Printf("Aggregation method: %s\n", info.Aggregation)
	fmt.Printf("Number of archives: %d\n", len(info.Archives))
	fmt.Println()

	for _, a := range info.Archives {
		fmt.Printf("Archive %d:\n", a.Index)
		fmt.Printf("  Seconds per point: %d\n", a.SecondsPerPoint)
		fmt.Printf("  Points: %d\n", a.Points)
		fmt.Printf("  Retention: %d seconds\n", a.Retention)
		fmt.Printf("  Size: %d bytes\n", a.Size)
		fmt.Println()
	}
}
