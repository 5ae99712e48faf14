package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thatguystone/murmur/murmur"
)

func newSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <path> <timestamp> <value>",
		Short: "Write a single datapoint into a murmur database",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid timestamp %q: %w", args[1], err)
			}
			value, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[2], err)
			}

			db, err := murmur.Open(args[0])
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Set(ts, value); err != nil {
				return err
			}
			log.Debug().Uint64("timestamp", ts).Float64("value", value).Msg("set")
			return nil
		},
	}
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <path> <timestamp>",
		Short: "Read a single datapoint from a murmur database",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid timestamp %q: %w", args[1], err)
			}

			db, err := murmur.Open(args[0])
			if err != nil {
				return err
			}
			defer db.Close()

			v, err := db.Get(ts)
			if err != nil {
				return err
			}
			fmt.Println(v)
			return nil
		},
	}
}
