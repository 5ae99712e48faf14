package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thatguystone/murmur/murmur"
)

func newCreateCommand() *cobra.Command {
	var (
		aggregationFlag string
		xffFlag         uint8
		sparseFlag      bool
	)

	cmd := &cobra.Command{
		Use:   "create <path> <spec>...",
		Short: "Create a new murmur database",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			specs := args[1:]

			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%w: %s", murmur.ErrAlreadyExists, path)
			} else if !os.IsNotExist(err) {
				return fmt.Errorf("checking %s: %w", path, err)
			}

			def, err := loadDefaults(flagConfig)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if !cmd.Flags().Changed("aggregation") {
				aggregationFlag = def.Aggregation
			}
			if !cmd.Flags().Changed("xff") {
				xffFlag = def.XFilesFactor
			}
			if !cmd.Flags().Changed("sparse") {
				sparseFlag = def.Sparse
			}

			aggregation, err := parseAggregation(aggregationFlag)
			if err != nil {
				return err
			}

			archives, err := murmur.ParseSpecs(specs)
			if err != nil {
				return err
			}

			if err := murmur.Create(path, archives, aggregation, xffFlag, sparseFlag); err != nil {
				return err
			}

			log.Info().Str("path", path).Int("archives", len(archives)).Msg("created database")
			return nil
		},
	}

	cmd.Flags().StringVar(&aggregationFlag, "aggregation", "average", "aggregation method: average, sum, last, max, min")
	cmd.Flags().Uint8Var(&xffFlag, "xff", 50, "x-files-factor, 0-100")
	cmd.Flags().BoolVar(&sparseFlag, "sparse", false, "punch a sparse hole instead of physically allocating archive data")

	return cmd
}
