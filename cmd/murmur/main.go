// Command murmur is the CLI front-end for the murmur fixed-size,
// round-robin time series database. It is an external collaborator to the
// core library (github.com/thatguystone/murmur/murmur): it owns logging,
// configuration, and process exit codes; the core library stays a pure,
// synchronous package with no knowledge of any of that.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/thatguystone/murmur/murmur"
)

var (
	flagVerbose bool
	flagQuiet   bool
	flagConfig  string

	log zerolog.Logger
)

func main() {
	root := &cobra.Command{
		Use:   "murmur",
		Short: "A fixed-size, round-robin time series database",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = newLogger(flagVerbose, flagQuiet)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "only log errors")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a murmur.yaml config file")

	root.AddCommand(newCreateCommand())
	root.AddCommand(newDumpCommand())
	root.AddCommand(newInfoCommand())
	root.AddCommand(newSetCommand())
	root.AddCommand(newGetCommand())

	// Argument and flag errors are returned before PersistentPreRun runs,
	// so a logger must exist before Execute to report them.
	log = newLogger(false, false)
	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func parseAggregation(name string) (murmur.AggregationMethod, error) {
	switch name {
	case "average", "avg":
		return murmur.Average, nil
	case "sum":
		return murmur.Sum, nil
	case "last":
		return murmur.Last, nil
	case "max":
		return murmur.Max, nil
	case "min":
		return murmur.Min, nil
	default:
		return 0, fmt.Errorf("unknown aggregation method %q", name)
	}
}
