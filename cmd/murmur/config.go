package main

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// defaults holds the CLI's configurable defaults for `murmur create`,
// loaded from (in increasing priority) built-in values, a config file, and
// command-line flags. The core library never reads this: Create takes
// explicit Go values.
type defaults struct {
	Aggregation string
	XFilesFactor uint8
	Sparse       bool
}

func loadDefaults(configPath string) (defaults, error) {
	v := viper.New()
	v.SetDefault("aggregation", "average")
	v.SetDefault("xFilesFactor", 50)
	v.SetDefault("sparse", false)

	v.SetEnvPrefix("murmur")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configPath == "" {
		configPath = os.Getenv("MURMUR_CONFIG")
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return defaults{}, err
		}
	} else {
		v.SetConfigName("murmur")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
		// A missing optional config file is not an error.
		_ = v.ReadInConfig()
	}

	return defaults{
		Aggregation:  v.GetString("aggregation"),
		XFilesFactor: uint8(v.GetUint("xFilesFactor")),
		Sparse:       v.GetBool("sparse"),
	}, nil
}
