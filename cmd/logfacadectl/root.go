package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "logfacadectl",
	Short: "Drive the logfacade library from the command line",
	Long: `logfacadectl builds sinks and loggers with the logfacade library and
writes messages through them. It is useful for checking patterns, levels and
file sinks without writing a host program.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is ./logfacade.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func setDefaults() {
	viper.SetDefault("sink.kind", "stdout")
	viper.SetDefault("sink.color", true)
	viper.SetDefault("sink.max_size", 5*1024*1024)
	viper.SetDefault("sink.max_files", 3)
	viper.SetDefault("logger.name", "logfacadectl")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.bit_mask", ^uint64(0))
	viper.SetDefault("logger.flag", 0)
	viper.SetDefault("async.queue_size", 8192)
	viper.SetDefault("async.flush_interval", "0s")
}

func initConfig() {
	setDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("logfacade")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/logfacade")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("LOGFACADE")
	// LOGFACADE_SINK_KIND for sink.kind
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
