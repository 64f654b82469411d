package main

import (
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose bool
	logger
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "agaricus",
		Short: "agaricus is a tool to grow ID3 decision trees",
		Long:  `A tool to grow ID3 decision trees from categorical data such as the mushroom records, evaluate them, and use them to classify cases`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		config.logger = newLogger(config.verbose)
	}
	rootCmd.AddCommand(versionCmd(), growCmd(config), predictCmd(config))
	return rootCmd
}
