/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/glottolab/lineate/common"
)

var verbosity int

var rootCmd = &cobra.Command{
	Use:     "lineate",
	Short:   "Recover reading order and block structure from extracted PDF text",
	Version: common.Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		common.SetVerbosity(verbosity)
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase the verbosity (can be repeated: -vvv)")
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(textCmd)
}

// initConfig lets an optional .lineate config file and LINEATE_*
// environment variables override flag defaults.
func initConfig() {
	viper.SetConfigName(".lineate")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetEnvPrefix("lineate")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
