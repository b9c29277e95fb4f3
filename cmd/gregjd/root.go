package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "gregjd",
	Short: "Convert between proleptic Gregorian dates and Julian Dates",
	Long: "gregjd converts calendar dates to Julian Dates and back using 400-year\n" +
		"cycle counting, with no restriction on the year range.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .gregjd.yaml)")
	rootCmd.PersistentFlags().Int("digits", 6, "fractional digits for printed Julian Dates")
	_ = viper.BindPFlag("digits", rootCmd.PersistentFlags().Lookup("digits"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".gregjd")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("GREGJD")
	viper.AutomaticEnv()

	// It's fine if no config file is found; defaults apply.
	_ = viper.ReadInConfig()
}
