package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "savanna",
	Short: "Habesha Savanna Eetcafé website API",
	Long:  `savanna serves the menu, reservation, gallery and contact API of the Habesha Savanna Eetcafé website, and offers a few operator commands for checking menu filters, reservation slots and translations.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml); env vars override it")

	rootCmd.AddCommand(serveCmd, slotsCmd, menuCmd, i18nCheckCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
