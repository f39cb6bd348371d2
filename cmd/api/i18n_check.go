package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Eyobiel-12/savannaeetcafe/internal/i18n"
)

var i18nCheckCmd = &cobra.Command{
	Use:   "i18n-check",
	Short: "Verify every locale defines every translation key",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := i18n.Load(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d keys complete in %v\n", len(i18n.Keys()), i18n.Supported)
		return nil
	},
}
