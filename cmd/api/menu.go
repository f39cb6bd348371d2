package main

import (
	"fmt"
	"net/url"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Eyobiel-12/savannaeetcafe/internal/menu"
)

var menuFlags struct {
	q        string
	dietary  []string
	spice    []string
	price    []string
	category string
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Print the embedded menu through the filter engine",
	RunE: func(cmd *cobra.Command, args []string) error {
		values := url.Values{
			"q":        {menuFlags.q},
			"dietary":  menuFlags.dietary,
			"spice":    menuFlags.spice,
			"price":    menuFlags.price,
			"category": {menuFlags.category},
		}
		q, err := menu.ParseQuery(values)
		if err != nil {
			return err
		}

		repo, err := menu.NewStaticRepository()
		if err != nil {
			return err
		}

		result, err := menu.NewService(repo, nil).Search(cmd.Context(), q)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, d := range result.Dishes {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.ID, d.Name, d.Price, d.SpiceLevel)
		}
		fmt.Fprintf(w, "\n%d of %d dishes\n", result.Count, result.Total)
		return w.Flush()
	},
}

func init() {
	f := menuCmd.Flags()
	f.StringVar(&menuFlags.q, "q", "", "search text")
	f.StringSliceVar(&menuFlags.dietary, "dietary", nil, "vegetarian, vegan, gluten-free")
	f.StringSliceVar(&menuFlags.spice, "spice", nil, "mild, medium, spicy")
	f.StringSliceVar(&menuFlags.price, "price", nil, "under-15, 15-20, over-20")
	f.StringVar(&menuFlags.category, "category", "", "meat, vegetarian or all")
}
