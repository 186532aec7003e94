package cli

import (
	"fmt"
	"quest-chronicles/internal/shop"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newItemsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "items",
		Short: "List the item catalog with buy and sell prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := a.catalog()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tTYPE\tEFFECT\tBUY\tSELL")
			for _, it := range cat.ShopStock() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\n",
					it.ID, it.DisplayName(), it.Type, it.Effect, it.Cost, shop.SellPrice(it))
			}
			return tw.Flush()
		},
	}
}

func newQuestsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "quests",
		Short: "List the quest catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := a.catalog()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tLEVEL\tREQUIRES\tXP\tGOLD")
			for _, q := range cat.Quests() {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\t%d\n",
					q.ID, q.Title, q.RequiredLevel, q.Prerequisite, q.RewardXP, q.RewardGold)
			}
			return tw.Flush()
		},
	}
}
