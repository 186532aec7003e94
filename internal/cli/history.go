package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newHistoryCmd(a *app) *cobra.Command {
	var (
		limit int
		name  string
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent battles from the battle history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			recs, err := a.store().Battles()
			if err != nil {
				return err
			}
			if name != "" {
				kept := recs[:0]
				for _, r := range recs {
					if r.Character == name {
						kept = append(kept, r)
					}
				}
				recs = kept
			}
			if limit > 0 && len(recs) > limit {
				recs = recs[len(recs)-limit:]
			}
			out := cmd.OutOrStdout()
			if len(recs) == 0 {
				fmt.Fprintln(out, "No battles recorded.")
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TIME\tCHARACTER\tLEVEL\tENEMY\tOUTCOME\tTURNS\tXP\tGOLD")
			for _, r := range recs {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%d\t%d\t%d\n",
					r.Time.Local().Format("2006-01-02 15:04"), r.Character, r.Level,
					r.Enemy, r.Outcome, r.Turns, r.XPGained, r.GoldGained)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "show at most this many battles (0 for all)")
	cmd.Flags().StringVar(&name, "character", "", "only show battles of this character")
	return cmd
}
