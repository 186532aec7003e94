package cli

import (
	"quest-chronicles/internal/game"

	"github.com/spf13/cobra"
)

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start the game in the terminal",
		Args:  cobra.NoArgs,
		RunE:  a.runPlay,
	}
}

func (a *app) runPlay(cmd *cobra.Command, _ []string) error {
	cat, err := a.catalog()
	if err != nil {
		return err
	}
	g, err := game.New(game.Deps{
		Catalog:    cat,
		Store:      a.store(),
		Logger:     a.log,
		Rand:       a.rand(),
		ReviveCost: a.cfg.ReviveCostPerLevel,
	})
	if err != nil {
		return err
	}
	a.log.Info("game started", "save_dir", a.cfg.SaveDir)
	g.Run()
	return nil
}
