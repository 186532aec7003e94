// Package cli wires the cobra command tree: play, simulate, items, quests,
// saves and history.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"quest-chronicles/internal/catalog"
	"quest-chronicles/internal/config"
	"quest-chronicles/internal/store"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app is the state shared by every subcommand once config is resolved.
type app struct {
	v      *viper.Viper
	opts   config.Options
	cfg    config.Config
	log    *slog.Logger
	closer io.Closer
}

// NewRootCmd builds the questchron command tree. Running it with no
// subcommand starts the game.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}
	root := &cobra.Command{
		Use:   "questchron",
		Short: "Quest Chronicles, a terminal role-playing game",
		Long: `Create a hero, fight monsters, take on quests and trade at the shop.
Characters are saved as YAML files in the save directory.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
		RunE:               a.runPlay,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.ConfigFile, "config", "", "config file (default: questchron.yaml in . or the save dir)")
	flags.StringVar(&a.opts.EnvFile, "env-file", "", "dotenv file to load (default: .env)")
	flags.String("save-dir", "", "directory for character saves and battle history")
	flags.String("data-dir", "", "directory with items.yaml/quests.yaml overriding the built-in catalog")
	flags.String("log-file", "", "write logs to this file")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.Int64("seed", 0, "random seed; 0 picks one from the clock")
	for key, name := range map[string]string{
		"save_dir":  "save-dir",
		"data_dir":  "data-dir",
		"log_file":  "log-file",
		"log_level": "log-level",
		"seed":      "seed",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(name))
	}

	root.AddCommand(
		newPlayCmd(a),
		newSimulateCmd(a),
		newItemsCmd(a),
		newQuestsCmd(a),
		newSavesCmd(a),
		newHistoryCmd(a),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) setup(*cobra.Command, []string) error {
	cfg, err := config.Load(a.v, a.opts)
	if err != nil {
		return err
	}
	logger, closer, err := cfg.Logger()
	if err != nil {
		return err
	}
	a.cfg, a.log, a.closer = cfg, logger, closer
	a.log.Debug("config loaded", "save_dir", cfg.SaveDir, "data_dir", cfg.DataDir, "seed", cfg.Seed)
	return nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func (a *app) catalog() (*catalog.Catalog, error) {
	cat, err := catalog.Load(a.cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

func (a *app) store() *store.Store {
	return store.New(a.cfg.SaveDir, a.log)
}

// rand returns a generator seeded from the config, or from the clock when
// the seed is zero.
func (a *app) rand() *rand.Rand {
	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
