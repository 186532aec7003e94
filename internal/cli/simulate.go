package cli

import (
	"fmt"
	"io"
	"quest-chronicles/internal/character"
	"quest-chronicles/internal/combat"

	"github.com/spf13/cobra"
)

type simulateFlags struct {
	class   string
	level   int
	enemy   string
	actions string
	runs    int
}

func newSimulateCmd(a *app) *cobra.Command {
	var f simulateFlags
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run headless battles and print the outcome",
		Long: `Fights a fresh character against an enemy without the terminal UI.
With --runs 1 the full battle log is printed; with more runs only the
tally is shown. --actions replays menu keys (e.g. "1213"), then attacks.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSimulate(cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringVar(&f.class, "class", string(character.Warrior), "character class")
	cmd.Flags().IntVar(&f.level, "level", 1, "character level")
	cmd.Flags().StringVar(&f.enemy, "enemy", "", "goblin, orc or dragon (default: picked by level)")
	cmd.Flags().StringVar(&f.actions, "actions", "", "scripted menu keys, 1=attack 2=ability 3=run")
	cmd.Flags().IntVar(&f.runs, "runs", 1, "number of battles to fight")
	return cmd
}

// simCharacter builds a character of class grown to level.
func simCharacter(class character.Class, level int) (*character.Character, error) {
	c, err := character.New("Simulant", class)
	if err != nil {
		return nil, err
	}
	for c.Level < level {
		c.GainExperience(c.XPToNextLevel() - c.Experience)
	}
	return c, nil
}

func (a *app) runSimulate(w io.Writer, f simulateFlags) error {
	class, err := character.ParseClass(f.class)
	if err != nil {
		return err
	}
	if f.level < 1 {
		return fmt.Errorf("level must be at least 1, got %d", f.level)
	}
	if f.runs < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", f.runs)
	}
	enemyType := f.enemy
	if enemyType == "" {
		enemyType = combat.EnemyTypeForLevel(f.level)
	}
	if _, err := combat.CreateEnemy(enemyType); err != nil {
		return err
	}

	rng := a.rand()
	tally := make(map[combat.State]int)
	totalTurns := 0
	for run := 0; run < f.runs; run++ {
		c, err := simCharacter(class, f.level)
		if err != nil {
			return err
		}
		enemy, _ := combat.CreateEnemy(enemyType)

		var decider combat.Decider = combat.AlwaysAttack{}
		if f.actions != "" {
			script := &combat.ScriptedDecider{}
			for _, r := range f.actions {
				script.Actions = append(script.Actions, combat.ParseAction(r))
			}
			decider = script
		}
		opts := []combat.Option{
			combat.WithRand(rng),
			combat.WithDecider(decider),
			combat.WithLogger(a.log),
		}
		if f.runs == 1 {
			opts = append(opts, combat.WithBattleLog(func(line string) { fmt.Fprintln(w, line) }))
		}
		res, err := combat.NewBattle(c, enemy, opts...).Start()
		if err != nil {
			return err
		}
		tally[res.Outcome]++
		totalTurns += res.Turns
		if f.runs == 1 {
			fmt.Fprintf(w, "\nOutcome: %s in %d turns (+%d XP, +%d gold). %s HP %d/%d\n",
				res.Outcome, res.Turns, res.XPGained, res.GoldGained, c.Name, c.Health, c.MaxHealth)
		}
	}
	if f.runs > 1 {
		fmt.Fprintf(w, "Level %d %s vs %s, %d battles\n", f.level, class, enemyType, f.runs)
		fmt.Fprintf(w, "won: %d  lost: %d  escaped: %d  avg turns: %.1f\n",
			tally[combat.PlayerWon], tally[combat.EnemyWon], tally[combat.Escaped],
			float64(totalTurns)/float64(f.runs))
	}
	return nil
}
