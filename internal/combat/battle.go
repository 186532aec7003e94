// Package combat runs turn-based battles between one character and one enemy.
//
// A Battle moves Inactive -> Active -> {PlayerWon, EnemyWon, Escaped}. Start
// runs the whole fight, querying a Decider each turn; PlayerTurn, EnemyTurn
// and CheckEnd expose the individual steps.
package combat

import (
	"fmt"
	"log/slog"
	"math/rand"
	"quest-chronicles/internal/character"
	"quest-chronicles/internal/effect"
	"quest-chronicles/internal/gameerr"
	"quest-chronicles/internal/stat"
	"time"
)

// State is the battle lifecycle position.
type State uint8

const (
	Inactive State = iota
	Active
	PlayerWon
	EnemyWon
	Escaped
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case PlayerWon:
		return "player_won"
	case EnemyWon:
		return "enemy_won"
	case Escaped:
		return "escaped"
	}
	return "inactive"
}

// Terminal reports whether the battle is over.
func (s State) Terminal() bool { return s >= PlayerWon }

const (
	// AbilityCooldown is the number of turns a special ability stays locked.
	AbilityCooldown = 3
	// HealAmount is what the Cleric's Heal restores.
	HealAmount = 30
	// EscapeChance is the probability a run attempt succeeds.
	EscapeChance = 0.5
	// CriticalChance is the probability a Rogue's Critical Strike lands.
	CriticalChance = 0.5
)

var healEffect = stat.Effect{Stat: stat.Health, Value: HealAmount}

// Rewarder applies victory rewards. *character.Manager satisfies it.
type Rewarder interface {
	GainExperience(c *character.Character, xp int) []int
	AddGold(c *character.Character, amount int)
}

type directRewarder struct{}

func (directRewarder) GainExperience(c *character.Character, xp int) []int {
	return c.GainExperience(xp)
}

func (directRewarder) AddGold(c *character.Character, amount int) { c.AddGold(amount) }

// Result summarises a finished battle.
type Result struct {
	Outcome      State
	XPGained     int
	GoldGained   int
	Turns        int
	LevelsGained []int
}

// Report describes one player action.
type Report struct {
	Action  Action
	Damage  int  // damage dealt to the enemy
	Healed  int  // health restored to the character
	Missed  bool // a chance-based ability failed
	Escaped bool
	Message string
}

// Battle is a single encounter. It is not safe for concurrent use.
type Battle struct {
	char  *character.Character
	enemy *Enemy

	state    State
	turn     int
	cooldown int
	result   Result

	rng     *rand.Rand
	decider Decider
	rewards Rewarder
	effects *effect.Engine
	onLog   func(string)
	log     *slog.Logger
}

// Option configures a Battle.
type Option func(*Battle)

// WithRand sets the random source used for escape and critical rolls.
func WithRand(rng *rand.Rand) Option { return func(b *Battle) { b.rng = rng } }

// WithDecider sets who picks the player's actions. Default: AlwaysAttack.
func WithDecider(d Decider) Option { return func(b *Battle) { b.decider = d } }

// WithRewarder routes victory rewards through r, usually a character.Manager.
func WithRewarder(r Rewarder) Option { return func(b *Battle) { b.rewards = r } }

// WithEffects sets the engine used for healing.
func WithEffects(en *effect.Engine) Option { return func(b *Battle) { b.effects = en } }

// WithBattleLog receives each line of the player-facing battle log.
func WithBattleLog(fn func(string)) Option { return func(b *Battle) { b.onLog = fn } }

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option { return func(b *Battle) { b.log = l } }

// NewBattle prepares an Inactive battle between c and e.
func NewBattle(c *character.Character, e *Enemy, opts ...Option) *Battle {
	b := &Battle{char: c, enemy: e}
	for _, o := range opts {
		o(b)
	}
	if b.log == nil {
		b.log = slog.Default()
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if b.decider == nil {
		b.decider = AlwaysAttack{}
	}
	if b.rewards == nil {
		b.rewards = directRewarder{}
	}
	if b.effects == nil {
		b.effects = effect.NewEngine(b.log)
	}
	if b.onLog == nil {
		b.onLog = func(string) {}
	}
	return b
}

func (b *Battle) State() State { return b.state }

func (b *Battle) Turn() int { return b.turn }

// Cooldown is the number of turns before the ability can be used again.
func (b *Battle) Cooldown() int { return b.cooldown }

func (b *Battle) Enemy() *Enemy { return b.enemy }

func (b *Battle) Character() *character.Character { return b.char }

// Result returns the outcome so far. It is complete once State is terminal.
func (b *Battle) Result() Result {
	r := b.result
	r.Outcome = b.state
	r.Turns = b.turn
	return r
}

// Status is the snapshot handed to the Decider.
func (b *Battle) Status() Status {
	return Status{Turn: b.turn, Cooldown: b.cooldown, Character: b.char, Enemy: b.enemy}
}

func (b *Battle) emit(format string, args ...any) {
	b.onLog(fmt.Sprintf(format, args...))
}

// Begin moves the battle to Active. A dead character cannot fight; the
// battle then stays Inactive.
func (b *Battle) Begin() error {
	if b.state != Inactive {
		return gameerr.New(gameerr.KindCombatNotActive, "battle already %s", b.state)
	}
	if b.char.IsDead() {
		return gameerr.New(gameerr.KindCharacterDead, "cannot start battle: %s is dead", b.char.Name)
	}
	b.state = Active
	b.turn = 1
	b.cooldown = 0
	b.log.Info("battle started", "character", b.char.Name, "class", b.char.Class,
		"level", b.char.Level, "enemy", b.enemy.Type)
	b.emit("A wild %s appears!", b.enemy.Name)
	return nil
}

// Start runs the battle to completion.
func (b *Battle) Start() (Result, error) {
	if err := b.Begin(); err != nil {
		return Result{}, err
	}
	for b.state == Active {
		b.Round()
	}
	return b.Result(), nil
}

// Round plays one full turn: player, end check, enemy, end check, then the
// turn counter advances and the cooldown ticks down.
func (b *Battle) Round() {
	if b.state != Active {
		return
	}
	b.emit("--- Turn %d ---", b.turn)
	if _, err := b.PlayerTurn(b.decider.Decide(b.Status())); err != nil {
		// cooldown refusals cost the turn; the enemy still acts
		b.emit("%v", err)
	}
	if b.state != Active || b.CheckEnd() {
		return
	}
	if _, err := b.EnemyTurn(); err != nil {
		return
	}
	if b.CheckEnd() {
		return
	}
	b.turn++
	if b.cooldown > 0 {
		b.cooldown--
	}
}

// PlayerTurn resolves one player action. An unrecognised action wastes the
// turn. Using the ability while it is cooling down fails with
// AbilityOnCooldown and changes nothing.
func (b *Battle) PlayerTurn(a Action) (Report, error) {
	if b.state != Active {
		return Report{}, gameerr.New(gameerr.KindCombatNotActive, "player turn outside an active battle")
	}
	r := Report{Action: a}
	switch a {
	case ActionAttack:
		r.Damage = b.enemy.takeDamage(Damage(b.char.Strength, b.enemy.Strength))
		r.Message = fmt.Sprintf("You attack! The %s takes %d damage.", b.enemy.Name, r.Damage)
	case ActionAbility:
		if b.cooldown > 0 {
			return Report{Action: a}, gameerr.New(gameerr.KindAbilityOnCooldown,
				"ability on cooldown, %d turns left", b.cooldown)
		}
		var ok bool
		r, ok = b.useAbility()
		if ok {
			b.cooldown = AbilityCooldown
		}
	case ActionEscape:
		if b.rng.Float64() < EscapeChance {
			r.Escaped = true
			r.Message = "You successfully escaped!"
			b.state = Escaped
		} else {
			r.Message = "You failed to escape!"
		}
	default:
		r.Action = ActionInvalid
		r.Message = "Invalid choice. You hesitate and lose your turn."
	}
	b.emit("%s", r.Message)
	if r.Escaped {
		b.finish()
	}
	return r, nil
}

// useAbility fires the class ability. ok is false when the class has none,
// in which case no cooldown is set.
func (b *Battle) useAbility() (r Report, ok bool) {
	c, e := b.char, b.enemy
	r.Action = ActionAbility
	switch c.Class {
	case character.Warrior:
		r.Damage = e.takeDamage(scaledDamage(c.Strength, 2, e.Strength))
		r.Message = fmt.Sprintf("You use Power Strike for %d damage!", r.Damage)
	case character.Mage:
		r.Damage = e.takeDamage(scaledDamage(c.Magic, 2, e.Magic))
		r.Message = fmt.Sprintf("You cast Fireball for %d damage!", r.Damage)
	case character.Rogue:
		if b.rng.Float64() < CriticalChance {
			r.Damage = e.takeDamage(scaledDamage(c.Strength, 3, e.Strength))
			r.Message = fmt.Sprintf("CRITICAL STRIKE! You deal %d damage!", r.Damage)
		} else {
			r.Missed = true
			r.Message = "Your critical strike missed..."
		}
	case character.Cleric:
		out := b.effects.Apply(c, healEffect)
		r.Healed = out.Delta
		r.Message = fmt.Sprintf("You use Heal, restoring %d HP.", r.Healed)
	default:
		r.Message = "You have no special ability."
		return r, false
	}
	return r, true
}

// EnemyTurn performs the enemy's basic attack.
func (b *Battle) EnemyTurn() (int, error) {
	if b.state != Active {
		return 0, gameerr.New(gameerr.KindCombatNotActive, "enemy turn outside an active battle")
	}
	dmg := b.char.TakeDamage(Damage(b.enemy.Strength, b.char.Strength))
	b.emit("The %s attacks! You take %d damage.", b.enemy.Name, dmg)
	return dmg, nil
}

// CheckEnd moves the battle to a terminal state when either side is down.
// Character death is checked first. It reports whether the battle is over.
func (b *Battle) CheckEnd() bool {
	if b.state != Active {
		return b.state.Terminal()
	}
	switch {
	case b.char.Health <= 0:
		b.state = EnemyWon
	case b.enemy.Health <= 0:
		b.state = PlayerWon
	default:
		return false
	}
	b.finish()
	return true
}

// finish applies rewards and writes the closing log line.
func (b *Battle) finish() {
	switch b.state {
	case PlayerWon:
		b.emit("You defeated the %s!", b.enemy.Name)
		b.result.XPGained = b.enemy.XPReward
		b.result.GoldGained = b.enemy.GoldReward
		b.result.LevelsGained = b.rewards.GainExperience(b.char, b.enemy.XPReward)
		b.rewards.AddGold(b.char, b.enemy.GoldReward)
		b.emit("You gain %d XP and %d gold.", b.enemy.XPReward, b.enemy.GoldReward)
		for _, lvl := range b.result.LevelsGained {
			b.emit("Level up! You are now level %d.", lvl)
		}
	case EnemyWon:
		b.emit("You have been defeated...")
	case Escaped:
		b.emit("You fled from the battle.")
	}
	b.log.Info("battle ended", "character", b.char.Name, "enemy", b.enemy.Type,
		"outcome", b.state, "turns", b.turn)
}
