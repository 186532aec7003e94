package combat

import "quest-chronicles/internal/character"

// Action is a player's choice for one turn.
type Action uint8

const (
	ActionInvalid Action = iota
	ActionAttack
	ActionAbility
	ActionEscape
)

func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionAbility:
		return "ability"
	case ActionEscape:
		return "escape"
	}
	return "invalid"
}

// ParseAction maps the menu keys 1-3 to actions. Anything else is invalid.
func ParseAction(key rune) Action {
	switch key {
	case '1':
		return ActionAttack
	case '2':
		return ActionAbility
	case '3':
		return ActionEscape
	}
	return ActionInvalid
}

// Status is what a Decider sees before choosing.
type Status struct {
	Turn      int
	Cooldown  int
	Character *character.Character
	Enemy     *Enemy
}

// Decider supplies the player's action once per turn. A front end blocks
// inside Decide until input arrives; tests script the answers.
type Decider interface {
	Decide(Status) Action
}

// AlwaysAttack is the fixed basic-attack policy.
type AlwaysAttack struct{}

func (AlwaysAttack) Decide(Status) Action { return ActionAttack }

// ScriptedDecider replays a fixed sequence of actions, then attacks.
type ScriptedDecider struct {
	Actions []Action
	next    int
}

func (d *ScriptedDecider) Decide(Status) Action {
	if d.next >= len(d.Actions) {
		return ActionAttack
	}
	a := d.Actions[d.next]
	d.next++
	return a
}

// DeciderFunc adapts a plain function to Decider.
type DeciderFunc func(Status) Action

func (f DeciderFunc) Decide(s Status) Action { return f(s) }
