// Package quest tracks which catalog quests a character has taken on and
// finished, and pays out their rewards.
package quest

import (
	"fmt"
	"quest-chronicles/internal/catalog"
	"quest-chronicles/internal/character"
	"quest-chronicles/internal/gameerr"
	"slices"
)

// Rewarder pays quest rewards. *character.Manager satisfies it.
type Rewarder interface {
	GainExperience(c *character.Character, xp int) []int
	AddGold(c *character.Character, amount int)
}

type plainRewarder struct{}

func (plainRewarder) GainExperience(c *character.Character, xp int) []int {
	return c.GainExperience(xp)
}

func (plainRewarder) AddGold(c *character.Character, amount int) { c.AddGold(amount) }

// Tracker applies quest-log operations against a catalog.
type Tracker struct {
	cat     *catalog.Catalog
	rewards Rewarder
}

// NewTracker returns a Tracker. A nil rewarder credits the character directly.
func NewTracker(cat *catalog.Catalog, r Rewarder) *Tracker {
	if r == nil {
		r = plainRewarder{}
	}
	return &Tracker{cat: cat, rewards: r}
}

// Completion describes a finished quest.
type Completion struct {
	Quest        catalog.Quest
	LevelsGained []int
	Summary      string
}

// CanAccept reports why c may not take q, or nil when it may.
func (t *Tracker) CanAccept(c *character.Character, q catalog.Quest) error {
	switch {
	case slices.Contains(c.ActiveQuests, q.ID):
		return gameerr.New(gameerr.KindRequirementNotMet, "%q is already active", q.Title)
	case slices.Contains(c.CompletedQuests, q.ID):
		return gameerr.New(gameerr.KindRequirementNotMet, "%q is already completed", q.Title)
	case c.Level < q.RequiredLevel:
		return gameerr.New(gameerr.KindRequirementNotMet,
			"%q requires level %d (you are level %d)", q.Title, q.RequiredLevel, c.Level)
	case q.Prerequisite != "" && q.Prerequisite != catalog.NoPrerequisite &&
		!slices.Contains(c.CompletedQuests, q.Prerequisite):
		return gameerr.New(gameerr.KindRequirementNotMet,
			"%q requires completing %s first", q.Title, q.Prerequisite)
	}
	return nil
}

// Accept adds questID to the active list.
func (t *Tracker) Accept(c *character.Character, questID string) (string, error) {
	q, err := t.cat.Quest(questID)
	if err != nil {
		return "", err
	}
	if err := t.CanAccept(c, q); err != nil {
		return "", err
	}
	c.ActiveQuests = append(c.ActiveQuests, q.ID)
	return fmt.Sprintf("Quest accepted: %s.", q.Title), nil
}

// Abandon drops an active quest without reward.
func (t *Tracker) Abandon(c *character.Character, questID string) (string, error) {
	i := slices.Index(c.ActiveQuests, questID)
	if i < 0 {
		return "", gameerr.New(gameerr.KindNotFound, "quest %s is not active", questID)
	}
	c.ActiveQuests = slices.Delete(slices.Clone(c.ActiveQuests), i, i+1)
	title := questID
	if q, err := t.cat.Quest(questID); err == nil {
		title = q.Title
	}
	return fmt.Sprintf("Quest abandoned: %s.", title), nil
}

// Complete moves an active quest to the completed list and grants its
// experience and gold.
func (t *Tracker) Complete(c *character.Character, questID string) (Completion, error) {
	i := slices.Index(c.ActiveQuests, questID)
	if i < 0 {
		return Completion{}, gameerr.New(gameerr.KindNotFound, "quest %s is not active", questID)
	}
	q, err := t.cat.Quest(questID)
	if err != nil {
		return Completion{}, err
	}
	c.ActiveQuests = slices.Delete(slices.Clone(c.ActiveQuests), i, i+1)
	c.CompletedQuests = append(c.CompletedQuests, q.ID)
	levels := t.rewards.GainExperience(c, q.RewardXP)
	t.rewards.AddGold(c, q.RewardGold)
	return Completion{
		Quest:        q,
		LevelsGained: levels,
		Summary: fmt.Sprintf("Quest complete: %s! +%d XP, +%d gold.",
			q.Title, q.RewardXP, q.RewardGold),
	}, nil
}

// Available lists quests c could accept right now, in catalog order.
func (t *Tracker) Available(c *character.Character) []catalog.Quest {
	var out []catalog.Quest
	for _, q := range t.cat.Quests() {
		if t.CanAccept(c, q) == nil {
			out = append(out, q)
		}
	}
	return out
}

// Active lists the quests c has in progress.
func (t *Tracker) Active(c *character.Character) []catalog.Quest {
	return t.lookup(c.ActiveQuests)
}

// Completed lists the quests c has finished.
func (t *Tracker) Completed(c *character.Character) []catalog.Quest {
	return t.lookup(c.CompletedQuests)
}

// lookup resolves ids, skipping any the catalog no longer knows.
func (t *Tracker) lookup(ids []string) []catalog.Quest {
	out := make([]catalog.Quest, 0, len(ids))
	for _, id := range ids {
		if q, err := t.cat.Quest(id); err == nil {
			out = append(out, q)
		}
	}
	return out
}

// Stats is the quest-progress display figure.
type Stats struct {
	Active    int
	Completed int
	Total     int
}

// Percent is the share of catalog quests completed, 0-100.
func (s Stats) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return s.Completed * 100 / s.Total
}

func (s Stats) String() string {
	return fmt.Sprintf("Quests: %d/%d completed (%d%%), %d active",
		s.Completed, s.Total, s.Percent(), s.Active)
}

// Progress computes the quest-progress figures for c.
func (t *Tracker) Progress(c *character.Character) Stats {
	s := Stats{Total: len(t.cat.Quests()), Active: len(c.ActiveQuests)}
	for _, id := range c.CompletedQuests {
		if _, err := t.cat.Quest(id); err == nil {
			s.Completed++
		}
	}
	return s
}
