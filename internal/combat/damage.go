package combat

// Damage is the shared formula for basic attacks in both directions:
// max(1, attack - defense/4).
func Damage(attack, defense int) int {
	return max(1, attack-floorDiv(defense, 4))
}

// scaledDamage is Damage with the attack multiplied, used by abilities.
func scaledDamage(attack, mult, defense int) int {
	return Damage(attack*mult, defense)
}

// floorDiv divides rounding toward negative infinity. Stats only go negative
// while an unequip is being reversed, but the formula must still floor.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
