package tycoon

// LevelUnit is the XP capacity multiplier per level: level n holds
// n*LevelUnit XP before rolling over into level n+1.
const LevelUnit = 1000

// NextLevelXP returns the XP required to complete the given level.
func NextLevelXP(level int) int {
	return level * LevelUnit
}

// Progress returns the completion percentage of the current level, in
// the range [0, 100).
func Progress(level, xp int) float64 {
	return float64(xp) / float64(NextLevelXP(level)) * 100
}

// ApplyXP adds amount XP to a (level, xp) pair and rolls over into new
// levels while the current level's capacity is reached. The capacity
// grows linearly: level 1 needs 1000 XP, level 2 needs 2000, and so on.
//
// Given 1 <= level, 0 <= xp < level*LevelUnit, and amount >= 0, the
// result satisfies the same invariant and the level never decreases.
// Callers are responsible for rejecting negative amounts.
func ApplyXP(level, xp, amount int) (newLevel, newXP int) {
	newLevel = level
	newXP = xp + amount
	for newXP >= newLevel*LevelUnit {
		newXP -= newLevel * LevelUnit
		newLevel++
	}
	return newLevel, newXP
}
