package engine

import (
	"math"

	"momentum/internal/storage"
)

const (
	// XPCurveBase is the XP bracket of level 1; each later level's bracket
	// grows by XPCurveGrowth.
	XPCurveBase   = 100.0
	XPCurveGrowth = 1.5
)

// XPForLevel returns the XP bracket of the given level:
// floor(100 * 1.5^(level-1)). Level 0 and below have no bracket.
func XPForLevel(level int) int {
	if level < 1 {
		return 0
	}
	return int(math.Floor(XPCurveBase * math.Pow(XPCurveGrowth, float64(level-1))))
}

// XPForNextLevel returns the bracket that must be filled to advance past the
// given level.
func XPForNextLevel(level int) int {
	return XPForLevel(level + 1)
}

// TotalXPForLevel returns the cumulative XP a profile must hold to sit at
// the given level. Level 1 is the starting level and costs nothing; the
// first level-up pays the level-1 and level-2 brackets together, and every
// later level L adds XPForLevel(L).
func TotalXPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	total := 0
	for k := 1; k <= level; k++ {
		total += XPForLevel(k)
	}
	return total
}

// LevelForXP returns the highest level whose cumulative threshold is covered
// by totalXP. Never below 1.
func LevelForXP(totalXP int) int {
	level := 1
	for totalXP >= TotalXPForLevel(level+1) {
		level++
	}
	return level
}

// ApplyXP adds amount to the profile's cumulative XP and advances the level
// while the next cumulative threshold is covered (multi-level jumps from
// large grants take several iterations). XP and level never decrease;
// negative amounts are treated as zero. The cached XPForNextLevel bracket is
// recomputed only when the level changed.
func ApplyXP(profile storage.Profile, amount int) (storage.Profile, bool, int) {
	if amount < 0 {
		amount = 0
	}
	if profile.Level < 1 {
		profile.Level = 1
	}
	profile.CurrentXP += amount

	levelBefore := profile.Level
	for profile.CurrentXP >= TotalXPForLevel(profile.Level+1) {
		profile.Level++
	}

	leveledUp := profile.Level > levelBefore
	if leveledUp {
		profile.XPForNextLevel = XPForNextLevel(profile.Level)
	}
	return profile, leveledUp, profile.Level
}

// XPIntoLevel returns how much of the profile's XP sits above its current
// level threshold, for progress bars.
func XPIntoLevel(profile storage.Profile) int {
	into := profile.CurrentXP - TotalXPForLevel(profile.Level)
	if into < 0 {
		into = 0
	}
	return into
}
