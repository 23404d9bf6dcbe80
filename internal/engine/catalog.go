package engine

// BuiltinAchievements is the fixed achievement taxonomy. Codes are stable:
// they key the runtime state rows in storage.
func BuiltinAchievements() []AchievementDef {
	return []AchievementDef{
		// Streaks
		{Code: "streak_3", Name: "On a Roll", Description: "Hold a 3-day streak", Icon: "🔥", Category: AchievementStreak, XPReward: 25, Requirement: Requirement{Kind: RequireStreakDays, Target: 3}},
		{Code: "streak_7", Name: "Week Strong", Description: "Hold a 7-day streak", Icon: "🔥", Category: AchievementStreak, XPReward: 50, Requirement: Requirement{Kind: RequireStreakDays, Target: 7}},
		{Code: "streak_30", Name: "Unstoppable", Description: "Hold a 30-day streak", Icon: "🌋", Category: AchievementStreak, XPReward: 200, Requirement: Requirement{Kind: RequireStreakDays, Target: 30}},
		{Code: "streak_100", Name: "Centurion", Description: "Hold a 100-day streak", Icon: "🏛️", Category: AchievementStreak, XPReward: 1000, Hidden: true, Requirement: Requirement{Kind: RequireStreakDays, Target: 100}},

		// Completions
		{Code: "first_completion", Name: "First Step", Description: "Complete a habit once", Icon: "✅", Category: AchievementCompletion, XPReward: 10, Requirement: Requirement{Kind: RequireTotalCompletions, Target: 1}},
		{Code: "completions_10", Name: "Getting Going", Description: "Log 10 completions", Icon: "📋", Category: AchievementCompletion, XPReward: 25, Requirement: Requirement{Kind: RequireTotalCompletions, Target: 10}},
		{Code: "completions_50", Name: "Committed", Description: "Log 50 completions", Icon: "🏅", Category: AchievementCompletion, XPReward: 100, Requirement: Requirement{Kind: RequireTotalCompletions, Target: 50}},
		{Code: "completions_100", Name: "Powerhouse", Description: "Log 100 completions", Icon: "🏆", Category: AchievementCompletion, XPReward: 250, Requirement: Requirement{Kind: RequireTotalCompletions, Target: 100}},
		{Code: "completions_500", Name: "Relentless", Description: "Log 500 completions", Icon: "💎", Category: AchievementCompletion, XPReward: 1000, Hidden: true, Requirement: Requirement{Kind: RequireTotalCompletions, Target: 500}},

		// Levels
		{Code: "level_5", Name: "Apprentice", Description: "Reach level 5", Icon: "⭐", Category: AchievementLevel, XPReward: 50, Requirement: Requirement{Kind: RequireReachLevel, Target: 5}},
		{Code: "level_10", Name: "Adept", Description: "Reach level 10", Icon: "🌟", Category: AchievementLevel, XPReward: 150, Requirement: Requirement{Kind: RequireReachLevel, Target: 10}},
		{Code: "level_20", Name: "Master", Description: "Reach level 20", Icon: "💫", Category: AchievementLevel, XPReward: 500, Requirement: Requirement{Kind: RequireReachLevel, Target: 20}},

		// Consistency
		{Code: "perfect_week", Name: "Perfect Week", Description: "Complete every habit seven days running", Icon: "📅", Category: AchievementConsistency, XPReward: 150, Requirement: Requirement{Kind: RequirePerfectWeek, Target: perfectWeekDays}},
		{Code: "variety_5", Name: "Renaissance", Description: "Work 5 different habits in a week", Icon: "🎭", Category: AchievementConsistency, XPReward: 100, Requirement: Requirement{Kind: RequireHabitVariety, Target: 5}},

		// Special
		{Code: "early_bird", Name: "Early Bird", Description: "Complete something before 9:00 every day for a week", Icon: "🌅", Category: AchievementSpecial, XPReward: 75, Requirement: Requirement{Kind: RequireEarlyBird, Target: perfectWeekDays}},
		{Code: "night_owl", Name: "Night Owl", Description: "Complete something after 21:00 every day for a week", Icon: "🦉", Category: AchievementSpecial, XPReward: 75, Requirement: Requirement{Kind: RequireNightOwl, Target: perfectWeekDays}},
		{Code: "weekend_warrior", Name: "Weekend Warrior", Description: "Complete on a weekend four weeks running", Icon: "⚔️", Category: AchievementSpecial, XPReward: 75, Requirement: Requirement{Kind: RequireWeekendWarrior, Target: weekendWarriorWeeks}},
	}
}
