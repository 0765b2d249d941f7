package plot

// Growth balance defaults
const (
	DefaultSeedDays     = 3
	DefaultSeedlingDays = 6
	DefaultBloomedDays  = 10
	DefaultMaturedDays  = 14

	DefaultWeedChance                 = 0.30
	DefaultMutationChance             = 0.05
	DefaultNeglectChance              = 0.50
	DefaultNeglectPenalty             = 10.0
	DefaultContainerPenaltyMultiplier = 2.0
	DefaultFertilizerFadeChance       = 0.50
)
