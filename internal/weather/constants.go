package weather

// Weather balance defaults
const (
	DefaultChance                 = 0.25
	DefaultSnowLossFraction       = 0.50
	DefaultThunderstormDamage     = 10.0
	DefaultEarthquakeLossFraction = 0.90
	DefaultHurricaneDamage        = 50.0
	DefaultFairyMutationChance    = 0.50

	shareTolerance = 1e-6
)
