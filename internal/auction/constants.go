package auction

// Rule names of the stock catalog
const (
	RuleAllWithered  = "all_withered"
	RuleAllMutated   = "all_mutated"
	RuleAllMatured   = "all_matured"
	RuleAllBloomed   = "all_bloomed"
	RuleSameStage    = "same_stage"
	RuleSameName     = "same_name"
	RuleRoyalDozen   = "royal_dozen"
	RuleGrandBouquet = "grand_bouquet"
	RuleTrio         = "trio"
	RuleHasRose      = "has_rose"
)

// DefaultFlatIncrement is added to the bid on a day with no rule left to apply
const DefaultFlatIncrement = 1.0
