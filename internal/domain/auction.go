package domain

// Auction calendar
const (
	AuctionFirstRuleDay = 2
	AuctionRoyalDay     = 7
)

// AuctionState is a snapshot of the auction slot: the active auction, if any, and
// earnings waiting to be collected.
type AuctionState struct {
	Active      bool           `json:"active"`
	Goods       *ComposedGoods `json:"goods,omitempty"`
	StartDay    int            `json:"start_day,omitempty"`
	Bid         float64        `json:"bid,omitempty"`
	Applied     []string       `json:"applied,omitempty"`
	Earnings    float64        `json:"earnings,omitempty"`
	Uncollected bool           `json:"uncollected"`
}

// AuctionDay is the 1-based day of the auction on the given game day. An auction
// listed for tomorrow already counts as day 1.
func (a AuctionState) AuctionDay(currentDay int) int {
	return max(currentDay-a.StartDay+1, 1)
}

// Clone returns a copy that shares no slices with the original
func (a AuctionState) Clone() AuctionState {
	c := a
	if a.Applied != nil {
		c.Applied = append([]string(nil), a.Applied...)
	}
	return c
}

// BidStep describes what happened to the running bid on one auction day
type BidStep string

const (
	BidStepInformational BidStep = "informational"
	BidStepRule          BidStep = "rule"
	BidStepFlat          BidStep = "flat"
	BidStepRoyal         BidStep = "royal"
	BidStepIdle          BidStep = "idle"
	BidStepAccepted      BidStep = "accepted"
)

// BidOutcome is the descriptor emitted for one auction step
type BidOutcome struct {
	AuctionDay   int      `json:"auction_day"`
	Step         BidStep  `json:"step"`
	RulesApplied []string `json:"rules_applied,omitempty"`
	Factor       float64  `json:"factor"`
	BidBefore    float64  `json:"bid_before"`
	BidAfter     float64  `json:"bid_after"`
	Ended        bool     `json:"ended"`
}
