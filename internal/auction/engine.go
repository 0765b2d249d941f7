package auction

import (
	"fmt"

	"github.com/osse101/Bouquet_Go/internal/domain"
	"github.com/osse101/Bouquet_Go/internal/random"
)

// Config holds the auction tunables
type Config struct {
	FlatIncrement float64 `json:"flat_increment" validate:"gt=0"`
}

// DefaultConfig returns the stock auction settings
func DefaultConfig() Config {
	return Config{FlatIncrement: DefaultFlatIncrement}
}

// Engine owns the single auction slot. One bouquet can be on auction at a time and a new
// auction waits until the last one's earnings are collected.
type Engine struct {
	cfg   Config
	rules *RuleSet
	rng   random.Source
	state domain.AuctionState
}

// NewEngine creates an auction engine with an empty slot
func NewEngine(cfg Config, rules *RuleSet, rng random.Source) *Engine {
	return &Engine{cfg: cfg, rules: rules, rng: rng}
}

// Snapshot returns a copy of the auction slot
func (e *Engine) Snapshot() domain.AuctionState {
	return e.state.Clone()
}

// Restore replaces the auction slot, e.g. after loading a save
func (e *Engine) Restore(state domain.AuctionState) {
	e.state = state.Clone()
}

// Active returns the running auction, if any
func (e *Engine) Active() (domain.AuctionState, bool) {
	if !e.state.Active {
		return domain.AuctionState{}, false
	}
	return e.state.Clone(), true
}

// Available returns the rules that could still apply to the running auction
func (e *Engine) Available() []Rule {
	if !e.state.Active {
		return nil
	}
	return e.rules.Available(e.state.Goods, e.state.Applied)
}

// Start puts a bouquet up for auction at its base value
func (e *Engine) Start(goods *domain.ComposedGoods, day int) error {
	if goods == nil {
		return fmt.Errorf("%w: no bouquet given", domain.ErrInvalidOperation)
	}
	if e.state.Active {
		return domain.ErrAuctionActive
	}
	if e.state.Uncollected {
		return domain.ErrEarningsUncollected
	}

	e.state = domain.AuctionState{
		Active:   true,
		Goods:    goods,
		StartDay: day,
		Bid:      goods.BaseValue(),
	}
	return nil
}

// ProcessDailyBid moves the bid for the given game day. Returns false when no auction is
// running.
func (e *Engine) ProcessDailyBid(day int) (domain.BidOutcome, bool) {
	if !e.state.Active {
		return domain.BidOutcome{}, false
	}

	auctionDay := e.state.AuctionDay(day)
	out := domain.BidOutcome{
		AuctionDay: auctionDay,
		Factor:     1,
		BidBefore:  e.state.Bid,
	}

	switch {
	case auctionDay < domain.AuctionFirstRuleDay:
		out.Step = domain.BidStepInformational
	case auctionDay < domain.AuctionRoyalDay:
		e.applyOne(&out)
	case auctionDay == domain.AuctionRoyalDay:
		e.applyAll(&out)
		e.end()
		out.Ended = true
	default:
		out.Step = domain.BidStepIdle
	}

	out.BidAfter = e.state.Bid
	if out.Ended {
		out.BidAfter = e.state.Earnings
	}
	return out, true
}

func (e *Engine) applyOne(out *domain.BidOutcome) {
	available := e.rules.Available(e.state.Goods, e.state.Applied)
	pick := random.Pick(e.rng, len(available))
	if pick < 0 {
		e.flat(out)
		return
	}
	e.apply(available[pick], out)
	out.Step = domain.BidStepRule
}

// applyAll is the royal resolution: every remaining rule at once
func (e *Engine) applyAll(out *domain.BidOutcome) {
	available := e.rules.Available(e.state.Goods, e.state.Applied)
	if len(available) == 0 {
		e.flat(out)
		return
	}
	for _, r := range available {
		e.apply(r, out)
	}
	out.Step = domain.BidStepRoyal
}

func (e *Engine) apply(r Rule, out *domain.BidOutcome) {
	e.state.Bid *= r.Factor
	e.state.Applied = append(e.state.Applied, r.Name)
	out.RulesApplied = append(out.RulesApplied, r.Name)
	out.Factor *= r.Factor
}

func (e *Engine) flat(out *domain.BidOutcome) {
	e.state.Bid += e.cfg.FlatIncrement
	out.Step = domain.BidStepFlat
}

// AcceptEarly ends the running auction at its current bid
func (e *Engine) AcceptEarly(day int) (domain.BidOutcome, error) {
	if !e.state.Active {
		return domain.BidOutcome{}, domain.ErrNoActiveAuction
	}
	out := domain.BidOutcome{
		AuctionDay: e.state.AuctionDay(day),
		Step:       domain.BidStepAccepted,
		Factor:     1,
		BidBefore:  e.state.Bid,
		BidAfter:   e.state.Bid,
		Ended:      true,
	}
	e.end()
	return out, nil
}

// end moves the bid into uncollected earnings and frees the slot
func (e *Engine) end() {
	e.state = domain.AuctionState{
		Earnings:    e.state.Bid,
		Uncollected: true,
	}
}

// CollectEarnings pays out a finished auction
func (e *Engine) CollectEarnings() (float64, error) {
	if !e.state.Uncollected {
		return 0, domain.ErrNothingToCollect
	}
	amount := e.state.Earnings
	e.state.Earnings = 0
	e.state.Uncollected = false
	return amount, nil
}
