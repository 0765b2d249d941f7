package plot

import (
	"github.com/osse101/Bouquet_Go/internal/domain"
	"github.com/osse101/Bouquet_Go/internal/random"
)

// Engine runs the daily plot transition. It is pure logic: every random draw comes from
// the injected source.
type Engine struct {
	cfg Config
	rng random.Source
}

// NewEngine creates a plot engine
func NewEngine(cfg Config, rng random.Source) *Engine {
	return &Engine{cfg: cfg, rng: rng}
}

// Config returns the engine's balance settings
func (e *Engine) Config() Config {
	return e.cfg
}

// Advance moves one plot forward by a day. Growth only happens when the plot was both
// watered and weeded at the start of the call; the neglect penalty only when it was not
// watered, so the two never apply on the same day.
func (e *Engine) Advance(index int, p *domain.Plot) domain.PlotOutcome {
	out := domain.PlotOutcome{
		Plot:       index,
		Result:     domain.PlotResultEmpty,
		SoilBefore: p.Soil,
		SoilAfter:  p.Soil,
	}

	if !p.Occupied() {
		p.Watered = false
		e.rerollWeeds(p)
		return out
	}

	o := p.Organism
	out.Flower = o.Name
	out.StageBefore = o.Stage
	o.Days++

	canGrow := p.Watered && p.Weeded
	out.Result = domain.PlotResultWaiting

	switch {
	case canGrow:
		p.UnwateredDays = 0
		out.Result = e.grow(p)
	case !p.Watered:
		p.UnwateredDays++
		before := o.Durability
		if e.neglect(p) {
			out.Result = domain.PlotResultNeglect
			out.DurabilityLost = before - o.Durability
		}
		if o.Durability <= 0 {
			if o.Stage != domain.StageWithered {
				o.Wither()
				out.Result = domain.PlotResultWithered
			}
			out.StageAfter = o.Stage
			return out
		}
	default:
		p.UnwateredDays = 0
	}

	e.resetFlags(p)
	out.StageAfter = o.Stage
	return out
}

// grow advances at most one stage when the current stage's threshold is met
func (e *Engine) grow(p *domain.Plot) domain.PlotResult {
	o := p.Organism
	need, ok := e.cfg.Thresholds.For(o.Stage)
	if !ok {
		return domain.PlotResultDormant
	}
	if o.Days < need {
		return domain.PlotResultWaiting
	}

	switch o.Stage {
	case domain.StageSeed:
		o.Stage = domain.StageSeedling
	case domain.StageSeedling:
		o.Stage = domain.StageBloomed
	case domain.StageBloomed:
		o.Stage = domain.StageMatured
	case domain.StageMatured:
		if p.Fertilized && random.Chance(e.rng, e.cfg.MutationChance) {
			o.Stage = domain.StageMutated
			return domain.PlotResultMutated
		}
		o.Wither()
		return domain.PlotResultWithered
	}
	return domain.PlotResultGrew
}

// neglect rolls the unwatered durability penalty; containers take it doubled
func (e *Engine) neglect(p *domain.Plot) bool {
	if !random.Chance(e.rng, e.cfg.NeglectChance) {
		return false
	}
	loss := e.cfg.NeglectPenalty
	if p.Container {
		loss *= e.cfg.ContainerPenaltyMultiplier
	}
	p.Organism.Durability -= loss
	return true
}

func (e *Engine) resetFlags(p *domain.Plot) {
	p.Watered = false
	e.rerollWeeds(p)
	if p.Fertilized && random.Chance(e.rng, e.cfg.FertilizerFadeChance) {
		p.Fertilized = false
	}
}

func (e *Engine) rerollWeeds(p *domain.Plot) {
	if p.Container {
		p.Weeded = true
		return
	}
	if random.Chance(e.rng, e.cfg.WeedChance) {
		p.Weeded = false
	}
}

// Damage removes a flat amount of durability; a flower at or below zero withers.
// Returns false for empty plots.
func (e *Engine) Damage(p *domain.Plot, amount float64) bool {
	if !p.Occupied() {
		return false
	}
	p.Organism.Durability -= amount
	e.witherIfBroken(p)
	return true
}

// DamageFraction removes a share of the current durability
func (e *Engine) DamageFraction(p *domain.Plot, fraction float64) bool {
	if !p.Occupied() {
		return false
	}
	p.Organism.Durability -= p.Organism.Durability * fraction
	e.witherIfBroken(p)
	return true
}

func (e *Engine) witherIfBroken(p *domain.Plot) {
	if p.Organism.Durability <= 0 && p.Organism.Stage != domain.StageWithered {
		p.Organism.Wither()
	}
}

// UpgradeSoil raises soil quality by one tier. Soil never goes down.
func (e *Engine) UpgradeSoil(p *domain.Plot) bool {
	if p.Soil >= domain.SoilMagic {
		return false
	}
	p.Soil++
	return true
}

// Mutate turns a living flower straight into a Mutated one
func (e *Engine) Mutate(p *domain.Plot) bool {
	if !p.Occupied() || p.Organism.Stage.Terminal() {
		return false
	}
	p.Organism.Stage = domain.StageMutated
	return true
}
