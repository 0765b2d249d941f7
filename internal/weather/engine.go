package weather

import (
	"github.com/osse101/Bouquet_Go/internal/domain"
	"github.com/osse101/Bouquet_Go/internal/plot"
	"github.com/osse101/Bouquet_Go/internal/random"
)

// Engine selects the day's weather and applies it to the garden. The daily gate is one
// independent draw; the event itself is a second draw over the share table.
type Engine struct {
	cfg     Config
	weights []float64
	plots   *plot.Engine
	rng     random.Source
}

// NewEngine creates a weather engine. The share table must sum to 100.
func NewEngine(cfg Config, plots *plot.Engine, rng random.Source) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:     cfg,
		weights: cfg.weights(),
		plots:   plots,
		rng:     rng,
	}, nil
}

// Roll runs the daily gate and, when it passes, draws one event
func (e *Engine) Roll() (domain.WeatherKind, bool) {
	if !random.Chance(e.rng, e.cfg.Chance) {
		return domain.WeatherCalm, false
	}
	idx := random.Weighted(e.rng, e.weights)
	if idx < 0 {
		return domain.WeatherClear, true
	}
	return domain.WeatherKinds[idx], true
}

// Resolve rolls the day's weather and applies it. A calm day still yields a descriptor.
func (e *Engine) Resolve(plots []*domain.Plot) domain.WeatherOutcome {
	kind, ok := e.Roll()
	if !ok {
		return domain.WeatherOutcome{Kind: domain.WeatherCalm}
	}
	return e.Apply(kind, plots)
}

// Apply applies one weather event to every plot
func (e *Engine) Apply(kind domain.WeatherKind, plots []*domain.Plot) domain.WeatherOutcome {
	out := domain.WeatherOutcome{Kind: kind, Occurred: true}

	switch kind {
	case domain.WeatherRain:
		e.rain(plots, &out)
	case domain.WeatherSnow:
		e.snow(plots, &out)
	case domain.WeatherThunderstorm:
		e.storm(plots, e.cfg.ThunderstormDamage, &out)
	case domain.WeatherEarthquake:
		e.earthquake(plots, &out)
	case domain.WeatherHurricane:
		e.storm(plots, e.cfg.HurricaneDamage, &out)
	case domain.WeatherMoleInfestation:
		e.moles(plots, &out)
	case domain.WeatherFairyVisit:
		e.fairy(plots, &out)
	case domain.WeatherClear, domain.WeatherCalm:
		// nothing changes
	}

	out.Affected = len(out.Changes)
	return out
}

func (e *Engine) rain(plots []*domain.Plot, out *domain.WeatherOutcome) {
	for i, p := range plots {
		if !p.Occupied() || p.Watered {
			continue
		}
		c := before(i, p)
		p.Watered = true
		out.Changes = append(out.Changes, after(c, p))
	}
}

// snow halves durability and smothers weeds in field plots; containers are sheltered
func (e *Engine) snow(plots []*domain.Plot, out *domain.WeatherOutcome) {
	for i, p := range plots {
		if p.Container {
			continue
		}
		c := before(i, p)
		e.plots.DamageFraction(p, e.cfg.SnowLossFraction)
		p.Weeded = true
		out.Changes = append(out.Changes, after(c, p))
	}
}

// storm waters every planted plot and knocks a flat amount of durability off
func (e *Engine) storm(plots []*domain.Plot, damage float64, out *domain.WeatherOutcome) {
	for i, p := range plots {
		if !p.Occupied() {
			continue
		}
		c := before(i, p)
		p.Watered = true
		e.plots.Damage(p, damage)
		out.Changes = append(out.Changes, after(c, p))
	}
}

func (e *Engine) earthquake(plots []*domain.Plot, out *domain.WeatherOutcome) {
	for i, p := range plots {
		if !p.Occupied() {
			continue
		}
		c := before(i, p)
		e.plots.DamageFraction(p, e.cfg.EarthquakeLossFraction)
		out.Changes = append(out.Changes, after(c, p))
	}
}

// moles dig up one field plot: grown flowers are saved to storage, the rest are lost
func (e *Engine) moles(plots []*domain.Plot, out *domain.WeatherOutcome) {
	var targets []int
	for i, p := range plots {
		if p.Occupied() && !p.Container {
			targets = append(targets, i)
		}
	}
	pick := random.Pick(e.rng, len(targets))
	if pick < 0 {
		out.Note = domain.WeatherNoteNoTarget
		return
	}

	i := targets[pick]
	p := plots[i]
	c := before(i, p)
	flower, _ := p.Harvest()
	out.Changes = append(out.Changes, after(c, p))

	if flower.Stage == domain.StageMatured || flower.Stage == domain.StageMutated {
		out.Note = domain.WeatherNoteMoleHarvested
		out.Harvested = append(out.Harvested, flower)
		return
	}
	out.Note = domain.WeatherNoteMoleDestroyed
	out.Destroyed = append(out.Destroyed, flower)
}

// fairy either mutates one living flower or enriches one plot's soil. With no flower to
// mutate it falls back to the soil gift.
func (e *Engine) fairy(plots []*domain.Plot, out *domain.WeatherOutcome) {
	if random.Chance(e.rng, e.cfg.FairyMutationChance) && e.fairyMutation(plots, out) {
		return
	}
	e.fairySoil(plots, out)
}

func (e *Engine) fairyMutation(plots []*domain.Plot, out *domain.WeatherOutcome) bool {
	var targets []int
	for i, p := range plots {
		if p.Occupied() && !p.Organism.Stage.Terminal() {
			targets = append(targets, i)
		}
	}
	pick := random.Pick(e.rng, len(targets))
	if pick < 0 {
		return false
	}

	i := targets[pick]
	c := before(i, plots[i])
	e.plots.Mutate(plots[i])
	out.Changes = append(out.Changes, after(c, plots[i]))
	out.Note = domain.WeatherNoteFairyMutation
	return true
}

func (e *Engine) fairySoil(plots []*domain.Plot, out *domain.WeatherOutcome) {
	var targets []int
	for i, p := range plots {
		if p.Soil < domain.SoilMagic {
			targets = append(targets, i)
		}
	}
	pick := random.Pick(e.rng, len(targets))
	if pick < 0 {
		out.Note = domain.WeatherNoteNoTarget
		return
	}

	i := targets[pick]
	c := before(i, plots[i])
	e.plots.UpgradeSoil(plots[i])
	out.Changes = append(out.Changes, after(c, plots[i]))
	out.Note = domain.WeatherNoteFairySoil
}

func before(i int, p *domain.Plot) domain.PlotChange {
	c := domain.PlotChange{Plot: i, SoilBefore: p.Soil}
	if p.Occupied() {
		c.Flower = p.Organism.Name
		c.DurabilityBefore = p.Organism.Durability
		c.StageBefore = p.Organism.Stage
	}
	return c
}

func after(c domain.PlotChange, p *domain.Plot) domain.PlotChange {
	c.SoilAfter = p.Soil
	c.Watered = p.Watered
	if p.Occupied() {
		c.DurabilityAfter = p.Organism.Durability
		c.StageAfter = p.Organism.Stage
	}
	return c
}
