package garden

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Bouquet_Go/internal/auction"
	"github.com/osse101/Bouquet_Go/internal/domain"
	"github.com/osse101/Bouquet_Go/internal/event"
	"github.com/osse101/Bouquet_Go/internal/flora"
	"github.com/osse101/Bouquet_Go/internal/logger"
	"github.com/osse101/Bouquet_Go/internal/metrics"
	"github.com/osse101/Bouquet_Go/internal/plot"
	"github.com/osse101/Bouquet_Go/internal/repository"
	"github.com/osse101/Bouquet_Go/internal/weather"
)

// Service is a single player's garden session. Calls are serialized; a day advance
// runs to completion before any other operation sees the garden.
type Service interface {
	// Snapshot returns a deep copy of the current garden
	Snapshot(ctx context.Context) *domain.GardenState

	Water(ctx context.Context, index int) error
	Weed(ctx context.Context, index int) error
	// Fertilize spends one fertilizer charge on a planted plot
	Fertilize(ctx context.Context, index int) error
	// Plant buys a seed of the named flower and plants it
	Plant(ctx context.Context, index int, flower string) error
	// Harvest moves the plot's flower into storage
	Harvest(ctx context.Context, index int) (*domain.Organism, error)

	// BuyPlot adds a field plot or container to the garden and returns its index
	BuyPlot(ctx context.Context, container bool) (int, error)
	// StorePlot picks a container up out of the garden into storage
	StorePlot(ctx context.Context, index int) error
	// PlacePlot puts a stored plot back into the garden and returns its index
	PlacePlot(ctx context.Context, storageIndex int) (int, error)

	// Compose binds stored flowers into a bouquet, which goes back into storage
	Compose(ctx context.Context, storageIndexes []int, label string) (*domain.ComposedGoods, error)
	// StartAuction puts a stored bouquet up for auction starting tomorrow
	StartAuction(ctx context.Context, storageIndex int) error
	AcceptEarly(ctx context.Context) (domain.BidOutcome, error)
	CollectEarnings(ctx context.Context) (float64, error)

	// Mulch turns a withered stored flower into a fertilizer charge
	Mulch(ctx context.Context, storageIndex int) error
	// Eat consumes a stored seed for energy
	Eat(ctx context.Context, storageIndex int) error

	// AdvanceDay runs the day advance and persists the result. If persisting fails the
	// garden stays on the previous day.
	AdvanceDay(ctx context.Context) (domain.DayReport, error)

	// Load replaces the garden with the saved one, or a new garden when nothing is saved
	Load(ctx context.Context) error
	Save(ctx context.Context) error
}

// Engines are the simulation engines a session drives
type Engines struct {
	Plots   *plot.Engine
	Weather *weather.Engine
	Auction *auction.Engine
}

type service struct {
	mu           sync.Mutex
	cfg          Config
	state        *domain.GardenState
	orchestrator *Orchestrator
	auction      *auction.Engine
	registry     flora.Registry
	repo         repository.Garden
	publisher    *event.ResilientPublisher
	slot         string
}

// NewService creates a session on a new garden. Call Load to resume a save instead.
func NewService(
	cfg Config,
	engines Engines,
	registry flora.Registry,
	repo repository.Garden,
	publisher *event.ResilientPublisher,
	slot string,
) Service {
	return &service{
		cfg:          cfg,
		state:        cfg.NewGarden(),
		orchestrator: NewOrchestrator(engines.Plots, engines.Weather, engines.Auction, cfg.MulchUsesPerDay),
		auction:      engines.Auction,
		registry:     registry,
		repo:         repo,
		publisher:    publisher,
		slot:         slot,
	}
}

func (s *service) Snapshot(_ context.Context) *domain.GardenState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *service) Water(ctx context.Context, i int) error {
	return s.tend(ctx, OpWater, event.ActionWater, i, (*domain.Plot).Water)
}

func (s *service) Weed(ctx context.Context, i int) error {
	return s.tend(ctx, OpWeed, event.ActionWeed, i, (*domain.Plot).Weed)
}

func (s *service) Fertilize(ctx context.Context, i int) error {
	return s.tend(ctx, OpFertilize, event.ActionFertilize, i, func(p *domain.Plot) error {
		if s.state.FertilizerCharges <= 0 {
			return domain.ErrNoFertilizer
		}
		if err := p.Fertilize(); err != nil {
			return err
		}
		s.state.FertilizerCharges--
		return nil
	})
}

// tend runs one plot action that costs energy. The action must leave the plot unchanged
// when it fails.
func (s *service) tend(ctx context.Context, op, action string, i int, act func(*domain.Plot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.state.PlotAt(i)
	if err != nil {
		return s.refuse(ctx, op, err)
	}
	if err := s.checkEnergy(); err != nil {
		return s.refuse(ctx, op, err)
	}
	if err := act(p); err != nil {
		return s.refuse(ctx, op, err)
	}
	s.state.Energy -= s.cfg.ActionEnergyCost

	flower := ""
	if p.Occupied() {
		flower = p.Organism.Name
	}
	logger.FromContext(ctx).Debug(LogMsgPlotTended, LogFieldOperation, op, LogFieldPlot, i, LogFieldFlower, flower)
	s.publish(ctx, event.NewPlotTendedEvent(s.state.Day, i, action, flower))
	return nil
}

func (s *service) Plant(ctx context.Context, i int, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.state.PlotAt(i)
	if err != nil {
		return s.refuse(ctx, OpPlant, err)
	}
	if err := s.checkEnergy(); err != nil {
		return s.refuse(ctx, OpPlant, err)
	}
	f, err := s.registry.Lookup(ctx, name)
	if err != nil {
		return s.refuse(ctx, OpPlant, err)
	}
	if s.state.Coins < f.SeedCost {
		return s.refuse(ctx, OpPlant, fmt.Errorf("%w: %s costs %.2f, have %.2f", domain.ErrInsufficientFunds, f.Name, f.SeedCost, s.state.Coins))
	}
	if err := p.PlantLimited(f.Seed(), s.cfg.ContainerMaxDifficulty); err != nil {
		return s.refuse(ctx, OpPlant, err)
	}
	s.state.Coins -= f.SeedCost
	s.state.Energy -= s.cfg.ActionEnergyCost

	logger.FromContext(ctx).Info(LogMsgPlotTended, LogFieldOperation, OpPlant, LogFieldPlot, i, LogFieldFlower, f.Name)
	s.publish(ctx, event.NewPlotTendedEvent(s.state.Day, i, event.ActionPlant, f.Name))
	return nil
}

func (s *service) Harvest(ctx context.Context, i int) (*domain.Organism, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.state.PlotAt(i)
	if err != nil {
		return nil, s.refuse(ctx, OpHarvest, err)
	}
	if err := s.checkEnergy(); err != nil {
		return nil, s.refuse(ctx, OpHarvest, err)
	}
	flower, err := p.Harvest()
	if err != nil {
		return nil, s.refuse(ctx, OpHarvest, err)
	}
	s.state.Storage.Add(domain.FlowerItem{Flower: flower})
	s.state.Energy -= s.cfg.ActionEnergyCost

	logger.FromContext(ctx).Info(LogMsgPlotTended, LogFieldOperation, OpHarvest, LogFieldPlot, i, LogFieldFlower, flower.Name)
	s.publish(ctx, event.NewPlotTendedEvent(s.state.Day, i, event.ActionHarvest, flower.Name))
	return flower.Clone(), nil
}

func (s *service) checkEnergy() error {
	if s.state.Energy < s.cfg.ActionEnergyCost {
		return fmt.Errorf("%w: need %d, have %d", domain.ErrNoEnergy, s.cfg.ActionEnergyCost, s.state.Energy)
	}
	return nil
}

func (s *service) BuyPlot(ctx context.Context, container bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.state.Plots) >= s.cfg.MaxPlots {
		return 0, s.refuse(ctx, OpBuyPlot, domain.ErrGardenFull)
	}
	price := s.cfg.PriceOf(container)
	if s.state.Coins < price {
		return 0, s.refuse(ctx, OpBuyPlot, fmt.Errorf("%w: plot costs %.2f, have %.2f", domain.ErrInsufficientFunds, price, s.state.Coins))
	}
	s.state.Coins -= price
	s.state.Plots = append(s.state.Plots, domain.NewPlot(container))
	index := len(s.state.Plots) - 1

	logger.FromContext(ctx).Info(LogMsgPlotPurchased, LogFieldPlot, index, LogFieldAmount, price)
	s.publish(ctx, event.NewPlotPurchasedEvent(s.state.Day, index, container, price))
	return index, nil
}

func (s *service) StorePlot(ctx context.Context, i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.state.PlotAt(i)
	if err != nil {
		return s.refuse(ctx, OpStorePlot, err)
	}
	if !p.Container {
		return s.refuse(ctx, OpStorePlot, domain.ErrNotContainer)
	}
	s.state.Plots = append(s.state.Plots[:i], s.state.Plots[i+1:]...)
	s.state.Storage.Add(domain.PlotItem{Plot: p})
	return nil
}

func (s *service) PlacePlot(ctx context.Context, storageIndex int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.state.Plots) >= s.cfg.MaxPlots {
		return 0, s.refuse(ctx, OpPlacePlot, domain.ErrGardenFull)
	}
	item, err := s.state.Storage.Get(storageIndex)
	if err != nil {
		return 0, s.refuse(ctx, OpPlacePlot, err)
	}
	stored, ok := item.(domain.PlotItem)
	if !ok {
		return 0, s.refuse(ctx, OpPlacePlot, fmt.Errorf("%w: entry %d is a %s", domain.ErrWrongItemKind, storageIndex, item.Kind()))
	}
	if _, err := s.state.Storage.Remove(storageIndex); err != nil {
		return 0, s.refuse(ctx, OpPlacePlot, err)
	}
	s.state.Plots = append(s.state.Plots, stored.Plot)
	return len(s.state.Plots) - 1, nil
}

func (s *service) Compose(ctx context.Context, storageIndexes []int, label string) (*domain.ComposedGoods, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flowers := make([]*domain.Organism, 0, len(storageIndexes))
	for _, idx := range storageIndexes {
		f, err := s.state.Storage.FlowerAt(idx)
		if err != nil {
			return nil, s.refuse(ctx, OpCompose, err)
		}
		flowers = append(flowers, f)
	}

	goods, err := domain.ComposeGoods(uuid.NewString(), flowers, label, s.state.Day, flora.ValueFunc(ctx, s.registry))
	if err != nil {
		return nil, s.refuse(ctx, OpCompose, err)
	}

	recipe, known := s.state.Recipes[goods.Signature()]
	if known && label == "" && recipe.Label != "" {
		goods = goods.WithLabel(recipe.Label)
	}

	if _, err := s.state.Storage.RemoveMany(storageIndexes); err != nil {
		return nil, s.refuse(ctx, OpCompose, err)
	}
	s.state.Storage.Add(domain.BouquetItem{Bouquet: goods})

	if !known {
		recipe = domain.Recipe{Signature: goods.Signature(), FirstDay: s.state.Day}
	}
	if label != "" {
		recipe.Label = label
	}
	recipe.TimesComposed++
	s.state.Recipes[goods.Signature()] = recipe

	logger.FromContext(ctx).Info(LogMsgBouquetComposed, LogFieldBouquet, goods.ID(), "signature", goods.Signature(), "base_value", goods.BaseValue())
	s.publish(ctx, event.NewBouquetComposedEvent(s.state.Day, goods, !known))
	return goods, nil
}

func (s *service) StartAuction(ctx context.Context, storageIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	goods, err := s.state.Storage.BouquetAt(storageIndex)
	if err != nil {
		return s.refuse(ctx, OpStartAuction, err)
	}
	s.auction.Restore(s.state.Auction)
	if err := s.auction.Start(goods, s.state.Day+1); err != nil {
		return s.refuse(ctx, OpStartAuction, err)
	}
	if _, err := s.state.Storage.Remove(storageIndex); err != nil {
		return s.refuse(ctx, OpStartAuction, err)
	}
	s.state.Auction = s.auction.Snapshot()

	logger.FromContext(ctx).Info(LogMsgAuctionStarted, LogFieldBouquet, goods.ID(), "base_value", goods.BaseValue())
	s.publish(ctx, event.NewAuctionStartedEvent(s.state.Day, goods))
	return nil
}

func (s *service) AcceptEarly(ctx context.Context) (domain.BidOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goods := s.state.Auction.Goods
	s.auction.Restore(s.state.Auction)
	out, err := s.auction.AcceptEarly(s.state.Day)
	if err != nil {
		return domain.BidOutcome{}, s.refuse(ctx, OpAcceptEarly, err)
	}
	s.state.Auction = s.auction.Snapshot()

	logger.FromContext(ctx).Info(LogMsgAuctionAccepted, LogFieldBouquet, goods.ID(), LogFieldAmount, out.BidAfter)
	s.publish(ctx, event.NewAuctionEndedEvent(s.state.Day, goods.ID(), out.BidAfter, true))
	return out, nil
}

func (s *service) CollectEarnings(ctx context.Context) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.auction.Restore(s.state.Auction)
	amount, err := s.auction.CollectEarnings()
	if err != nil {
		return 0, s.refuse(ctx, OpCollectEarnings, err)
	}
	s.state.Auction = s.auction.Snapshot()
	s.state.Coins += amount

	logger.FromContext(ctx).Info(LogMsgEarnings, LogFieldAmount, amount)
	s.publish(ctx, event.NewEarningsCollectedEvent(s.state.Day, amount, s.state.Coins))
	return amount, nil
}

func (s *service) Mulch(ctx context.Context, storageIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.MulchUsesLeft <= 0 {
		return s.refuse(ctx, OpMulch, domain.ErrMulcherExhausted)
	}
	f, err := s.state.Storage.FlowerAt(storageIndex)
	if err != nil {
		return s.refuse(ctx, OpMulch, err)
	}
	if f.Stage != domain.StageWithered {
		return s.refuse(ctx, OpMulch, fmt.Errorf("%w: %s", domain.ErrNotMulchable, f.Label()))
	}
	if _, err := s.state.Storage.Remove(storageIndex); err != nil {
		return s.refuse(ctx, OpMulch, err)
	}
	s.state.MulchUsesLeft--
	s.state.FertilizerCharges++

	s.publish(ctx, event.NewStorageUsedEvent(s.state.Day, event.ActionMulch, f, s.state.Energy, s.state.FertilizerCharges))
	return nil
}

func (s *service) Eat(ctx context.Context, storageIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.state.Storage.FlowerAt(storageIndex)
	if err != nil {
		return s.refuse(ctx, OpEat, err)
	}
	if f.Stage != domain.StageSeed {
		return s.refuse(ctx, OpEat, fmt.Errorf("%w: %s", domain.ErrNotEdible, f.Label()))
	}
	if _, err := s.state.Storage.Remove(storageIndex); err != nil {
		return s.refuse(ctx, OpEat, err)
	}
	s.state.Energy += f.NRGRestored

	s.publish(ctx, event.NewStorageUsedEvent(s.state.Day, event.ActionEat, f, s.state.Energy, s.state.FertilizerCharges))
	return nil
}

func (s *service) AdvanceDay(ctx context.Context) (domain.DayReport, error) {
	start := time.Now()
	ctx = logger.WithSlot(ctx, s.slot)
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	goods := next.Auction.Goods
	report := s.orchestrator.AdvanceDay(next)
	if next.Energy < s.cfg.StartingEnergy {
		next.Energy = s.cfg.StartingEnergy
	}

	if err := s.repo.SaveGarden(ctx, s.slot, next); err != nil {
		log.Error("Failed to persist day advance", LogFieldDay, next.Day, LogFieldError, err)
		return domain.DayReport{}, fmt.Errorf("failed to persist day %d: %w", next.Day, err)
	}
	s.state = next

	for _, p := range report.Plots {
		if p.Result != domain.PlotResultEmpty {
			log.Debug(LogMsgPlotOutcome, LogFieldPlot, p.Plot, LogFieldFlower, p.Flower, "result", p.Result, "stage", p.StageAfter)
		}
	}
	elapsed := time.Since(start)
	metrics.DayAdvanceDuration.Observe(elapsed.Seconds())
	log.Info(LogMsgDayAdvanced, LogFieldDay, report.Day, LogFieldWeather, report.Weather.Kind, LogFieldDuration, elapsed)

	s.publish(ctx, event.NewDayEvents(report, goods)...)
	return report, nil
}

func (s *service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.repo.LoadGarden(ctx, s.slot)
	if errors.Is(err, domain.ErrSaveNotFound) {
		logger.FromContext(ctx).Info(LogMsgNewGarden, LogFieldSlot, s.slot)
		s.state = s.cfg.NewGarden()
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load slot %q: %w", s.slot, err)
	}
	s.state = state
	logger.FromContext(ctx).Info(LogMsgGardenLoaded, LogFieldSlot, s.slot, LogFieldDay, state.Day)
	return nil
}

func (s *service) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveGarden(ctx, s.slot, s.state.Clone()); err != nil {
		return fmt.Errorf("failed to save slot %q: %w", s.slot, err)
	}
	logger.FromContext(ctx).Info(LogMsgGardenSaved, LogFieldSlot, s.slot, LogFieldDay, s.state.Day)
	return nil
}

// refuse counts and logs a refused operation. Infrastructure errors pass through
// uncounted.
func (s *service) refuse(ctx context.Context, op string, err error) error {
	if errors.Is(err, domain.ErrInvalidOperation) || errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
		metrics.RefusedOperations.WithLabelValues(op).Inc()
		logger.FromContext(ctx).Warn(LogMsgOperationRefused, LogFieldOperation, op, LogFieldError, err)
	}
	return err
}

func (s *service) publish(ctx context.Context, events ...event.Event) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishAll(ctx, events)
}
