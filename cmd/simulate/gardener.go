package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/osse101/Bouquet_Go/internal/domain"
	"github.com/osse101/Bouquet_Go/internal/garden"
)

// autoGardener plays a simple strategy: keep every plot planted, watered and weeded,
// harvest once a flower matures, mulch what withers, and auction bouquets of three.
type autoGardener struct {
	svc    garden.Service
	flower string
}

// Tend performs one day's worth of player actions. Refusals such as running out of
// energy or coins just end that action.
func (g *autoGardener) Tend(ctx context.Context) {
	state := g.svc.Snapshot(ctx)
	if state.Auction.Uncollected {
		g.try(ctx, "collect", func() error { _, err := g.svc.CollectEarnings(ctx); return err })
	}

	for i, p := range state.Plots {
		if p.Occupied() && harvestable(p.Organism.Stage) {
			g.try(ctx, "harvest", func() error { _, err := g.svc.Harvest(ctx, i); return err })
			p = &domain.Plot{Container: p.Container}
		}
		if !p.Occupied() {
			if err := g.try(ctx, "plant", func() error { return g.svc.Plant(ctx, i, g.flower) }); err != nil {
				continue
			}
		} else if p.Watered && (p.Weeded || p.Container) {
			continue
		}
		g.try(ctx, "water", func() error { return g.svc.Water(ctx, i) })
		if !p.Weeded && !p.Container {
			g.try(ctx, "weed", func() error { return g.svc.Weed(ctx, i) })
		}
	}

	g.mulch(ctx)
	g.auction(ctx)
}

func harvestable(stage domain.Stage) bool {
	return stage == domain.StageMatured || stage.Terminal()
}

// mulch walks storage back to front so removals do not shift unvisited indexes
func (g *autoGardener) mulch(ctx context.Context) {
	items := g.svc.Snapshot(ctx).Storage.Items()
	for i := len(items) - 1; i >= 0; i-- {
		f, ok := items[i].(domain.FlowerItem)
		if !ok || f.Flower.Stage != domain.StageWithered {
			continue
		}
		if err := g.try(ctx, "mulch", func() error { return g.svc.Mulch(ctx, i) }); err != nil {
			return
		}
	}
}

func (g *autoGardener) auction(ctx context.Context) {
	state := g.svc.Snapshot(ctx)
	if state.Auction.Active || state.Auction.Uncollected {
		return
	}

	var picked []int
	for i, item := range state.Storage.Items() {
		if f, ok := item.(domain.FlowerItem); ok && f.Flower.Stage.Composable() {
			picked = append(picked, i)
			if len(picked) == domain.MinBouquetSize {
				break
			}
		}
	}
	if len(picked) < domain.MinBouquetSize {
		return
	}

	goods, err := g.svc.Compose(ctx, picked, "")
	if err != nil {
		slog.Debug("Auto-compose refused", "error", err)
		return
	}
	for i, item := range g.svc.Snapshot(ctx).Storage.Items() {
		if b, ok := item.(domain.BouquetItem); ok && b.Bouquet.ID() == goods.ID() {
			g.try(ctx, "auction", func() error { return g.svc.StartAuction(ctx, i) })
			return
		}
	}
}

func (g *autoGardener) try(_ context.Context, action string, fn func() error) error {
	err := fn()
	if err != nil {
		slog.Debug("Auto-gardener action refused", "action", action, "error", err)
	}
	return err
}

// printSummary writes the end-of-run garden totals
func printSummary(w io.Writer, state *domain.GardenState) {
	occupied := 0
	for _, p := range state.Plots {
		if p.Occupied() {
			occupied++
		}
	}
	fmt.Fprintf(w, "Day %d: %.2f coins, %d energy, %d/%d plots planted, %d items stored, %d recipes known\n",
		state.Day, state.Coins, state.Energy, occupied, len(state.Plots), state.Storage.Len(), len(state.Recipes))
	if state.Auction.Active {
		fmt.Fprintf(w, "Auction running with bid %.2f\n", state.Auction.Bid)
	}
}
