package handler

import (
	"context"
	"net/http"

	"github.com/osse101/Bouquet_Go/internal/domain"
	"github.com/osse101/Bouquet_Go/internal/event"
	"github.com/osse101/Bouquet_Go/internal/garden"
	"github.com/osse101/Bouquet_Go/internal/narrative"
)

// GardenHandler serves the garden session over HTTP
type GardenHandler struct {
	service  garden.Service
	renderer *narrative.Renderer
}

// NewGardenHandler creates a garden handler. renderer may be nil, in which case day
// reports are returned without narrative lines.
func NewGardenHandler(service garden.Service, renderer *narrative.Renderer) *GardenHandler {
	return &GardenHandler{service: service, renderer: renderer}
}

// PlantRequest is the request body for planting a seed
type PlantRequest struct {
	Flower string `json:"flower" validate:"required,notblank,max=64"`
}

// BuyPlotRequest is the request body for buying a plot
type BuyPlotRequest struct {
	Container bool `json:"container"`
}

// ComposeRequest is the request body for composing a bouquet
type ComposeRequest struct {
	Storage []int  `json:"storage" validate:"required,unique,dive,min=0"`
	Label   string `json:"label" validate:"max=40,label"`
}

// StartAuctionRequest is the request body for starting an auction
type StartAuctionRequest struct {
	Storage *int `json:"storage" validate:"required,min=0"`
}

// IndexResponse reports where something ended up
type IndexResponse struct {
	Message string `json:"message"`
	Index   int    `json:"index"`
}

// EarningsResponse reports collected earnings
type EarningsResponse struct {
	Message string  `json:"message"`
	Amount  float64 `json:"amount"`
}

// DayResponse is the result of advancing a day
type DayResponse struct {
	Message   string           `json:"message"`
	Report    domain.DayReport `json:"report"`
	Narrative []string         `json:"narrative,omitempty"`
}

// HandleGetGarden returns a snapshot of the whole garden
// @Summary Get the garden
// @Description Snapshot of plots, storage, auction and purse
// @Tags garden
// @Produce json
// @Success 200 {object} domain.GardenState
// @Router /api/v1/garden [get]
func (h *GardenHandler) HandleGetGarden(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Snapshot(r.Context()))
}

// HandlePlotAction returns a handler for a tending action that needs no body
func (h *GardenHandler) HandlePlotAction(opName, successMsg string, act func(garden.Service, context.Context, int) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		i, ok := pathIndex(w, r, "index", ErrMsgInvalidPlotIndex)
		if !ok {
			return
		}
		if err := act(h.service, r.Context(), i); err != nil {
			respondServiceError(w, r, opName, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: successMsg})
	}
}

// HandleWater waters a plot
// @Summary Water a plot
// @Tags plots
// @Produce json
// @Param index path int true "Plot index"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid index or plot already watered"
// @Router /api/v1/plots/{index}/water [post]
func (h *GardenHandler) HandleWater() http.HandlerFunc {
	return h.HandlePlotAction(garden.OpWater, MsgPlotWatered, garden.Service.Water)
}

// HandleWeed weeds a plot
// @Summary Weed a plot
// @Tags plots
// @Produce json
// @Param index path int true "Plot index"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid index or nothing to weed"
// @Router /api/v1/plots/{index}/weed [post]
func (h *GardenHandler) HandleWeed() http.HandlerFunc {
	return h.HandlePlotAction(garden.OpWeed, MsgPlotWeeded, garden.Service.Weed)
}

// HandleFertilize fertilizes a plot
// @Summary Fertilize a plot
// @Description Spends one fertilizer charge
// @Tags plots
// @Produce json
// @Param index path int true "Plot index"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid index or no fertilizer"
// @Router /api/v1/plots/{index}/fertilize [post]
func (h *GardenHandler) HandleFertilize() http.HandlerFunc {
	return h.HandlePlotAction(garden.OpFertilize, MsgPlotFertilized, garden.Service.Fertilize)
}

// HandleStorePlot moves a container into storage
// @Summary Store a container
// @Description Moves a container plot, with its flower, into storage
// @Tags plots
// @Produce json
// @Param index path int true "Plot index"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid index or not a container"
// @Router /api/v1/plots/{index}/store [post]
func (h *GardenHandler) HandleStorePlot() http.HandlerFunc {
	return h.HandlePlotAction(garden.OpStorePlot, MsgPlotStored, garden.Service.StorePlot)
}

// HandlePlant plants a seed of the requested flower
// @Summary Plant a seed
// @Tags plots
// @Accept json
// @Produce json
// @Param index path int true "Plot index"
// @Param request body PlantRequest true "Flower to plant"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Plot occupied, container ineligible or not enough coins"
// @Failure 404 {object} ErrorResponse "Unknown flower"
// @Router /api/v1/plots/{index}/plant [post]
func (h *GardenHandler) HandlePlant(w http.ResponseWriter, r *http.Request) {
	i, ok := pathIndex(w, r, "index", ErrMsgInvalidPlotIndex)
	if !ok {
		return
	}
	var req PlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, garden.OpPlant); err != nil {
		return
	}
	if err := h.service.Plant(r.Context(), i, req.Flower); err != nil {
		respondServiceError(w, r, garden.OpPlant, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSeedPlanted})
}

// HandleHarvest moves a plot's flower into storage
// @Summary Harvest a plot
// @Tags plots
// @Produce json
// @Param index path int true "Plot index"
// @Success 200 {object} DataResponse{data=domain.Organism}
// @Failure 400 {object} ErrorResponse "Plot is empty"
// @Router /api/v1/plots/{index}/harvest [post]
func (h *GardenHandler) HandleHarvest(w http.ResponseWriter, r *http.Request) {
	i, ok := pathIndex(w, r, "index", ErrMsgInvalidPlotIndex)
	if !ok {
		return
	}
	flower, err := h.service.Harvest(r.Context(), i)
	if err != nil {
		respondServiceError(w, r, garden.OpHarvest, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: MsgFlowerHarvested, Data: flower})
}

// HandleBuyPlot buys a field plot or a container
// @Summary Buy a plot
// @Tags plots
// @Accept json
// @Produce json
// @Param request body BuyPlotRequest true "Field plot or container"
// @Success 201 {object} IndexResponse
// @Failure 400 {object} ErrorResponse "Not enough coins or garden full"
// @Router /api/v1/plots [post]
func (h *GardenHandler) HandleBuyPlot(w http.ResponseWriter, r *http.Request) {
	var req BuyPlotRequest
	if err := DecodeAndValidateRequest(r, w, &req, garden.OpBuyPlot); err != nil {
		return
	}
	i, err := h.service.BuyPlot(r.Context(), req.Container)
	if err != nil {
		respondServiceError(w, r, garden.OpBuyPlot, err)
		return
	}
	respondJSON(w, http.StatusCreated, IndexResponse{Message: MsgPlotPurchased, Index: i})
}

// HandlePlacePlot puts a stored plot back into the garden
// @Summary Place a stored plot
// @Tags storage
// @Produce json
// @Param index path int true "Storage index"
// @Success 200 {object} IndexResponse
// @Failure 400 {object} ErrorResponse "Not a plot or garden full"
// @Router /api/v1/storage/{index}/place [post]
func (h *GardenHandler) HandlePlacePlot(w http.ResponseWriter, r *http.Request) {
	si, ok := pathIndex(w, r, "index", ErrMsgInvalidStorageIndex)
	if !ok {
		return
	}
	i, err := h.service.PlacePlot(r.Context(), si)
	if err != nil {
		respondServiceError(w, r, garden.OpPlacePlot, err)
		return
	}
	respondJSON(w, http.StatusOK, IndexResponse{Message: MsgPlotPlaced, Index: i})
}

// HandleStorageAction returns a handler for an action on one storage entry
func (h *GardenHandler) HandleStorageAction(opName, successMsg string, act func(garden.Service, context.Context, int) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		si, ok := pathIndex(w, r, "index", ErrMsgInvalidStorageIndex)
		if !ok {
			return
		}
		if err := act(h.service, r.Context(), si); err != nil {
			respondServiceError(w, r, opName, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: successMsg})
	}
}

// HandleMulch turns a withered stored flower into fertilizer
// @Summary Mulch a withered flower
// @Description Turns a withered stored flower into one fertilizer charge
// @Tags storage
// @Produce json
// @Param index path int true "Storage index"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Not mulchable or mulcher used up"
// @Router /api/v1/storage/{index}/mulch [post]
func (h *GardenHandler) HandleMulch() http.HandlerFunc {
	return h.HandleStorageAction(garden.OpMulch, MsgFlowerMulched, garden.Service.Mulch)
}

// HandleEat eats a stored seed for energy
// @Summary Eat a stored seed
// @Description Restores the seed's energy
// @Tags storage
// @Produce json
// @Param index path int true "Storage index"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Not a seed"
// @Router /api/v1/storage/{index}/eat [post]
func (h *GardenHandler) HandleEat() http.HandlerFunc {
	return h.HandleStorageAction(garden.OpEat, MsgSeedEaten, garden.Service.Eat)
}

// HandleCompose binds stored flowers into a bouquet
// @Summary Compose a bouquet
// @Tags bouquets
// @Accept json
// @Produce json
// @Param request body ComposeRequest true "Storage indexes and optional label"
// @Success 201 {object} DataResponse{data=domain.ComposedGoods}
// @Failure 400 {object} ErrorResponse "Wrong size or ineligible stage"
// @Router /api/v1/bouquets [post]
func (h *GardenHandler) HandleCompose(w http.ResponseWriter, r *http.Request) {
	var req ComposeRequest
	if err := DecodeAndValidateRequest(r, w, &req, garden.OpCompose); err != nil {
		return
	}
	goods, err := h.service.Compose(r.Context(), req.Storage, req.Label)
	if err != nil {
		respondServiceError(w, r, garden.OpCompose, err)
		return
	}
	respondJSON(w, http.StatusCreated, DataResponse{Message: MsgBouquetComposed, Data: goods})
}

// HandleStartAuction puts a stored bouquet up for auction
// @Summary Start an auction
// @Description The first bid happens on the next day advance
// @Tags auction
// @Accept json
// @Produce json
// @Param request body StartAuctionRequest true "Stored bouquet"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Auction running or earnings uncollected"
// @Router /api/v1/auction/start [post]
func (h *GardenHandler) HandleStartAuction(w http.ResponseWriter, r *http.Request) {
	var req StartAuctionRequest
	if err := DecodeAndValidateRequest(r, w, &req, garden.OpStartAuction); err != nil {
		return
	}
	if err := h.service.StartAuction(r.Context(), *req.Storage); err != nil {
		respondServiceError(w, r, garden.OpStartAuction, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgAuctionStarted})
}

// HandleAcceptEarly ends the running auction at its current bid
// @Summary Accept the current bid
// @Tags auction
// @Produce json
// @Success 200 {object} DataResponse{data=domain.BidOutcome}
// @Failure 400 {object} ErrorResponse "No auction running"
// @Router /api/v1/auction/accept [post]
func (h *GardenHandler) HandleAcceptEarly(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.service.AcceptEarly(r.Context())
	if err != nil {
		respondServiceError(w, r, garden.OpAcceptEarly, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: MsgAuctionAccepted, Data: outcome})
}

// HandleCollectEarnings moves auction earnings into the purse
// @Summary Collect auction earnings
// @Tags auction
// @Produce json
// @Success 200 {object} EarningsResponse
// @Failure 400 {object} ErrorResponse "Nothing to collect"
// @Router /api/v1/auction/collect [post]
func (h *GardenHandler) HandleCollectEarnings(w http.ResponseWriter, r *http.Request) {
	amount, err := h.service.CollectEarnings(r.Context())
	if err != nil {
		respondServiceError(w, r, garden.OpCollectEarnings, err)
		return
	}
	respondJSON(w, http.StatusOK, EarningsResponse{Message: MsgEarningsCollected, Amount: amount})
}

// HandleAdvanceDay runs one day advance
// @Summary Advance one day
// @Description Resolves growth, the auction bid and the weather, then persists the garden
// @Tags garden
// @Produce json
// @Success 200 {object} DayResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/day/advance [post]
func (h *GardenHandler) HandleAdvanceDay(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.AdvanceDay(r.Context())
	if err != nil {
		respondServiceError(w, r, "advance_day", err)
		return
	}
	respondJSON(w, http.StatusOK, DayResponse{
		Message:   MsgDayAdvanced,
		Report:    report,
		Narrative: h.narrate(report),
	})
}

// HandleSave writes the garden to its save slot
// @Summary Save the garden
// @Tags saves
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/saves/save [post]
func (h *GardenHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Save(r.Context()); err != nil {
		respondServiceError(w, r, "save", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgGardenSaved})
}

// HandleLoad replaces the garden with its saved state
// @Summary Load the garden
// @Tags saves
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/saves/load [post]
func (h *GardenHandler) HandleLoad(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Load(r.Context()); err != nil {
		respondServiceError(w, r, "load", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgGardenLoaded})
}

func (h *GardenHandler) narrate(report domain.DayReport) []string {
	if h.renderer == nil {
		return nil
	}
	var lines []string
	for _, evt := range event.NewDayEvents(report, nil) {
		rendered, err := h.renderer.Render(evt)
		if err != nil {
			continue
		}
		lines = append(lines, rendered...)
	}
	return lines
}
