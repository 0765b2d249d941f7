package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgInvalidOperation = "invalid operation"
	ErrMsgNotFound         = "not found"
	ErrMsgInvalidInput     = "invalid input"

	// Plot errors
	ErrMsgPlotEmpty           = "plot is empty"
	ErrMsgPlotOccupied        = "plot is occupied"
	ErrMsgAlreadyWatered      = "already watered today"
	ErrMsgAlreadyWeeded       = "already weeded"
	ErrMsgAlreadyFertilized   = "already fertilized"
	ErrMsgNotASeed            = "only seeds can be planted"
	ErrMsgContainerIneligible = "container cannot hold this flower"
	ErrMsgPlotIndex           = "no such plot"
	ErrMsgGardenFull          = "no room for another plot"
	ErrMsgNotContainer        = "only containers can be moved"

	// Bouquet errors
	ErrMsgInvalidBouquetSize = "bouquet must hold between 3 and 12 flowers"
	ErrMsgIneligibleStage    = "flower is not ready for a bouquet"

	// Auction errors
	ErrMsgAuctionActive       = "an auction is already active"
	ErrMsgNoActiveAuction     = "no active auction"
	ErrMsgEarningsUncollected = "auction earnings are waiting to be collected"
	ErrMsgNothingToCollect    = "no earnings to collect"

	// Storage and resource errors
	ErrMsgStorageIndex      = "no such storage entry"
	ErrMsgWrongItemKind     = "wrong kind of item"
	ErrMsgNoFertilizer      = "no fertilizer left"
	ErrMsgMulcherExhausted  = "mulcher has no uses left today"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgNotEdible         = "only seeds can be eaten"
	ErrMsgNoEnergy          = "not enough energy"
	ErrMsgNotMulchable      = "only withered flowers can be mulched"

	// Lookup errors
	ErrMsgFlowerNotFound = "flower not found"
	ErrMsgSaveNotFound   = "save not found"

	// Configuration errors
	ErrMsgInvalidWeatherShare = "weather shares must sum to 100"
)

// Common domain errors
// Precondition failures wrap ErrInvalidOperation, lookup failures wrap ErrNotFound.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidOperation = errors.New(ErrMsgInvalidOperation)
	ErrNotFound         = errors.New(ErrMsgNotFound)
	ErrInvalidInput     = errors.New(ErrMsgInvalidInput)

	// Plot errors
	ErrPlotEmpty           = invalid(ErrMsgPlotEmpty)
	ErrPlotOccupied        = invalid(ErrMsgPlotOccupied)
	ErrAlreadyWatered      = invalid(ErrMsgAlreadyWatered)
	ErrAlreadyWeeded       = invalid(ErrMsgAlreadyWeeded)
	ErrAlreadyFertilized   = invalid(ErrMsgAlreadyFertilized)
	ErrNotASeed            = invalid(ErrMsgNotASeed)
	ErrContainerIneligible = invalid(ErrMsgContainerIneligible)
	ErrPlotIndex           = invalid(ErrMsgPlotIndex)
	ErrGardenFull          = invalid(ErrMsgGardenFull)
	ErrNotContainer        = invalid(ErrMsgNotContainer)

	// Bouquet errors
	ErrInvalidBouquetSize = invalid(ErrMsgInvalidBouquetSize)
	ErrIneligibleStage    = invalid(ErrMsgIneligibleStage)

	// Auction errors
	ErrAuctionActive       = invalid(ErrMsgAuctionActive)
	ErrNoActiveAuction     = invalid(ErrMsgNoActiveAuction)
	ErrEarningsUncollected = invalid(ErrMsgEarningsUncollected)
	ErrNothingToCollect    = invalid(ErrMsgNothingToCollect)

	// Storage and resource errors
	ErrStorageIndex      = invalid(ErrMsgStorageIndex)
	ErrWrongItemKind     = invalid(ErrMsgWrongItemKind)
	ErrNoFertilizer      = invalid(ErrMsgNoFertilizer)
	ErrMulcherExhausted  = invalid(ErrMsgMulcherExhausted)
	ErrInsufficientFunds = invalid(ErrMsgInsufficientFunds)
	ErrNotEdible         = invalid(ErrMsgNotEdible)
	ErrNoEnergy          = invalid(ErrMsgNoEnergy)
	ErrNotMulchable      = invalid(ErrMsgNotMulchable)

	// Lookup errors
	ErrFlowerNotFound = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgFlowerNotFound)
	ErrSaveNotFound   = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgSaveNotFound)

	// Configuration errors
	ErrInvalidWeatherShare = fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgInvalidWeatherShare)
)

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidOperation, msg)
}
