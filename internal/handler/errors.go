package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPlotIndex      = "Invalid plot index"
	ErrMsgInvalidStorageIndex   = "Invalid storage index"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"

	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgNotFoundError      = "Not found"
	ErrMsgSaveFailed         = "Failed to save the garden"
	ErrMsgLoadFailed         = "Failed to load the garden"
	ErrMsgHistoryFailed      = "Failed to retrieve event history"
	ErrMsgListSavesFailed    = "Failed to list saves"
)

// Success messages for API responses
const (
	MsgPlotWatered       = "Plot watered"
	MsgPlotWeeded        = "Plot weeded"
	MsgPlotFertilized    = "Plot fertilized"
	MsgSeedPlanted       = "Seed planted"
	MsgFlowerHarvested   = "Flower harvested"
	MsgPlotPurchased     = "Plot purchased"
	MsgPlotStored        = "Plot moved to storage"
	MsgPlotPlaced        = "Plot placed in the garden"
	MsgBouquetComposed   = "Bouquet composed"
	MsgAuctionStarted    = "Auction starts tomorrow"
	MsgAuctionAccepted   = "Bid accepted"
	MsgEarningsCollected = "Earnings collected"
	MsgFlowerMulched     = "Flower mulched"
	MsgSeedEaten         = "Seed eaten"
	MsgDayAdvanced       = "Day advanced"
	MsgGardenSaved       = "Garden saved"
	MsgGardenLoaded      = "Garden loaded"
)

// Log messages
const (
	LogMsgDecodeFailed    = "Failed to decode request"
	LogMsgRequestDecoded  = "Request decoded"
	LogMsgOperationFailed = "Garden operation failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgReadinessFailed = "Readiness check failed"
)
