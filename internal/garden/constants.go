package garden

// Operation names, used as the refused-operations metric label
const (
	OpWater           = "water"
	OpWeed            = "weed"
	OpFertilize       = "fertilize"
	OpPlant           = "plant"
	OpHarvest         = "harvest"
	OpBuyPlot         = "buy_plot"
	OpStorePlot       = "store_plot"
	OpPlacePlot       = "place_plot"
	OpCompose         = "compose"
	OpStartAuction    = "start_auction"
	OpAcceptEarly     = "accept_early"
	OpCollectEarnings = "collect_earnings"
	OpMulch           = "mulch"
	OpEat             = "eat"
)

// Log messages
const (
	LogMsgOperationRefused = "Garden operation refused"
	LogMsgPlotTended       = "Plot tended"
	LogMsgDayAdvanced      = "Day advanced"
	LogMsgPlotOutcome      = "Plot advanced"
	LogMsgBouquetComposed  = "Bouquet composed"
	LogMsgAuctionStarted   = "Auction started"
	LogMsgAuctionAccepted  = "Auction accepted early"
	LogMsgEarnings         = "Earnings collected"
	LogMsgPlotPurchased    = "Plot purchased"
	LogMsgGardenLoaded     = "Garden loaded"
	LogMsgNewGarden        = "No save found, starting a new garden"
	LogMsgGardenSaved      = "Garden saved"
)

// Log field keys
const (
	LogFieldOperation = "operation"
	LogFieldPlot      = "plot"
	LogFieldFlower    = "flower"
	LogFieldDay       = "day"
	LogFieldSlot      = "slot"
	LogFieldBouquet   = "bouquet_id"
	LogFieldAmount    = "amount"
	LogFieldDuration  = "duration"
	LogFieldWeather   = "weather"
	LogFieldError     = "error"
)
