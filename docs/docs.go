// Package docs holds the Swagger description of the HTTP API.
// Regenerate with: swag init -g cmd/app/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/api/v1/auction/accept": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"auction"
				],
				"summary": "Accept the current bid",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.DataResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/domain.BidOutcome"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "No auction running",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/auction/collect": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"auction"
				],
				"summary": "Collect auction earnings",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.EarningsResponse"
						}
					},
					"400": {
						"description": "Nothing to collect",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/auction/start": {
			"post": {
				"description": "The first bid happens on the next day advance",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auction"
				],
				"summary": "Start an auction",
				"parameters": [
					{
						"description": "Stored bouquet",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.StartAuctionRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.SuccessResponse"
						}
					},
					"400": {
						"description": "Auction running or earnings uncollected",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/bouquets": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"bouquets"
				],
				"summary": "Compose a bouquet",
				"parameters": [
					{
						"description": "Storage indexes and optional label",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.ComposeRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.DataResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/domain.ComposedGoods"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Wrong size or ineligible stage",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/day/advance": {
			"post": {
				"description": "Resolves growth, the auction bid and the weather, then persists the garden",
				"produces": [
					"application/json"
				],
				"tags": [
					"garden"
				],
				"summary": "Advance one day",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.DayResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/events": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"events"
				],
				"summary": "Event history",
				"parameters": [
					{
						"description": "Event type",
						"name": "type",
						"in": "query",
						"type": "string"
					},
					{
						"description": "First day",
						"name": "from_day",
						"in": "query",
						"type": "integer"
					},
					{
						"description": "Last day",
						"name": "to_day",
						"in": "query",
						"type": "integer"
					},
					{
						"description": "Maximum entries",
						"name": "limit",
						"in": "query",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.DataResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/repository.EventLogEntry"
											}
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/garden": {
			"get": {
				"description": "Snapshot of plots, storage, auction and purse",
				"produces": [
					"application/json"
				],
				"tags": [
					"garden"
				],
				"summary": "Get the garden",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.GardenState"
						}
					}
				}
			}
		},
		"/api/v1/plots": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"plots"
				],
				"summary": "Buy a plot",
				"parameters": [
					{
						"description": "Field plot or container",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.BuyPlotRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.IndexResponse"
						}
					},
					"400": {
						"description": "Not enough coins or garden full",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/plots/{index}/fertilize": {
			"post": {
				"description": "Spends one fertilizer charge",
				"produces": [
					"application/json"
				],
				"tags": [
					"plots"
				],
				"summary": "Fertilize a plot",
				"parameters": [
					{
						"description": "Plot index",
						"name": "index",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.SuccessResponse"
						}
					},
					"400": {
						"description": "Invalid index or no fertilizer",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/plots/{index}/harvest": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"plots"
				],
				"summary": "Harvest a plot",
				"parameters": [
					{
						"description": "Plot index",
						"name": "index",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.DataResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/domain.Organism"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Plot is empty",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/plots/{index}/plant": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"plots"
				],
				"summary": "Plant a seed",
				"parameters": [
					{
						"description": "Plot index",
						"name": "index",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"description": "Flower to plant",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.PlantRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.SuccessResponse"
						}
					},
					"400": {
						"description": "Plot occupied, container ineligible or not enough coins",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"404": {
						"description": "Unknown flower",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/plots/{index}/store": {
			"post": {
				"description": "Moves a container plot, with its flower, into storage",
				"produces": [
					"application/json"
				],
				"tags": [
					"plots"
				],
				"summary": "Store a container",
				"parameters": [
					{
						"description": "Plot index",
						"name": "index",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.SuccessResponse"
						}
					},
					"400": {
						"description": "Invalid index or not a container",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/plots/{index}/water": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"plots"
				],
				"summary": "Water a plot",
				"parameters": [
					{
						"description": "Plot index",
						"name": "index",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.SuccessResponse"
						}
					},
					"400": {
						"description": "Invalid index or plot already watered",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/plots/{index}/weed": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"plots"
				],
				"summary": "Weed a plot",
				"parameters": [
					{
						"description": "Plot index",
						"name": "index",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.SuccessResponse"
						}
					},
					"400": {
						"description": "Invalid index or nothing to weed",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/saves": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"saves"
				],
				"summary": "List save slots",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.DataResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/repository.SaveInfo"
											}
										}
									}
								}
							]
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/saves/load": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"saves"
				],
				"summary": "Load the garden",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.SuccessResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/saves/save": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"saves"
				],
				"summary": "Save the garden",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.SuccessResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/storage/{index}/eat": {
			"post": {
				"description": "Restores the seed's energy",
				"produces": [
					"application/json"
				],
				"tags": [
					"storage"
				],
				"summary": "Eat a stored seed",
				"parameters": [
					{
						"description": "Storage index",
						"name": "index",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.SuccessResponse"
						}
					},
					"400": {
						"description": "Not a seed",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/storage/{index}/mulch": {
			"post": {
				"description": "Turns a withered stored flower into one fertilizer charge",
				"produces": [
					"application/json"
				],
				"tags": [
					"storage"
				],
				"summary": "Mulch a withered flower",
				"parameters": [
					{
						"description": "Storage index",
						"name": "index",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.SuccessResponse"
						}
					},
					"400": {
						"description": "Not mulchable or mulcher used up",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/storage/{index}/place": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"storage"
				],
				"summary": "Place a stored plot",
				"parameters": [
					{
						"description": "Storage index",
						"name": "index",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.IndexResponse"
						}
					},
					"400": {
						"description": "Not a plot or garden full",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/healthz": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Liveness",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.HealthResponse"
						}
					}
				}
			}
		},
		"/readyz": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Readiness",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.HealthResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/handler.HealthResponse"
						}
					}
				}
			}
		},
		"/version": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Build version",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.VersionInfo"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"domain.AuctionState": {
			"type": "object",
			"properties": {
				"active": {
					"type": "boolean"
				},
				"applied": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"bid": {
					"type": "number"
				},
				"earnings": {
					"type": "number"
				},
				"goods": {
					"$ref": "#/definitions/domain.ComposedGoods"
				},
				"start_day": {
					"type": "integer"
				},
				"uncollected": {
					"type": "boolean"
				}
			}
		},
		"domain.BidOutcome": {
			"type": "object",
			"properties": {
				"auction_day": {
					"type": "integer"
				},
				"bid_after": {
					"type": "number"
				},
				"bid_before": {
					"type": "number"
				},
				"ended": {
					"type": "boolean"
				},
				"factor": {
					"type": "number"
				},
				"rules_applied": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"step": {
					"type": "string"
				}
			}
		},
		"domain.ComposedGoods": {
			"type": "object",
			"properties": {
				"base_value": {
					"type": "number"
				},
				"created_day": {
					"type": "integer"
				},
				"flowers": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Organism"
					}
				},
				"id": {
					"type": "string"
				},
				"label": {
					"type": "string"
				}
			}
		},
		"domain.DayReport": {
			"type": "object",
			"properties": {
				"auction": {
					"$ref": "#/definitions/domain.BidOutcome"
				},
				"day": {
					"type": "integer"
				},
				"plots": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.PlotOutcome"
					}
				},
				"summary": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.SummaryEvent"
					}
				},
				"weather": {
					"$ref": "#/definitions/domain.WeatherOutcome"
				}
			}
		},
		"domain.GardenState": {
			"type": "object",
			"properties": {
				"auction": {
					"$ref": "#/definitions/domain.AuctionState"
				},
				"coins": {
					"type": "number"
				},
				"day": {
					"type": "integer"
				},
				"energy": {
					"type": "integer"
				},
				"fertilizer_charges": {
					"type": "integer"
				},
				"mulch_uses_left": {
					"type": "integer"
				},
				"plots": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Plot"
					}
				},
				"recipes": {
					"type": "object",
					"additionalProperties": {
						"$ref": "#/definitions/domain.Recipe"
					}
				},
				"storage": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.StoredItem"
					}
				}
			}
		},
		"domain.Organism": {
			"type": "object",
			"properties": {
				"days": {
					"type": "integer"
				},
				"difficulty": {
					"type": "integer"
				},
				"durability": {
					"type": "number"
				},
				"name": {
					"type": "string"
				},
				"nrg_restored": {
					"type": "integer"
				},
				"stage": {
					"type": "string"
				},
				"woody": {
					"type": "boolean"
				}
			}
		},
		"domain.Plot": {
			"type": "object",
			"properties": {
				"container": {
					"type": "boolean"
				},
				"fertilized": {
					"type": "boolean"
				},
				"organism": {
					"$ref": "#/definitions/domain.Organism"
				},
				"soil": {
					"type": "integer"
				},
				"unwatered_days": {
					"type": "integer"
				},
				"watered": {
					"type": "boolean"
				},
				"weeded": {
					"type": "boolean"
				}
			}
		},
		"domain.PlotChange": {
			"type": "object",
			"properties": {
				"durability_after": {
					"type": "number"
				},
				"durability_before": {
					"type": "number"
				},
				"flower": {
					"type": "string"
				},
				"plot": {
					"type": "integer"
				},
				"soil_after": {
					"type": "integer"
				},
				"soil_before": {
					"type": "integer"
				},
				"stage_after": {
					"type": "string"
				},
				"stage_before": {
					"type": "string"
				},
				"watered": {
					"type": "boolean"
				}
			}
		},
		"domain.PlotOutcome": {
			"type": "object",
			"properties": {
				"durability_lost": {
					"type": "number"
				},
				"flower": {
					"type": "string"
				},
				"needs_water": {
					"type": "boolean"
				},
				"needs_weeding": {
					"type": "boolean"
				},
				"plot": {
					"type": "integer"
				},
				"result": {
					"type": "string"
				},
				"soil_after": {
					"type": "integer"
				},
				"soil_before": {
					"type": "integer"
				},
				"stage_after": {
					"type": "string"
				},
				"stage_before": {
					"type": "string"
				}
			}
		},
		"domain.Recipe": {
			"type": "object",
			"properties": {
				"first_day": {
					"type": "integer"
				},
				"label": {
					"type": "string"
				},
				"signature": {
					"type": "string"
				},
				"times_composed": {
					"type": "integer"
				}
			}
		},
		"domain.StoredItem": {
			"type": "object",
			"properties": {
				"bouquet": {
					"$ref": "#/definitions/domain.ComposedGoods"
				},
				"flower": {
					"$ref": "#/definitions/domain.Organism"
				},
				"kind": {
					"type": "string"
				},
				"plot": {
					"$ref": "#/definitions/domain.Plot"
				}
			}
		},
		"domain.SummaryEvent": {
			"type": "object",
			"properties": {
				"count": {
					"type": "integer"
				},
				"kind": {
					"type": "string"
				}
			}
		},
		"domain.WeatherOutcome": {
			"type": "object",
			"properties": {
				"affected": {
					"type": "integer"
				},
				"changes": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.PlotChange"
					}
				},
				"destroyed": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Organism"
					}
				},
				"harvested": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Organism"
					}
				},
				"kind": {
					"type": "string"
				},
				"note": {
					"type": "string"
				},
				"occurred": {
					"type": "boolean"
				}
			}
		},
		"handler.BuyPlotRequest": {
			"type": "object",
			"properties": {
				"container": {
					"type": "boolean"
				}
			}
		},
		"handler.ComposeRequest": {
			"type": "object",
			"properties": {
				"label": {
					"type": "string",
					"maxLength": 40
				},
				"storage": {
					"type": "array",
					"items": {
						"type": "integer"
					}
				}
			},
			"required": [
				"storage"
			]
		},
		"handler.DataResponse": {
			"type": "object",
			"properties": {
				"data": {},
				"message": {
					"type": "string"
				}
			}
		},
		"handler.DayResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				},
				"narrative": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"report": {
					"$ref": "#/definitions/domain.DayReport"
				}
			}
		},
		"handler.EarningsResponse": {
			"type": "object",
			"properties": {
				"amount": {
					"type": "number"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"handler.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				}
			}
		},
		"handler.HealthResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"handler.IndexResponse": {
			"type": "object",
			"properties": {
				"index": {
					"type": "integer"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"handler.PlantRequest": {
			"type": "object",
			"properties": {
				"flower": {
					"type": "string",
					"maxLength": 64
				}
			},
			"required": [
				"flower"
			]
		},
		"handler.StartAuctionRequest": {
			"type": "object",
			"properties": {
				"storage": {
					"type": "integer",
					"minimum": 0
				}
			},
			"required": [
				"storage"
			]
		},
		"handler.SuccessResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				}
			}
		},
		"handler.VersionInfo": {
			"type": "object",
			"properties": {
				"git_commit": {
					"type": "string"
				},
				"go_version": {
					"type": "string"
				},
				"modified": {
					"type": "boolean"
				},
				"version": {
					"type": "string"
				}
			}
		},
		"repository.EventLogEntry": {
			"type": "object",
			"properties": {
				"created_at": {
					"type": "string"
				},
				"day": {
					"type": "integer"
				},
				"event_type": {
					"type": "string"
				},
				"id": {
					"type": "integer"
				},
				"metadata": {
					"type": "object",
					"additionalProperties": true
				},
				"payload": {
					"type": "object",
					"additionalProperties": true
				},
				"slot": {
					"type": "string"
				}
			}
		},
		"repository.SaveInfo": {
			"type": "object",
			"properties": {
				"day": {
					"type": "integer"
				},
				"slot": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"ApiKeyAuth": {
			"type": "apiKey",
			"name": "X-API-Key",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Bouquet garden API",
	Description:      "Day-advance gardening simulation: plots, storage, bouquets and auctions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
