// Package configs ships the JSON schemas for the game's config files
package configs

import "embed"

// BalanceSchema is the schema path of balance.json inside Schemas
const BalanceSchema = "schemas/balance.schema.json"

// Schemas holds every shipped JSON schema
//
//go:embed schemas/*.json
var Schemas embed.FS
