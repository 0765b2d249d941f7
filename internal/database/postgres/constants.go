package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Save Operations
const (
	ErrMsgFailedToLoadSave  = "failed to load save"
	ErrMsgFailedToStoreSave = "failed to store save"
	ErrMsgFailedToListSaves = "failed to list saves"
)

// Error Messages - Event Log Operations
const (
	ErrMsgFailedToMarshalPayload  = "failed to marshal event payload"
	ErrMsgFailedToMarshalMetadata = "failed to marshal event metadata"
	ErrMsgFailedToInsertEvent     = "failed to insert event"
	ErrMsgFailedToQueryEvents     = "failed to query events"
	ErrMsgFailedToScanEvent       = "failed to scan event"
	ErrMsgFailedToCleanupEvents   = "failed to clean up events"
)

// Error Messages - Flower Catalog Operations
const (
	ErrMsgFailedToQueryFlowers  = "failed to query flowers"
	ErrMsgFailedToUpsertFlower  = "failed to upsert flower"
	ErrMsgFailedToDecodeFlowers = "failed to decode flower stage values"
)
