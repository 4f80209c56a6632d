package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgMissingURLParam   = "Missing %s"
	ErrMsgInvalidRevealID   = "Invalid reveal ID"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidRarity     = "Invalid rarity"
	ErrMsgInvalidStatus     = "Invalid battle status"
)

// Success messages for API responses
const (
	MsgLoggedOut         = "Logged out"
	MsgUserDeleted       = "User deleted"
	MsgCaseDeleted       = "Case deleted"
	MsgCatalogPurged     = "Catalog cache purged"
	MsgNoActiveReveal    = "No active reveal"
	MsgContractSucceeded = "Contract succeeded!"
	MsgContractFailed    = "Contract failed. The items were consumed."
)

// Log messages
const (
	LogMsgDecodeFailed     = "Failed to decode request"
	LogMsgRequestDecoded   = "Request decoded"
	LogMsgServiceError     = "Service error"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgMissingParameter = "Missing request parameter"
)
