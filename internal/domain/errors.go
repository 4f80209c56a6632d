package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Session errors
	ErrMsgNotLoggedIn        = "not logged in"
	ErrMsgUnauthorized       = "unauthorized"
	ErrMsgAdminTokenExpired  = "admin token expired"
	ErrMsgInvalidCredentials = "invalid credentials"

	// Catalog errors
	ErrMsgNotFound     = "resource not found"
	ErrMsgCaseNotFound = "case not found"
	ErrMsgEmptyCase    = "case has no contents"

	// Inventory errors
	ErrMsgItemNotFound   = "item not found"
	ErrMsgNotInInventory = "item not in inventory"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgBonusNotReady     = "daily bonus not ready"

	// Reveal errors
	ErrMsgRevealNotFound     = "reveal not found"
	ErrMsgRevealInProgress   = "a reveal is already in progress"
	ErrMsgInvalidTransition  = "invalid reveal transition"
	ErrMsgInvalidStripConfig = "invalid strip configuration"
	ErrMsgNoWinner           = "no winner could be drawn"

	// Battle errors
	ErrMsgBattleNotFound    = "battle not found"
	ErrMsgInvalidBattleMode = "invalid battle mode"
	ErrMsgPlaybackNotFound  = "battle playback not found"
	ErrMsgPlaybackRunning   = "battle playback already running"
	ErrMsgNoServerOutcome   = "round has no server outcome"

	// Contract errors
	ErrMsgContractRuleNotFound = "no contract rule for rarity"
	ErrMsgContractInvalid      = "invalid contract selection"

	// Backend errors
	ErrMsgBackendUnavailable = "backend unavailable"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNotLoggedIn        = errors.New(ErrMsgNotLoggedIn)
	ErrUnauthorized       = errors.New(ErrMsgUnauthorized)
	ErrAdminTokenExpired  = errors.New(ErrMsgAdminTokenExpired)
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)

	ErrNotFound     = errors.New(ErrMsgNotFound)
	ErrCaseNotFound = errors.New(ErrMsgCaseNotFound)
	ErrEmptyCase    = errors.New(ErrMsgEmptyCase)

	ErrItemNotFound   = errors.New(ErrMsgItemNotFound)
	ErrNotInInventory = errors.New(ErrMsgNotInInventory)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrBonusNotReady     = errors.New(ErrMsgBonusNotReady)

	ErrRevealNotFound     = errors.New(ErrMsgRevealNotFound)
	ErrRevealInProgress   = errors.New(ErrMsgRevealInProgress)
	ErrInvalidTransition  = errors.New(ErrMsgInvalidTransition)
	ErrInvalidStripConfig = errors.New(ErrMsgInvalidStripConfig)
	ErrNoWinner           = errors.New(ErrMsgNoWinner)

	ErrBattleNotFound    = errors.New(ErrMsgBattleNotFound)
	ErrInvalidBattleMode = errors.New(ErrMsgInvalidBattleMode)
	ErrPlaybackNotFound  = errors.New(ErrMsgPlaybackNotFound)
	ErrPlaybackRunning   = errors.New(ErrMsgPlaybackRunning)
	ErrNoServerOutcome   = errors.New(ErrMsgNoServerOutcome)

	ErrContractRuleNotFound = errors.New(ErrMsgContractRuleNotFound)
	ErrContractInvalid      = errors.New(ErrMsgContractInvalid)

	ErrBackendUnavailable = errors.New(ErrMsgBackendUnavailable)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
