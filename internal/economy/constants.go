package economy

import (
	"time"

	"github.com/samigvnc/csgo-frontend/internal/domain"
)

// Daily bonus
const (
	DailyBonusAmount   = domain.Money(100 * 100)
	DailyBonusInterval = 24 * time.Hour
)

// Formatted error messages
const (
	ErrMsgItemNotInInventoryFmt = "item %s not in inventory: %w"
	ErrMsgCreditFailedFmt       = "failed to credit %s: %w"
	ErrMsgBonusNotReadyFmt      = "%s, next claim in %s"
)

// Log messages
const (
	LogMsgItemSold      = "Item sold"
	LogMsgBonusClaimed  = "Daily bonus claimed"
	LogMsgCreditFailed  = "Backend credit failed"
	LogMsgPublishFailed = "Failed to publish economy event"
)
