package contract

// RulesFileVersion is the schema version of contract rule files.
const RulesFileVersion = "1.0"

// XPPerContract is granted on a successful contract.
const XPPerContract = 20

// RewardMultiplier scales the average input price into the reward price.
const RewardMultiplier = 3

// Log messages
const (
	LogMsgRulesLoaded   = "Contract rules loaded"
	LogMsgRulesFallback = "Contract rules file not found, using defaults"
	LogMsgDebitFailed   = "Contract cost debit failed"
	LogMsgContractDone  = "Contract completed"
	LogMsgPublishFailed = "Failed to publish contract event"
)
