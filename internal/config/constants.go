package config

const (
	// Configuration file paths
	ConfigPathRevealBands   = "configs/reveal_bands.json"
	ConfigPathContractRules = "configs/contracts.json"
	ConfigPathSessionFile   = "data/session.json"
	ConfigPathDeadLetter    = "logs/event_deadletter.jsonl"

	// Schema paths
	SchemaPathRevealBands   = "configs/schemas/reveal_bands.schema.json"
	SchemaPathContractRules = "configs/schemas/contracts.schema.json"
)
