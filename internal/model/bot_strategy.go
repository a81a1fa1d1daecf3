package model

// Computer strategy constants
const (
	BotStrategyGhost  = "ghost"
	BotStrategyRandom = "random"
)

// DefaultBotStrategy is used when a match is created without naming a strategy
const DefaultBotStrategy = BotStrategyGhost

// BotStrategyDisplayName returns a human-readable label for a strategy
func BotStrategyDisplayName(strategy string) string {
	switch strategy {
	case BotStrategyGhost:
		return "Ghost"
	case BotStrategyRandom:
		return "Random"
	default:
		return strategy
	}
}

// ValidBotStrategies returns all valid computer strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategyGhost, BotStrategyRandom}
}
