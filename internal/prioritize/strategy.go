package prioritize

// Strategy names a preset weight distribution.
type Strategy string

const (
	StrategySmart    Strategy = "smart"
	StrategyFast     Strategy = "fast"
	StrategyImpact   Strategy = "impact"
	StrategyDeadline Strategy = "deadline"
)

// Weights returns the preset for s. The empty strategy resolves to smart.
func (s Strategy) Weights() (Weights, error) {
	switch s {
	case "", StrategySmart:
		return DefaultWeights(), nil
	case StrategyFast:
		return Weights{Urgency: 0.2, Importance: 0.1, Effort: 0.6, Dependencies: 0.1}, nil
	case StrategyImpact:
		return Weights{Urgency: 0.1, Importance: 0.7, Effort: 0.1, Dependencies: 0.1}, nil
	case StrategyDeadline:
		return Weights{Urgency: 0.7, Importance: 0.2, Effort: 0.05, Dependencies: 0.05}, nil
	default:
		return Weights{}, ErrUnknownStrategy
	}
}
