package prioritize

// Factor names used on the wire and in weight configs.
const (
	FactorUrgency      = "urgency"
	FactorImportance   = "importance"
	FactorEffort       = "effort"
	FactorDependencies = "dependencies"
)

// Factors lists the factor names in their canonical order.
var Factors = [...]string{FactorUrgency, FactorImportance, FactorEffort, FactorDependencies}

// Weights holds the relative weight of each scoring factor.
// It is a value type: Normalize and WithOverrides never modify the receiver.
type Weights struct {
	Urgency      float64 `json:"urgency"`
	Importance   float64 `json:"importance"`
	Effort       float64 `json:"effort"`
	Dependencies float64 `json:"dependencies"`
}

// DefaultWeights returns the "smart balance" weight distribution.
func DefaultWeights() Weights {
	return Weights{
		Urgency:      0.4,
		Importance:   0.3,
		Effort:       0.1,
		Dependencies: 0.2,
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Urgency + w.Importance + w.Effort + w.Dependencies
}

// Normalize scales the weights so they sum to 1.0. A zero total is treated
// as 1.0, which leaves the weights unchanged.
func (w Weights) Normalize() Weights {
	total := w.Sum()
	if total == 0 {
		total = 1.0
	}
	return Weights{
		Urgency:      w.Urgency / total,
		Importance:   w.Importance / total,
		Effort:       w.Effort / total,
		Dependencies: w.Dependencies / total,
	}
}

// WithOverrides returns a copy of w with every non-nil override applied.
func (w Weights) WithOverrides(o WeightOverrides) Weights {
	if o.Urgency != nil {
		w.Urgency = *o.Urgency
	}
	if o.Importance != nil {
		w.Importance = *o.Importance
	}
	if o.Effort != nil {
		w.Effort = *o.Effort
	}
	if o.Dependencies != nil {
		w.Dependencies = *o.Dependencies
	}
	return w
}

// Validate returns ErrNegativeWeight if any factor is below zero.
func (w Weights) Validate() error {
	for _, v := range []float64{w.Urgency, w.Importance, w.Effort, w.Dependencies} {
		if v < 0 {
			return ErrNegativeWeight
		}
	}
	return nil
}
