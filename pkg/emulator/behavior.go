package emulator

// Behavior controls how a mock picks a response from its pool.
type Behavior string

const (
	// BehaviorStatic always returns the first response.
	BehaviorStatic Behavior = "static"
	// BehaviorSequential cycles through the pool in order, wrapping around.
	BehaviorSequential Behavior = "sequential"
	// BehaviorRandom picks a uniformly random response.
	BehaviorRandom Behavior = "random"
	// BehaviorError returns a synthetic 500 without consulting the pool.
	BehaviorError Behavior = "error"
	// BehaviorConditional returns the first response whose conditions match
	// the input, falling back to the last response as a catch-all.
	BehaviorConditional Behavior = "conditional"
)

// Valid reports whether b is a known behavior. The empty string is valid
// and normalizes to BehaviorStatic at registration time.
func (b Behavior) Valid() bool {
	switch b {
	case BehaviorStatic, BehaviorSequential, BehaviorRandom, BehaviorError, BehaviorConditional, "":
		return true
	}
	return false
}

// indexesPool reports whether the behavior reads from the response pool,
// i.e. whether an empty pool is a configuration fault.
func (b Behavior) indexesPool() bool {
	return b != BehaviorError
}
