package identify

// Identify is implemented by values that carry their own hash key.
type Identify interface {
	Identity() uint64
}
