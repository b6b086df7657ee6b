package pipeline

const (
	// bufferGrowthFactor multiplies capacity when a write does not fit.
	bufferGrowthFactor = 2

	// minCapacity is the smallest buffer allocated.
	minCapacity = 1
)
