package config

// BatchConfig holds per-repository fan-out configuration
type BatchConfig struct {
	Workers int
}

// DefaultBatchConfig returns the default fan-out configuration
func DefaultBatchConfig() *BatchConfig {
	return &BatchConfig{
		Workers: 4,
	}
}
