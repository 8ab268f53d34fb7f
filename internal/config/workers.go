package config

import "runtime"

// Worker resolution chain (highest priority first):
//   1. CLI flag (-workers)
//   2. Environment variable (LIMBCALC_WORKERS)
//   3. Adaptive hardware estimation (this file)

// ApplyAdaptiveDefaults fills in the settings left at their zero default
// from the hardware the process runs on.
func ApplyAdaptiveDefaults(cfg AppConfig) AppConfig {
	if cfg.Workers == 0 {
		cfg.Workers = EstimateWorkers(runtime.NumCPU())
	}
	return cfg
}

// EstimateWorkers picks a self-check worker count for numCPU cores. One core
// is left to the progress display once there are enough of them.
func EstimateWorkers(numCPU int) int {
	switch {
	case numCPU <= 2:
		return 1
	case numCPU <= 4:
		return numCPU - 1
	case numCPU <= 16:
		return numCPU - 2
	default:
		return 16
	}
}
