package fastpath

import "driftwatch/domain/drift"

// BuildMetrics assembles the PerformanceMetrics every FastPath result
// carries (spec §4.6: "detection_time_ms, samples_processed,
// optimization_applied, compression_ratio where compression_ratio =
// sampled_size / original_size").
func BuildMetrics(detectionTimeMs float64, samplesProcessed int, optimizationApplied bool, compressionRatio float64) *drift.PerformanceMetrics {
	return &drift.PerformanceMetrics{
		DetectionTimeMs:     detectionTimeMs,
		SamplesProcessed:    samplesProcessed,
		OptimizationApplied: optimizationApplied,
		CompressionRatio:    compressionRatio,
	}
}
