//go:build !unix

package tui

// Shutdown is purely local on platforms without job-control process
// groups.
func terminatePipelineGroup() {}
