// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Every failure in a gpustat run is fatal. The code tells the caller which
// collaborator failed (telemetry library, operating system, hostname lookup)
// without parsing messages.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeTelemetry,
//	    "failed to query device temperature",
//	    ret,
//	    map[string]any{
//	        "device": index,
//	    },
//	)
package errors
