// Package logging provides structured logging utilities for gpustat.
//
// # Overview
//
// This package wraps the standard library slog package with gpustat defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages
//   - WARN/WARNING: Warning messages for potentially problematic situations (default)
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("gpustat", "v1.0.0")
//	    defer slog.Info("application started")
//
//	    // Use slog as normal
//	    slog.Info("collecting devices", "count", count)
//	    slog.Debug("device snapshot", "data", snap)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("gpustat", "v2.0.0", "debug")
//	logger.Info("collecting devices", "count", 8)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("gpustat", "v1.0.0", "debug")
//
// Converting standard library logger:
//
//	stdLogger := logging.NewLogLogger(slog.LevelInfo, false)
//	stdLogger.Println("legacy log message")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug gpustat -a
//	LOG_LEVEL=error gpustat --format json
//
// If LOG_LEVEL is not set, defaults to WARN level so that stderr stays quiet
// next to the status table on stdout.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "device collected",
//	    "module": "gpustat",
//	    "version": "v1.0.0",
//	    "index": 0
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "snapshotter.(*Snapshotter).Measure",
//	        "file": "snapshot.go",
//	        "line": 45
//	    },
//	    "msg": "resolving process owner",
//	    "module": "gpustat",
//	    "version": "v1.0.0"
//	}
//
// # Best Practices
//
// 1. Set default logger early in main():
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("gpustat", version)
//	    defer slog.Info("application started")
//	    // ...
//	}
//
// 2. Include context in log messages:
//
//	slog.Info("device collected",
//	    "index", 0,
//	    "name", "NVIDIA H100 80GB HBM3",
//	    "processes", 3,
//	)
//
// 3. Use appropriate log levels:
//
//	slog.Debug("user cache hit", "uid", uid)  // Development/troubleshooting
//	slog.Info("nvml initialized")              // Normal operations
//	slog.Warn("process vanished", "pid", pid)  // Potential issues
//	slog.Error("nvml init failed")             // Errors requiring action
//
// 4. Log errors with context:
//
//	slog.Error("failed to query device",
//	    "error", err,
//	    "index", index,
//	)
//
// # Integration
//
// This package is used by:
//   - pkg/cli - CLI command logging
//   - pkg/collector - Data collection logging
//   - pkg/snapshotter - Snapshot operation logging
//
// All components share consistent logging format and configuration.
package logging
