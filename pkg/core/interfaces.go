package core

// Logger is the logging contract used by the renderer. Implementations
// decide where output goes; tests typically pass a no-op logger.
type Logger interface {
	Printf(format string, args ...interface{})
}
