package settingskey

// Logger defines an interface for logging store failures.
// Implementations should be safe for concurrent use.
// *zap.SugaredLogger satisfies it.
type Logger interface {
	// Infof logs informational messages
	Infof(format string, args ...interface{})

	// Warnf logs warning messages
	Warnf(format string, args ...interface{})

	// Errorf logs error messages
	Errorf(format string, args ...interface{})

	// Debugf logs debug messages
	Debugf(format string, args ...interface{})
}

// noopLogger is a Logger that does nothing.
type noopLogger struct{}

func (noopLogger) Infof(format string, args ...interface{})  {}
func (noopLogger) Warnf(format string, args ...interface{})  {}
func (noopLogger) Errorf(format string, args ...interface{}) {}
func (noopLogger) Debugf(format string, args ...interface{}) {}

var defaultLogger Logger = noopLogger{}
