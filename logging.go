package rfbclient

import "github.com/golang/glog"

// Logger is the logging collaborator used throughout the dispatcher,
// connection state machine, and decoders. The zero value of glogLogger
// satisfies it and is the default; tests substitute noopLogger instead
// of pulling glog's global flag state into every test binary.
type Logger interface {
	Infof(format string, args ...any)
	Warningf(format string, args ...any)
	Errorf(format string, args ...any)
}

// glogLogger forwards to github.com/golang/glog, the logging dependency
// the teacher repo declared but never imported.
type glogLogger struct{}

func (glogLogger) Infof(format string, args ...any)     { glog.V(1).Infof(format, args...) }
func (glogLogger) Warningf(format string, args ...any)  { glog.Warningf(format, args...) }
func (glogLogger) Errorf(format string, args ...any)    { glog.Errorf(format, args...) }

// defaultLogger is used whenever a Connection is constructed without an
// explicit Logger.
var defaultLogger Logger = glogLogger{}

// noopLogger discards everything; used by tests that don't want glog's
// global flag parsing involved.
type noopLogger struct{}

func (noopLogger) Infof(string, ...any)    {}
func (noopLogger) Warningf(string, ...any) {}
func (noopLogger) Errorf(string, ...any)   {}
