package log

import (
	"io"
	"log"
	"os"
)

// TraceEnvVar enables trace logging when set to a non-empty value.
const TraceEnvVar = "INKMATH_TRACE"

var (
	Trace   *log.Logger
	Info    *log.Logger
	Warning *log.Logger
	Error   *log.Logger
)

var tracing = os.Getenv(TraceEnvVar) != ""

func init() {
	initLog()
}

func initLog() {
	traceOut := io.Discard
	if tracing {
		traceOut = os.Stderr
	}

	Trace = log.New(traceOut, "TRACE: ", log.Ldate|log.Ltime|log.Lshortfile)
	Info = log.New(os.Stdout, "", 0)
	Warning = log.New(os.Stdout, "WARNING: ", 0)
	Error = log.New(os.Stderr, "ERROR: ", 0)
}

// EnableTracing turns on trace output for the current process.
func EnableTracing() {
	tracing = true
	initLog()
}

// TracingEnabled reports whether trace output is active.
func TracingEnabled() bool {
	return tracing
}
