package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerClient is a wrapper around Uber's Zap logger.
type LoggerClient struct {
	// Zap is the underlying zap.Logger instance. Most logging should go through
	// the wrapper methods; it is exposed for integrations such as fxevent.
	Zap *zap.Logger

	// tracingEnabled makes the *WithContext methods add trace and span ids.
	tracingEnabled bool
}

// NewLoggerClient initializes a JSON logger writing to stderr.
//
// Entries carry an ISO8601 "timestamp", capitalised level, caller information and
// the default fields "pid" and "service". If zap cannot be built the process exits.
//
// Parameters:
//   - cfg: Level, service name and whether *WithContext adds trace ids
//
// Returns:
//   - *LoggerClient: A ready logger; call Zap.Sync before exit to flush it
//
// Example:
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:         logger.Info,
//	    ServiceName:   "mtgsearch",
//	    EnableTracing: true,
//	})
//	defer log.Zap.Sync()
//
//	log.Info("Application started", nil, map[string]interface{}{
//	    "backend": "local",
//	})
func NewLoggerClient(cfg Config) *LoggerClient {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeCaller = zapcore.ShortCallerEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(parseLevel(cfg.Level)),
		Development:       false,
		DisableCaller:     false,
		DisableStacktrace: false,
		Sampling:          nil,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths: []string{
			"stderr",
		},
		ErrorOutputPaths: []string{
			"stderr",
		},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	logger, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		log.Fatal(err)
	}

	return &LoggerClient{
		Zap:            logger,
		tracingEnabled: cfg.EnableTracing,
	}
}

// NewNop returns a logger that discards everything. Useful in tests.
func NewNop() *LoggerClient {
	return &LoggerClient{Zap: zap.NewNop()}
}

// NewWithCore wraps an existing zap core, e.g. an observer core in tests.
func NewWithCore(core zapcore.Core, tracingEnabled bool) *LoggerClient {
	return &LoggerClient{Zap: zap.New(core), tracingEnabled: tracingEnabled}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case Debug:
		return zap.DebugLevel
	case Warning:
		return zap.WarnLevel
	case Error:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
