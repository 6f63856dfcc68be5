package logger

import "go.uber.org/zap"

// New builds the process-wide zap logger. Console encoding keeps local runs
// readable; ops can switch to JSON via LOG_FORMAT later if needed.
func New() *zap.Logger {
	cfg := zap.Config{
		Encoding:         "console",
		Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}

	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return l
}
