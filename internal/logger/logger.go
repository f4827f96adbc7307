package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Name is the root logger name. Components add their own segment with Named.
const Name = "resume-analyzer"

// New builds the CLI logger. Logs go to stderr so that rendered reports on
// stdout stay clean for piping.
func New(json bool, debug bool) (*zap.Logger, error) {
	cfg := config(json, debug)

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	defer logger.Sync()

	return logger.Named(Name), nil
}

func config(json bool, debug bool) zap.Config {
	level := zapcore.InfoLevel
	encoding := "console"

	if json {
		encoding = "json"
	}

	if debug {
		level = zapcore.DebugLevel
	}

	return zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "step",

			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.RFC3339TimeEncoder,

			NameKey:    "logger",
			EncodeName: zapcore.FullNameEncoder,

			EncodeDuration: zapcore.StringDurationEncoder,

			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,
		},
	}
}
