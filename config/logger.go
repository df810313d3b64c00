package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger sets up the global zap logger. LOG_MODE=production switches to
// JSON output; LOG_FILE enables a rotating file sink alongside stdout.
func InitLogger() {
	var zapConfig zap.Config
	if os.Getenv("LOG_MODE") == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.OutputPaths = []string{"stdout"}

	var logger *zap.Logger
	if filename := os.Getenv("LOG_FILE"); filename != "" {
		fileSink := &lumberjack.Logger{
			Filename:   filename,
			MaxSize:    64, // megabytes
			MaxBackups: 7,
			MaxAge:     30, // days
			Compress:   true,
		}
		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(fileSink),
				zapcore.InfoLevel,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapcore.DebugLevel,
			),
		)
		logger = zap.New(core)
	} else {
		var err error
		logger, err = zapConfig.Build()
		if err != nil {
			logger = zap.NewNop()
		}
	}
	zap.ReplaceGlobals(logger)
}
