package logger

import (
	"log"

	"go.uber.org/zap"
)

var Log *zap.Logger

// Init builds the process-wide logger. Must be called before any package
// that logs is used.
func Init() {
	l, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	Log = l
}

func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
