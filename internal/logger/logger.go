package logger

import (
	"log"

	"go.uber.org/zap"
)

// New builds the service logger: JSON to stderr in production, console
// output when running with APP_ENV=development.
func New(appEnv string) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if appEnv == "development" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	return l
}
