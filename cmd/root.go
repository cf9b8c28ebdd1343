package cmd

import "go.uber.org/zap"

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Serve    ServeCmd    `cmd:"" default:"1"                    help:"Run the server"`
	Migrate  MigrateCmd  `cmd:"" help:"Run database migrations"`
	Register RegisterCmd `cmd:"" help:"Register a beer"`
}

func newLogger(debug bool) *zap.Logger {
	logConfig := zap.NewProductionConfig()
	if debug {
		logConfig = zap.NewDevelopmentConfig()
		logConfig.DisableStacktrace = true
	}

	logger, err := logConfig.Build()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}
