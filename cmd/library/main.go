package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/elovate/library-api/app"
	"github.com/elovate/library-api/config"
)

//	@title			Library Management API
//	@version		1.0
//	@description	Users, books and loan transactions behind JWT bearer auth.

//	@securityDefinitions.apikey	Bearer
//	@in							header
//	@name						Authorization

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file, relying on environment")
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
