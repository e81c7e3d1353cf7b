package main

import (
	"context"
	"os"

	"github.com/shenikar/field_sync/internal/cli"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/field_sync/docs"
)

// @title Field Sync API
// @version 1.0
// @description Offline action queue and sync engine for field occurrences.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
