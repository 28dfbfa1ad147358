package app

import (
	"database/sql"

	"github.com/pluzgi/survey-backend/config"
)

// App bundles the process-wide dependencies handed to request handlers.
// It is built once at startup and torn down on shutdown, handlers never
// reach for globals.
type App struct {
	*sql.DB
	config.Config
}
