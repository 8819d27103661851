// Package wirelog sets up the structured logger used by the pbdump CLI.
// Nothing in wire, field, codec, or inspect ever logs; those packages
// are pure and synchronous, so this is exclusively a CLI concern.
package wirelog

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a console-formatted zerolog.Logger tagged with app, the
// same pattern edgectl's observability package uses for its services.
func New(app string) zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).With().Timestamp().Str("app", app).Logger()
}
