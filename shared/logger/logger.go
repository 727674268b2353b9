package logger

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"link/config"
	"link/shared/constant"
)

func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	log.Logger = log.Output(output)
	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil || config.Server.LogLevel == constant.Empty {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}

// FromContext returns the global logger enriched with the request id and
// credential id carried on ctx, when present.
func FromContext(ctx context.Context) *zerolog.Logger {
	logCtx := log.Logger.With()

	if requestID, ok := ctx.Value(constant.ContextKeyRequestID).(string); ok && requestID != constant.Empty {
		logCtx = logCtx.Str("requestId", requestID)
	}

	if credentialID, ok := ctx.Value(constant.ContextKeyCredentialID).(int64); ok {
		logCtx = logCtx.Int64("credentialId", credentialID)
	}

	l := logCtx.Logger()

	return &l
}
