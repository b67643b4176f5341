package logger

import (
	"github.com/rs/zerolog"
	tlog "go.temporal.io/sdk/log"
)

// TemporalAdapter implements go.temporal.io/sdk/log.Logger on top of
// zerolog, so the SDK's internal logging and workflow.GetLogger(ctx) both
// flow through the same structured sink as the rest of the process.
type TemporalAdapter struct {
	logger zerolog.Logger
}

// NewTemporalAdapter wraps a zerolog.Logger for use as a Temporal SDK logger.
func NewTemporalAdapter(l zerolog.Logger) *TemporalAdapter {
	return &TemporalAdapter{logger: l}
}

var _ tlog.Logger = (*TemporalAdapter)(nil)

func (a *TemporalAdapter) with(keyvals []interface{}) zerolog.Context {
	ctx := a.logger.With()
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		ctx = ctx.Interface(key, keyvals[i+1])
	}
	return ctx
}

func (a *TemporalAdapter) Debug(msg string, keyvals ...interface{}) {
	a.with(keyvals).Logger().Debug().Msg(msg)
}

func (a *TemporalAdapter) Info(msg string, keyvals ...interface{}) {
	a.with(keyvals).Logger().Info().Msg(msg)
}

func (a *TemporalAdapter) Warn(msg string, keyvals ...interface{}) {
	a.with(keyvals).Logger().Warn().Msg(msg)
}

func (a *TemporalAdapter) Error(msg string, keyvals ...interface{}) {
	a.with(keyvals).Logger().Error().Msg(msg)
}
