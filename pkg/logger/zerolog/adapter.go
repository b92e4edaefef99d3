// Package zerolog adapts github.com/rs/zerolog to the logger.Logger contract.
package zerolog

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ukaji3/csviz/pkg/logger"
)

// Adapter wraps a zerolog.Logger behind logger.Logger.
type Adapter struct {
	*zerolog.Logger
}

// NewAdapter creates an Adapter around an existing zerolog logger.
func NewAdapter(l *zerolog.Logger) *Adapter {
	return &Adapter{l}
}

// WithField implements logger.Logger.
func (a *Adapter) WithField(key string, value any) logger.Logger {
	child := a.With().Interface(key, value).Logger()
	return &Adapter{&child}
}

// WithFields implements logger.Logger.
func (a *Adapter) WithFields(fields map[string]any) logger.Logger {
	child := a.With().Fields(fields).Logger()
	return &Adapter{&child}
}

// WithError implements logger.Logger.
func (a *Adapter) WithError(err error) logger.Logger {
	child := a.With().Err(err).Logger()
	return &Adapter{&child}
}

// Debug implements logger.Logger.
func (a *Adapter) Debug(args ...any) {
	a.Logger.Debug().Msg(fmt.Sprint(args...))
}

// Info implements logger.Logger.
func (a *Adapter) Info(args ...any) {
	a.Logger.Info().Msg(fmt.Sprint(args...))
}

// Warn implements logger.Logger.
func (a *Adapter) Warn(args ...any) {
	a.Logger.Warn().Msg(fmt.Sprint(args...))
}

// Error implements logger.Logger.
func (a *Adapter) Error(args ...any) {
	a.Logger.Error().Msg(fmt.Sprint(args...))
}

// Fatal implements logger.Logger.
func (a *Adapter) Fatal(args ...any) {
	a.Logger.Fatal().Msg(fmt.Sprint(args...))
}

// Debugf implements logger.Logger.
func (a *Adapter) Debugf(format string, args ...any) {
	a.Logger.Debug().Msgf(format, args...)
}

// Infof implements logger.Logger.
func (a *Adapter) Infof(format string, args ...any) {
	a.Logger.Info().Msgf(format, args...)
}

// Warnf implements logger.Logger.
func (a *Adapter) Warnf(format string, args ...any) {
	a.Logger.Warn().Msgf(format, args...)
}

// Errorf implements logger.Logger.
func (a *Adapter) Errorf(format string, args ...any) {
	a.Logger.Error().Msgf(format, args...)
}

// Fatalf implements logger.Logger.
func (a *Adapter) Fatalf(format string, args ...any) {
	a.Logger.Fatal().Msgf(format, args...)
}

// SetLevel implements logger.Logger.
func (a *Adapter) SetLevel(level logger.Level) {
	child := a.Logger.Level(toZerologLevel(level))
	*a.Logger = child
}

// GetLevel implements logger.Logger.
func (a *Adapter) GetLevel() logger.Level {
	return toLevel(a.Logger.GetLevel())
}

// toLevel converts zerolog.Level to logger.Level.
func toLevel(level zerolog.Level) logger.Level {
	switch level {
	case zerolog.Disabled:
		return logger.Disabled
	case zerolog.DebugLevel:
		return logger.DebugLevel
	case zerolog.InfoLevel:
		return logger.InfoLevel
	case zerolog.WarnLevel:
		return logger.WarnLevel
	case zerolog.ErrorLevel:
		return logger.ErrorLevel
	case zerolog.FatalLevel:
		return logger.FatalLevel
	case zerolog.PanicLevel:
		return logger.PanicLevel
	default:
		return logger.NoLevel
	}
}

// toZerologLevel converts logger.Level to zerolog.Level.
func toZerologLevel(level logger.Level) zerolog.Level {
	switch level {
	case logger.Disabled:
		return zerolog.Disabled
	case logger.DebugLevel:
		return zerolog.DebugLevel
	case logger.InfoLevel:
		return zerolog.InfoLevel
	case logger.WarnLevel:
		return zerolog.WarnLevel
	case logger.ErrorLevel:
		return zerolog.ErrorLevel
	case logger.FatalLevel:
		return zerolog.FatalLevel
	case logger.PanicLevel:
		return zerolog.PanicLevel
	default:
		return zerolog.NoLevel
	}
}
