package logger

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx/fxevent"
)

type fxLogger struct {
	l zerolog.Logger
}

// Fx routes fx lifecycle events into the global zerolog logger.
func Fx() fxevent.Logger {
	return &fxLogger{
		l: log.Logger.
			With().
			Str("evt.name", "fx.init").
			Logger(),
	}
}

func (f *fxLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.OnStartExecuted:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Str("callee", e.FunctionName).Msg("OnStart hook failed")
			return
		}
		f.l.Debug().Str("callee", e.FunctionName).Str("runtime", e.Runtime.String()).Msg("OnStart hook executed")
	case *fxevent.OnStopExecuted:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Str("callee", e.FunctionName).Msg("OnStop hook failed")
			return
		}
		f.l.Debug().Str("callee", e.FunctionName).Str("runtime", e.Runtime.String()).Msg("OnStop hook executed")
	case *fxevent.Provided:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Str("module", e.ModuleName).Msg("error encountered while applying options")
			return
		}
		for _, t := range e.OutputTypeNames {
			f.l.Trace().Str("constructor", e.ConstructorName).Str("module", e.ModuleName).Str("type", t).Msg("provided")
		}
	case *fxevent.Invoked:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Str("function", e.FunctionName).Str("module", e.ModuleName).Msg("invoke failed")
			return
		}
		f.l.Trace().Str("function", e.FunctionName).Str("module", e.ModuleName).Msg("invoked")
	case *fxevent.Started:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Msg("start failed")
			return
		}
		f.l.Info().Msg("started")
	case *fxevent.Stopped:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Msg("stop failed")
			return
		}
		f.l.Info().Msg("stopped")
	}
}
