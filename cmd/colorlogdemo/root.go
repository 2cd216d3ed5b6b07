package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pkt.systems/colorlog"
	"pkt.systems/colorlog/slogcolor"
	"pkt.systems/colorlog/zapcolor"
	"pkt.systems/colorlog/zerologcolor"
)

const (
	backendSlog    = "slog"
	backendZerolog = "zerolog"
	backendZap     = "zap"
)

const threadName = "main"

// newRootCmd builds the demo command. A nil out writes to a colour-capable
// stderr and resolves auto colour against it.
func newRootCmd(out io.Writer) *cobra.Command {
	var (
		policy  = colorlog.ColorAuto
		thread  bool
		backend string
	)
	cmd := &cobra.Command{
		Use:          "colorlogdemo",
		Short:        "Emit one log line per severity with colour detection",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			builder := colorlog.NewFormatterBuilder().WithColor(policy).WithThread(thread)
			sink := out
			if sink == nil {
				sink = colorable.NewColorableStderr()
			} else {
				builder = builder.WithEnvironment(colorlog.WriterEnvironment(sink))
			}
			return emitSamples(cmd.Context(), backend, sink, builder.Build())
		},
	}
	cmd.Flags().Var(&policy, "color", "when to colour output: always, auto or never")
	cmd.Flags().BoolVar(&thread, "thread", false, "include the thread name in every line")
	cmd.Flags().StringVar(&backend, "backend", backendSlog, "host logging framework: slog, zerolog or zap")
	return cmd
}

func emitSamples(ctx context.Context, backend string, w io.Writer, format colorlog.FormatFunc) error {
	if ctx == nil {
		ctx = context.Background()
	}
	switch backend {
	case backendSlog:
		logger := slog.New(slogcolor.NewHandler(w, format, &slogcolor.Options{Level: slogcolor.LevelTrace}))
		ctx = colorlog.ContextWithThreadName(ctx, threadName)
		logger.ErrorContext(ctx, "This is an error example")
		logger.WarnContext(ctx, "This is a warning example")
		logger.InfoContext(ctx, "This is an info example")
		logger.DebugContext(ctx, "This is a debug example")
		logger.Log(ctx, slogcolor.LevelTrace, "This is a trace example")
	case backendZerolog:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
		logger := zerolog.New(zerologcolor.New(w, format)).
			Level(zerolog.TraceLevel).
			With().Timestamp().Caller().Str(zerologcolor.DefaultThreadFieldName, threadName).
			Logger()
		logger.Error().Msg("This is an error example")
		logger.Warn().Msg("This is a warning example")
		logger.Info().Msg("This is an info example")
		logger.Debug().Msg("This is a debug example")
		logger.Trace().Msg("This is a trace example")
	case backendZap:
		core := zapcolor.NewCore(format, zapcore.Lock(zapcore.AddSync(w)), zapcore.DebugLevel-1)
		logger := zap.New(core, zap.AddCaller()).Named(threadName)
		defer func() { _ = logger.Sync() }()
		logger.Error("This is an error example")
		logger.Warn("This is a warning example")
		logger.Info("This is an info example")
		logger.Debug("This is a debug example")
		logger.Log(zapcore.DebugLevel-1, "This is a trace example")
	default:
		return fmt.Errorf("unknown backend %q (want slog, zerolog or zap)", backend)
	}
	return nil
}
