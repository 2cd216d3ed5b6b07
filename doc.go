// Package colorlog renders structured log events as single human readable
// lines, optionally colouring fields by severity with ANSI escapes.
//
// # Design overview
//
//   - Construction-time resolution: a ColorPolicy (always, auto, never) is
//     resolved once by FormatterBuilder.Build against an Environment and the
//     result is frozen into one of four rendering strategies (plain, colour,
//     each with or without thread identity). No per-line environment checks.
//   - ColorAuto colours output only when stderr is a terminal and TERM is set
//     to something other than "dumb". Environment is injectable so the
//     decision can be tested without touching the real process.
//   - Fixed layout: `[timestamp] Severity [file:line] message`, or
//     `[timestamp] Sever [thread] [file:line] message` with thread identity.
//     Timestamp, severity, thread, file and line are coloured; the message
//     never is.
//   - One Write per line through a pooled scratch buffer. Sink errors are
//     returned to the caller as-is.
//
// # Usage
//
//	format := colorlog.NewFormatterBuilder().
//		WithColor(colorlog.ColorAuto).
//		Build()
//	_ = format(os.Stderr, time.Now, &colorlog.Record{
//		Severity: colorlog.SeverityError,
//		File:     "app.go",
//		Line:     42,
//		Message:  "boom",
//	})
//
// # Integration notes
//
//   - slogcolor, zerologcolor and zapcolor register a FormatFunc with
//     log/slog, zerolog and zap respectively.
//   - FormatterFromEnv reads LOG_COLOR and LOG_THREAD.
//   - *ColorPolicy satisfies pflag.Value for use as a --color flag.
package colorlog
