// Package log builds [log/slog] handlers for the keydocs CLI.
//
// Three formats are supported: [FormatJSON] and [FormatLogfmt] for build
// logs, and [FormatText] (the default) for people reading a terminal, backed
// by [charm.land/log/v2]. Register the flags on a cobra command with
// [Config]:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
//
// While a full-screen terminal UI is running, writing logs to stderr would
// corrupt the display. Write them to a [Feed] instead and show its most
// recent lines inside the UI.
package log
