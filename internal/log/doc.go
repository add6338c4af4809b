// Package log provides the application's slog setup.
//
// All loggers are built on a SecureHandler that masks sensitive attribute
// values (tokens, cookies, proxy credentials) before they reach the output.
// Analysts paste tokens and credentials into tool targets often enough that
// the mask applies to every logger, verbose or not.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Warn("backend unreachable, using placeholder result", "module", id, "error", err)
//
// The dashboard owns the terminal while it runs, so it logs to a file:
//
//	logger, closer, err := log.OpenFileLogger(path, verbose)
//	defer closer.Close()
package log
