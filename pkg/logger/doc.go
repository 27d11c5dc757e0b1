// Package logger builds *slog.Logger instances from functional options and
// offers attribute helpers that keep key names consistent.
//
// # Usage
//
//	import "github.com/dmitrymomot/safepwdgen/pkg/logger"
//
//	log := logger.New(
//	    logger.WithOutput(os.Stderr),
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//	log.Debug("password derived", logger.Length(20), logger.Mode(true))
//
// Levels and formats coming from configuration strings can be converted with
// ParseLevel and ParseFormat.
//
// Never log seed passwords or derived passwords. Service identifiers are
// public and fine to log.
//
// # Error Handling
//
// Error produces an attribute only for non-nil errors, so
//
//	log.Warn("clipboard copy failed", logger.Error(err))
//
// needs no extra nil check. Invalid formats passed to WithFormat panic at
// construction time.
package logger
