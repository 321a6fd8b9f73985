// Package logger provides the structured loggers used by the slug library.
//
// The slug engine itself never logs. The C boundary adapter reports rejected
// calls (NULL input, invalid UTF-8, unencodable results) at debug level so an
// embedding Go program can see why a call returned NULL.
//
// # Basic Usage
//
// Create a JSON logger that includes debug records:
//
//	log := logger.New(os.Stderr, slog.LevelDebug)
//	log.Debug("slugify call rejected", slog.String("error", err.Error()))
//	// Output: {"time":"...","level":"DEBUG","msg":"slugify call rejected","error":"..."}
//
// Use NewNope where logging is not configured:
//
//	log := logger.NewNope()
package logger
