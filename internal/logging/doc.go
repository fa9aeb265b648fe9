// Package logging provides structured logging for flashdeck.
//
// This package wraps Go's log/slog to provide JSON-formatted logs with
// context propagation. flashdeck is an interactive terminal program, so logs
// go to a file (never to the terminal the user is typing into) and the file is
// rotated by size through lumberjack.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger(dir, "INFO", logging.DefaultRotationConfig())
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("decks loaded", "count", 3)
//
// # Context Propagation
//
// Child loggers carry persistent attributes:
//
//	studyLog := logger.WithComponent("study").WithDeck("Spanish")
//	studyLog.Info("card revealed", "cursor", 2)
//
// Output:
//
//	{"time":"...","level":"INFO","msg":"card revealed","component":"study","deck":"Spanish","cursor":2}
//
// # Testing
//
// Use [NopLogger] to discard output, or [NewWriterLogger] to capture it.
package logging
