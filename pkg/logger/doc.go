// Package logger builds *slog.Logger values for the Nudo services.
//
// New takes functional options. WithEnvironment picks the defaults for an
// environment (text and debug level in development, JSON and info level
// elsewhere) and WithConfig applies LOG_LEVEL / LOG_FORMAT overrides loaded
// through pkg/config:
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "storefront"),
//		logger.WithConfig(cfg),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// Every logger is wrapped in LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks on each record so request-scoped values such as
// the request id end up in the output without being passed around.
//
// The attribute helpers in attr.go (Error, Errors, RequestID, Form, Field and
// friends) keep key names consistent. Helpers that receive a zero value
// return an empty slog.Attr, which slog omits.
package logger
