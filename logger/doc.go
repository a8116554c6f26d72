// Package logger provides structured logging for securekit applications
// using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers. The hashing core itself never logs: failures
// there surface as errors, and what to log is the caller's decision.
//
// # Usage
//
//	log := logger.Get("signup")
//	log.Info("credential created", logger.Fields(logger.FieldAlgorithm, "SHA-256"))
package logger
