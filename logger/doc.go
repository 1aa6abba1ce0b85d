// Package logger provides structured logging for radiowatch built on zerolog.
//
// Components obtain a tagged logger via WithComponent and attach fields with
// the Fields helper:
//
//	log := logger.WithComponent("monitor")
//	log.Info("poll complete", logger.Fields("calls", 3, "cursor", cur))
package logger
