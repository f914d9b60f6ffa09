// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

/*
Package logging provides the process-wide zerolog logger for Moodreel.

Initialize once from main:

	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true})

Components derive their own sub-logger and receive it through their
constructor:

	logger := logging.Logger().With().Str("component", "dataset").Logger()
	logger.Info().Int("records", n).Msg("Dataset loaded")

Request-scoped logging picks up the request and correlation IDs placed in the
context by the HTTP middleware:

	logging.Ctx(ctx).Warn().Err(err).Msg("Classifier unavailable")

# Configuration

	LOG_LEVEL   trace, debug, info, warn, error (default: info)
	LOG_FORMAT  json or console (default: json)
	LOG_CALLER  include file:line (default: false)

# slog bridge

Libraries that only speak log/slog (sutureslog in the supervisor tree) are
given NewSlogLogger, which forwards every record to zerolog.

Always terminate event chains with Msg or Send; an unterminated event is
never written.
*/
package logging
