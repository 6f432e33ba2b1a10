// Package logging defines the structured-logging interface used across the
// scheduler. It is the diagnostic channel: user-facing outcome lines go to
// stdout through the CLI, causes and internal detail go here.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "reservation created", "appointment_id", id, "caregiver", cg)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
