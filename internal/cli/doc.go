// Package cli provides the interactive vaccine scheduler command line.
//
// It reads one command per line, tokenises it on whitespace, checks the
// caller's session and arguments, and calls into the services. Each command
// prints its outcome on stdout; the underlying cause of a failure goes to the
// diagnostic logger only. Only "quit" (or end of input) ends the loop.
//
// The REPL is started via App.Run(ctx), which blocks until the user quits.
// See App and runREPL for details.
package cli
