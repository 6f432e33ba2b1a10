package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn and printFn are test seams for user-facing output.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

// execIface defines the command surface the REPL dispatches to. Each
// handler prints its own outcome line and returns the cause of a failure.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	CreatePatient(ctx context.Context, args []string) error
	CreateCaregiver(ctx context.Context, args []string) error
	LoginPatient(ctx context.Context, args []string) error
	LoginCaregiver(ctx context.Context, args []string) error
	SearchCaregiverSchedule(ctx context.Context, args []string) error
	Reserve(ctx context.Context, args []string) error
	UploadAvailability(ctx context.Context, args []string) error
	Cancel(ctx context.Context, args []string) error
	AddDoses(ctx context.Context, args []string) error
	ShowAppointments(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	observe(ctx context.Context, command string, err error)
}

var (
	guestCommands = []string{
		"create_patient <username> <password>",
		"create_caregiver <username> <password>",
		"login_patient <username> <password>",
		"login_caregiver <username> <password>",
	}
	memberCommands = []string{
		"search_caregiver_schedule <date>",
		"reserve <date> <vaccine>",
		"upload_availability <date>",
		"cancel <appointment_id>",
		"add_doses <vaccine> <number>",
		"show_appointments",
		"logout",
	}
	commonCommands = []string{"help", "quit"}
)

func printBanner() {
	printlnFn()
	printlnFn("Welcome to the COVID-19 Vaccine Reservation Scheduling Application!")
	printCommands(guestCommands, memberCommands, commonCommands)
}

func printCommands(groups ...[]string) {
	printlnFn("*** Please enter one of the following commands ***")
	for _, g := range groups {
		for _, c := range g {
			printlnFn(">", c)
		}
	}
	printlnFn()
}

// printHelp lists the commands that make sense in the current session.
func printHelp(loggedIn bool) {
	if loggedIn {
		printCommands(memberCommands, commonCommands)
		return
	}
	printCommands(guestCommands, commonCommands)
}

// readLines feeds scanner lines into the returned channel until end of
// input or until done is closed. The channel is closed on end of input.
func readLines(scanner *bufio.Scanner, done <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()
	return lines
}

// runREPL reads commands from scanner until "quit", end of input or ctx
// cancellation, and dispatches them to a. All three print "Bye!".
//
// The first whitespace-separated token selects the command; the rest are
// passed as arguments. Blank lines are skipped. promptFn is printed before
// each read unless it returns "".
//
// Reads happen on a separate goroutine so that cancellation is noticed while
// the loop waits for input. A line that arrives after cancellation is not
// dispatched.
//
// Handler errors never end the loop: the handler has already printed the
// outcome line, and the error is handed to a.observe for logging and metrics.
func runREPL(ctx context.Context, a execIface, promptFn func() string, scanner *bufio.Scanner) {
	handlers := map[string]func(context.Context, []string) error{
		"create_patient":            a.CreatePatient,
		"create_caregiver":          a.CreateCaregiver,
		"login_patient":             a.LoginPatient,
		"login_caregiver":           a.LoginCaregiver,
		"search_caregiver_schedule": a.SearchCaregiverSchedule,
		"reserve":                   a.Reserve,
		"upload_availability":       a.UploadAvailability,
		"cancel":                    a.Cancel,
		"add_doses":                 a.AddDoses,
		"show_appointments":         a.ShowAppointments,
		"logout":                    a.Logout,
	}

	done := make(chan struct{})
	defer close(done)
	lines := readLines(scanner, done)

	for {
		if p := promptFn(); p != "" {
			printFn(p)
		}

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			printlnFn("Bye!")
			return
		case line, ok = <-lines:
		}
		if !ok || ctx.Err() != nil {
			printlnFn("Bye!")
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "quit":
			printlnFn("Bye!")
			return
		case "help":
			printHelp(a.isLoggedIn())
			continue
		}

		h, ok := handlers[cmd]
		if !ok {
			printlnFn("Invalid operation name!")
			a.observe(ctx, "unknown", errUnknownCommand)
			continue
		}
		a.observe(ctx, cmd, h(ctx, args))
	}
}
