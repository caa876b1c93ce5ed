package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"train-reservations/internal/ledger"
	"train-reservations/internal/storage"

	"github.com/joho/godotenv"
	"golang.org/x/term"
)

const defaultSnapshotPath = "train_ticket_data.json"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("trainbook", flag.ContinueOnError)
	fs.SetOutput(stderr)

	snapshotPath := fs.String("snapshot", defaultSnapshotPath, "Path to snapshot file")
	backend := fs.String("store", "file", "Snapshot backend: file or sqlite")

	// A .env next to the binary can set SNAPSHOT_PATH; explicit flags win.
	_ = godotenv.Load()

	if err := fs.Parse(args); err != nil {
		return err
	}

	if path := os.Getenv("SNAPSHOT_PATH"); path != "" && *snapshotPath == defaultSnapshotPath {
		*snapshotPath = path
	}

	var store storage.Store
	switch *backend {
	case "file":
		store = storage.NewFileStore(*snapshotPath)
	case "sqlite":
		s, err := storage.NewSQLiteStore(*snapshotPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		store = s
	default:
		return fmt.Errorf("unknown store backend %q", *backend)
	}
	defer store.Close()

	l, err := ledger.Open(store)
	if err != nil {
		return err
	}

	a := &app{ledger: l, lines: bufio.NewScanner(stdin), stdin: stdin, out: stdout}
	return a.mainLoop()
}

// app drives the interactive menu. It only collects raw field values, hands
// them to the ledger unmodified and prints the returned outcome.
type app struct {
	ledger  *ledger.Ledger
	lines   *bufio.Scanner
	stdin   io.Reader
	out     io.Writer
	session *ledger.Session
}

func (a *app) mainLoop() error {
	fmt.Fprintln(a.out, "Train Ticket Reservation System")
	for {
		if a.session == nil {
			fmt.Fprintln(a.out, "\n1) Register  2) Login  q) Quit")
		} else {
			fmt.Fprintf(a.out, "\nLogged in as %s\n", a.session.Email())
			fmt.Fprintln(a.out, "1) Search trains  2) Book ticket  3) Cancel ticket  4) Booking report")
			fmt.Fprintln(a.out, "5) Show all trains  6) Add train (admin)  7) Logout  q) Quit")
		}
		choice := a.prompt("> ")

		if a.session == nil {
			switch choice {
			case "1":
				a.register()
			case "2":
				a.login()
			case "q", "":
				return nil
			default:
				fmt.Fprintln(a.out, "Unknown option.")
			}
			continue
		}

		switch choice {
		case "1":
			a.searchTrains()
		case "2":
			a.bookTicket()
		case "3":
			a.cancelTicket()
		case "4":
			a.viewReport()
		case "5":
			a.showAllTrains()
		case "6":
			a.addTrain()
		case "7":
			a.ledger.Logout(a.session)
			a.session = nil
			fmt.Fprintln(a.out, "You have been logged out.")
		case "q", "":
			return nil
		default:
			fmt.Fprintln(a.out, "Unknown option.")
		}
	}
}

func (a *app) prompt(label string) string {
	fmt.Fprint(a.out, label)
	if !a.lines.Scan() {
		return ""
	}
	return strings.TrimSpace(a.lines.Text())
}

func (a *app) register() {
	email := a.prompt("Email: ")
	password, err := a.readPassword()
	if err != nil {
		a.printErr(err)
		return
	}
	if err := a.ledger.Register(email, password); err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "User registered successfully with email: %s\n", email)
}

func (a *app) login() {
	email := a.prompt("Email: ")
	password, err := a.readPassword()
	if err != nil {
		a.printErr(err)
		return
	}
	session, err := a.ledger.Login(email, password)
	if err != nil {
		a.printErr(err)
		return
	}
	a.session = session
	fmt.Fprintln(a.out, "User logged in successfully!")
}

func (a *app) addTrain() {
	source := a.prompt("Source: ")
	destination := a.prompt("Destination: ")
	availability := a.prompt("Availability: ")
	timings := a.prompt("Timings: ")
	price := a.prompt("Price: ")

	id, err := a.ledger.AddTrain(a.session, source, destination, availability, timings, price)
	if err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "Train %s added successfully!\n", id)
}

func (a *app) searchTrains() {
	source := a.prompt("Source: ")
	destination := a.prompt("Destination: ")

	trains := a.ledger.SearchTrains(source, destination)
	if len(trains) == 0 {
		fmt.Fprintln(a.out, "No trains available for this route.")
		return
	}
	for _, t := range trains {
		fmt.Fprintf(a.out, "%s: %s -> %s | Availability: %d | Timings: %s | Price: %s\n",
			t.ID, t.Source, t.Destination, t.Availability, t.Timings, t.Price)
	}
}

func (a *app) showAllTrains() {
	for _, t := range a.ledger.ListTrains() {
		fmt.Fprintf(a.out, "Train ID: %s\nSource: %s | Destination: %s\nAvailability: %d | Timings: %s | Price: %s\n\n",
			t.ID, t.Source, t.Destination, t.Availability, t.Timings, t.Price)
	}
}

func (a *app) bookTicket() {
	trainID := a.prompt("Train ID: ")
	seats := a.prompt("Seats: ")

	if err := a.ledger.Book(a.session, trainID, seats); err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "Booking successful for %s seats on %s.\n", seats, trainID)
}

func (a *app) cancelTicket() {
	trainID := a.prompt("Train ID: ")
	seats := a.prompt("Seats: ")

	if err := a.ledger.Cancel(a.session, trainID, seats); err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "Successfully cancelled %s seats on %s.\n", seats, trainID)
}

func (a *app) viewReport() {
	entries, err := a.ledger.Report(a.session)
	if err != nil {
		a.printErr(err)
		return
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No bookings found.")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(a.out, "Train ID: %s, Source: %s, Destination: %s, Timings: %s, Seats Booked: %d\n",
			e.TrainID, e.Source, e.Destination, e.Timings, e.Seats)
	}
}

func (a *app) printErr(err error) {
	fmt.Fprintf(a.out, "Error: %v\n", err)
}

// readPassword reads without echo when stdin is a terminal, and falls back to
// the line scanner for pipes and tests.
func (a *app) readPassword() (string, error) {
	fmt.Fprint(a.out, "Password: ")
	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		fmt.Fprintln(a.out)
		return string(bytePassword), nil
	}

	if a.lines.Scan() {
		return a.lines.Text(), nil
	}
	if err := a.lines.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
