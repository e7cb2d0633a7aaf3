package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Write(ctx context.Context) error
	List(ctx context.Context) error
	Read(ctx context.Context) error
	Search(ctx context.Context) error
	ByMood(ctx context.Context) error
	Stats(ctx context.Context) error
	Delete(ctx context.Context) error
	Export(ctx context.Context) error
	Import(ctx context.Context) error
	ClearAll(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop over the letter collection.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	help           — show available commands
//	write          — compose a letter to your future self
//	list | l       — list your letters with lock state
//	read           — read a delivered letter (locked letters are refused)
//	search         — find letters by title/content/caption
//	mood           — list letters with a given mood
//	stats          — delivered/sealed counts and mood breakdown
//	delete         — delete a letter
//	export         — export your letters to a JSON file
//	import         — import letters from a JSON file
//	clear          — remove every letter (all users)
//	exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("letters> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: write, (l)ist, read, search, mood, stats, delete, export, import, clear, exit")

		case "write":
			_ = a.Write(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "read":
			_ = a.Read(ctx)

		case "search":
			_ = a.Search(ctx)

		case "mood":
			_ = a.ByMood(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "export":
			_ = a.Export(ctx)

		case "import":
			_ = a.Import(ctx)

		case "clear":
			_ = a.ClearAll(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
