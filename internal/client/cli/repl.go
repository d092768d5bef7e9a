package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophfiles/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Upload(ctx context.Context, path string) error
	Delete(ctx context.Context, id string) error
	Share(ctx context.Context, id string) error
}

// runREPL reads commands line by line and dispatches them to a. It exits on
// scanner EOF or when the user types "exit" or "quit".
//
//	help                 show available commands
//	login | logout
//	list | l             refresh and print the files
//	search <query>       search files on the server (query sent as typed)
//	upload <path>        upload a local file (10MB max)
//	delete <id>          delete a file after confirmation
//	share <id>           generate a share URL
//	exit | quit
//
// Errors returned by command handlers are ignored here; they have already
// been reported through the notification sink.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("gf %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: (l)ist, search <query>, upload <path>, delete <id>, share <id>, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "l", "list", "search", "upload", "delete", "share":
			if !a.isLoggedIn(ctx) {
				printlnFn(services.MsgLoginFirst)
				continue
			}
			runFileCommand(ctx, a, cmd, args, restOf(line, cmd))

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// restOf returns what follows cmd on line, minus the single separator after
// it. Inner spacing is kept so queries and paths reach the handlers verbatim.
func restOf(line, cmd string) string {
	rest := strings.TrimPrefix(strings.TrimLeft(line, " \t"), cmd)
	if rest != "" && (rest[0] == ' ' || rest[0] == '\t') {
		rest = rest[1:]
	}
	return rest
}

func runFileCommand(ctx context.Context, a execIface, cmd string, args []string, rest string) {
	switch cmd {
	case "l", "list":
		_ = a.List(ctx)

	case "search":
		_ = a.Search(ctx, rest)

	case "upload":
		if len(args) == 0 {
			printlnFn("Usage: upload <path>")
			return
		}
		_ = a.Upload(ctx, rest)

	case "delete", "share":
		if len(args) != 1 {
			printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
			return
		}
		if cmd == "delete" {
			_ = a.Delete(ctx, args[0])
		} else {
			_ = a.Share(ctx, args[0])
		}
	}
}
