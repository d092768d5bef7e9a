// Package cli provides the interactive gophfiles command-line client.
//
// It wires configuration, the local session store, the HTTP API client and
// the file services into a REPL. A background watcher pings the server and
// flips the prompt between online and offline.
//
// Commands:
//   - login / logout
//   - list, search <query>: refresh the collection and print it
//   - upload <path>, delete <id>, share <id>
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
