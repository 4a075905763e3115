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
	isLoggedIn() bool
	isAdmin() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	RequestReset(ctx context.Context) error
	ConfirmReset(ctx context.Context) error
	Products(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Show(ctx context.Context) error
	AddProduct(ctx context.Context) error
	EditProduct(ctx context.Context) error
	DeleteProduct(ctx context.Context, refresh func(context.Context) error) error
	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	Users(ctx context.Context) error
	DeleteUser(ctx context.Context, refresh func(context.Context) error) error
	Stats(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the artshop CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - products, search, show — browse the public catalogue
//	  - reset          — request a password-reset email
//	  - newpass        — finish a reset with the emailed token
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - products | p   — list the catalogue
//	  - search <words> — filter the catalogue by title/description
//	  - show           — show one product (interactive ID prompt)
//	  - add            — create a product (with optional AI helpers)
//	  - edit           — update one of your products
//	  - delete         — delete a product (with confirmation)
//	  - profile, update, passwd — account pages
//	  - logout, exit | quit
//
//	Administrators additionally get: users, deluser, stat.
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("artshop %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printHelp(a)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "reset":
			_ = a.RequestReset(ctx)

		case "newpass":
			_ = a.ConfirmReset(ctx)

		case "p", "products":
			_ = a.Products(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "show":
			_ = a.Show(ctx)

		case "add":
			_ = a.AddProduct(ctx)

		case "edit":
			_ = a.EditProduct(ctx)

		case "delete":
			_ = a.DeleteProduct(ctx, a.Products)

		case "profile":
			_ = a.Profile(ctx)

		case "update":
			_ = a.UpdateProfile(ctx)

		case "passwd":
			_ = a.ChangePassword(ctx)

		case "users":
			_ = a.Users(ctx)

		case "deluser":
			_ = a.DeleteUser(ctx, a.Users)

		case "stat":
			_ = a.Stats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(a execIface) {
	if !a.isLoggedIn() {
		printlnFn("Available commands: register, login, products, search, show, reset, newpass, exit")
		return
	}
	if a.isAdmin() {
		printlnFn("Available commands: (p)roducts, search, show, add, edit, delete, profile, update, passwd, users, deluser, stat, logout, exit")
		return
	}
	printlnFn("Available commands: (p)roducts, search, show, add, edit, delete, profile, update, passwd, logout, exit")
}
