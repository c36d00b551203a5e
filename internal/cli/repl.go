package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the minimal command surface the REPL dispatches to. The real
// App satisfies it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	isEmployer() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error

	Jobs(ctx context.Context, query string) error
	ShowJob(ctx context.Context, id string) error
	PostJob(ctx context.Context) error
	EditJob(ctx context.Context, id string) error
	DeleteJob(ctx context.Context, id string) error

	Apply(ctx context.Context, jobID string) error
	MyApplications(ctx context.Context) error
	Listings(ctx context.Context) error
	Applicants(ctx context.Context, jobID string) error
	SetStatus(ctx context.Context, applicationID, status string) error
}

// runREPL reads commands line by line and dispatches them. Handlers print
// their own errors; the loop only reports unknown commands and exits on
// EOF, "exit", or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("hs%s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		arg := func(i int) string {
			if i < len(args) {
				return args[i]
			}
			return ""
		}

		switch cmd {
		case "help":
			switch {
			case !a.isLoggedIn():
				printlnFn("Available commands: register, login, jobs [query], job <id>, exit")
			case a.isEmployer():
				printlnFn("Available commands: jobs [query], job <id>, post, edit <id>, delete <id>, listings, applicants <jobId>, setstatus <appId> <status>, profile, editprofile, logout, exit")
			default:
				printlnFn("Available commands: jobs [query], job <id>, apply <id>, myapps, profile, editprofile, logout, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "j", "jobs":
			_ = a.Jobs(ctx, strings.Join(args, " "))

		case "job":
			_ = a.ShowJob(ctx, arg(0))

		case "post":
			_ = a.PostJob(ctx)

		case "edit":
			_ = a.EditJob(ctx, arg(0))

		case "delete":
			_ = a.DeleteJob(ctx, arg(0))

		case "apply":
			_ = a.Apply(ctx, arg(0))

		case "myapps":
			_ = a.MyApplications(ctx)

		case "listings":
			_ = a.Listings(ctx)

		case "applicants":
			_ = a.Applicants(ctx, arg(0))

		case "setstatus":
			_ = a.SetStatus(ctx, arg(0), arg(1))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
