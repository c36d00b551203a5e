package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	employer bool
	calls    []string
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }
func (s *stubExec) isEmployer() bool { return s.employer }

func (s *stubExec) record(name string, args ...string) error {
	call := name
	if len(args) > 0 {
		call += " " + strings.Join(args, " ")
	}
	s.calls = append(s.calls, strings.TrimRight(call, " "))
	return nil
}

func (s *stubExec) Register(ctx context.Context) error    { return s.record("register") }
func (s *stubExec) Login(ctx context.Context) error       { return s.record("login") }
func (s *stubExec) Logout(ctx context.Context) error      { return s.record("logout") }
func (s *stubExec) Profile(ctx context.Context) error     { return s.record("profile") }
func (s *stubExec) EditProfile(ctx context.Context) error { return s.record("editprofile") }

func (s *stubExec) Jobs(ctx context.Context, query string) error { return s.record("jobs", query) }
func (s *stubExec) ShowJob(ctx context.Context, id string) error { return s.record("job", id) }
func (s *stubExec) PostJob(ctx context.Context) error            { return s.record("post") }
func (s *stubExec) EditJob(ctx context.Context, id string) error { return s.record("edit", id) }
func (s *stubExec) DeleteJob(ctx context.Context, id string) error {
	return s.record("delete", id)
}

func (s *stubExec) Apply(ctx context.Context, jobID string) error { return s.record("apply", jobID) }
func (s *stubExec) MyApplications(ctx context.Context) error      { return s.record("myapps") }
func (s *stubExec) Listings(ctx context.Context) error            { return s.record("listings") }
func (s *stubExec) Applicants(ctx context.Context, jobID string) error {
	return s.record("applicants", jobID)
}
func (s *stubExec) SetStatus(ctx context.Context, applicationID, status string) error {
	return s.record("setstatus", applicationID, status)
}

func runScript(t *testing.T, s *stubExec, script string) []string {
	t.Helper()

	orig := printlnFn
	defer func() { printlnFn = orig }()
	var printed []string
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if str, ok := v.(string); ok {
				parts = append(parts, str)
			}
		}
		printed = append(printed, strings.Join(parts, " "))
		return 0, nil
	}

	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), s, func() string { return "" }, scanner)
	return printed
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	s := &stubExec{loggedIn: true, employer: true}
	runScript(t, s, strings.Join([]string{
		"jobs golang remote",
		"job job_1",
		"post",
		"edit job_1",
		"applicants job_1",
		"setstatus app_1 interview",
		"logout",
		"exit",
	}, "\n"))

	require.Equal(t, []string{
		"jobs golang remote",
		"job job_1",
		"post",
		"edit job_1",
		"applicants job_1",
		"setstatus app_1 interview",
		"logout",
	}, s.calls)
}

func TestRunREPL_MissingArgsBecomeEmpty(t *testing.T) {
	s := &stubExec{loggedIn: true}
	runScript(t, s, "apply\nsetstatus app_1\nexit\n")

	require.Equal(t, []string{"apply", "setstatus app_1"}, s.calls)
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	s := &stubExec{}
	printed := runScript(t, s, "frobnicate\nexit\n")

	require.Empty(t, s.calls)
	joined := strings.Join(printed, "\n")
	require.Contains(t, joined, "Unknown command:")
}

func TestRunREPL_HelpVariesByRole(t *testing.T) {
	anon := runScript(t, &stubExec{}, "help\nexit\n")
	require.Contains(t, strings.Join(anon, "\n"), "register, login")

	emp := runScript(t, &stubExec{loggedIn: true, employer: true}, "help\nexit\n")
	require.Contains(t, strings.Join(emp, "\n"), "setstatus")

	seeker := runScript(t, &stubExec{loggedIn: true}, "help\nexit\n")
	require.Contains(t, strings.Join(seeker, "\n"), "apply")
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	s := &stubExec{}
	runScript(t, s, "")
	require.Empty(t, s.calls)
}
