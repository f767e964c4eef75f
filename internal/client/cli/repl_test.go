package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Ask(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "ask")
	f.args = args
	return nil
}
func (f *fakeExec) History(ctx context.Context) error {
	f.calls = append(f.calls, "history")
	return nil
}
func (f *fakeExec) ClearChat(ctx context.Context) error {
	f.calls = append(f.calls, "clearchat")
	return nil
}
func (f *fakeExec) Upload(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "upload")
	f.args = args
	return nil
}
func (f *fakeExec) Documents(ctx context.Context) error {
	f.calls = append(f.calls, "docs")
	return nil
}
func (f *fakeExec) RemoveDocument(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "rmdoc")
	f.args = args
	return nil
}
func (f *fakeExec) Cards(ctx context.Context) error {
	f.calls = append(f.calls, "cards")
	return nil
}
func (f *fakeExec) Generate(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "generate")
	f.args = args
	return nil
}
func (f *fakeExec) ClearCards(ctx context.Context) error {
	f.calls = append(f.calls, "clearcards")
	return nil
}
func (f *fakeExec) Whoami(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}

func muteOutput(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"ask what is osmosis",
		"history",
		"docs",
		"cards",
		"generate 10 biology",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "ask", "history", "docs", "cards", "generate"}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
	if len(exec.args) != 2 || exec.args[0] != "10" || exec.args[1] != "biology" {
		t.Fatalf("generate args mismatch: %v", exec.args)
	}
}

func TestRunREPL_StudyCommandsGatedBeforeLogin(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"ask something",
		"upload notes.pdf",
		"cards",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("")))
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	if len(exec.calls) != 0 {
		t.Fatalf("expected no handler calls before login, got %v", exec.calls)
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	muteOutput(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("history\n")))

	if len(exec.calls) != 1 || exec.calls[0] != "history" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_BlankLinesIgnored(t *testing.T) {
	muteOutput(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("\n\n  \nquit\n")))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
