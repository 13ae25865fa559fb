package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/arthur-debert/linkfix/pkg/errors"
	"github.com/arthur-debert/linkfix/pkg/executor"
)

// Call is one recorded command invocation
type Call struct {
	Name string
	Args []string
}

// String renders the call the way FakeExecutor keys its responses
func (c Call) String() string {
	return CommandKey(c.Name, c.Args...)
}

// CommandKey joins a command and its arguments with single spaces
func CommandKey(name string, args ...string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}

// FakeExecutor is a scripted executor.CommandExecutor. Responses are looked
// up by exact command line first, then by the first registered substring
// match, in registration order.
type FakeExecutor struct {
	mu        sync.Mutex
	exact     map[string]fakeResponse
	contains  []containsResponse
	Calls     []Call
	Unmatched error
}

type fakeResponse struct {
	stdout string
	err    error
}

type containsResponse struct {
	substr string
	fakeResponse
}

// NewFakeExecutor creates an executor with no scripted responses
func NewFakeExecutor() *FakeExecutor {
	return &FakeExecutor{exact: make(map[string]fakeResponse)}
}

// On scripts stdout for an exact command line
func (f *FakeExecutor) On(stdout string, name string, args ...string) *FakeExecutor {
	f.exact[CommandKey(name, args...)] = fakeResponse{stdout: stdout}
	return f
}

// OnContains scripts stdout for any command line containing substr
func (f *FakeExecutor) OnContains(substr, stdout string) *FakeExecutor {
	f.contains = append(f.contains, containsResponse{substr: substr, fakeResponse: fakeResponse{stdout: stdout}})
	return f
}

// FailOnContains makes any command line containing substr fail with a
// non-zero exit
func (f *FakeExecutor) FailOnContains(substr string) *FakeExecutor {
	err := errors.Newf(errors.ErrCommandExecute, "scripted failure for %q", substr).
		WithDetail("exitCode", 1)
	f.contains = append(f.contains, containsResponse{substr: substr, fakeResponse: fakeResponse{err: err}})
	return f
}

// Run implements executor.CommandExecutor
func (f *FakeExecutor) Run(_ context.Context, name string, args ...string) (executor.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	call := Call{Name: name, Args: append([]string(nil), args...)}
	f.Calls = append(f.Calls, call)
	key := call.String()

	if resp, ok := f.exact[key]; ok {
		return f.result(resp)
	}
	for _, c := range f.contains {
		if strings.Contains(key, c.substr) {
			return f.result(c.fakeResponse)
		}
	}

	if f.Unmatched != nil {
		return executor.Result{ExitCode: 1}, f.Unmatched
	}
	return executor.Result{ExitCode: 127}, errors.Newf(errors.ErrCommandExecute, "no scripted response for %q", key)
}

func (f *FakeExecutor) result(resp fakeResponse) (executor.Result, error) {
	if resp.err != nil {
		return executor.Result{ExitCode: 1}, resp.err
	}
	return executor.Result{Stdout: resp.stdout}, nil
}

// CallCount returns how many commands were run
func (f *FakeExecutor) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}

// Replacement is one recorded link replacement
type Replacement struct {
	Link   string
	Target string
}

// RecordingLinker is a filesystem.Linker that records every replacement.
// FailOn makes Replace fail for the given link path.
type RecordingLinker struct {
	Replacements []Replacement
	FailOn       map[string]error
}

// Replace implements filesystem.Linker
func (r *RecordingLinker) Replace(link, target string) error {
	if err, ok := r.FailOn[link]; ok {
		return errors.Wrapf(err, errors.ErrRelink, "failed to replace %s", link)
	}
	r.Replacements = append(r.Replacements, Replacement{Link: link, Target: target})
	return nil
}

// String is used in assertion messages
func (r Replacement) String() string {
	return fmt.Sprintf("%s -> %s", r.Link, r.Target)
}
