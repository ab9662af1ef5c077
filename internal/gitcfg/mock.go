package gitcfg

import (
	"context"
	"fmt"
	"strings"
)

// FakeRunner is a CommandRunner for tests. Canned stdout is keyed on the
// full command line; unknown commands fail unless Err overrides everything.
type FakeRunner struct {
	// Outputs maps "name arg1 arg2 ..." to canned stdout.
	Outputs map[string]string
	// FailOn lists command lines that return an error.
	FailOn []string
	// Calls records every command line executed.
	Calls []string
}

// NewFakeRunner creates an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{Outputs: make(map[string]string)}
}

func (f *FakeRunner) key(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

func (f *FakeRunner) fails(key string) bool {
	for _, k := range f.FailOn {
		if k == key {
			return true
		}
	}
	return false
}

// Output implements CommandRunner.
func (f *FakeRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	key := f.key(name, args)
	f.Calls = append(f.Calls, key)

	if f.fails(key) {
		return "", fmt.Errorf("fake command failed: %s", key)
	}
	out, ok := f.Outputs[key]
	if !ok {
		return "", fmt.Errorf("fake command has no output: %s", key)
	}
	return out, nil
}

// Run implements CommandRunner.
func (f *FakeRunner) Run(ctx context.Context, name string, args ...string) error {
	key := f.key(name, args)
	f.Calls = append(f.Calls, key)

	if f.fails(key) {
		return fmt.Errorf("fake command failed: %s", key)
	}
	return nil
}
