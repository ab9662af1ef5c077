package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gident/gident/internal/config"
	"github.com/gident/gident/internal/gitcfg"
	"github.com/gident/gident/internal/notify"
	"github.com/gident/gident/internal/prompt"
	"github.com/gident/gident/internal/sshkey"
	"github.com/gident/gident/internal/store"
)

// testCLI bundles a CLI wired with fakes and the fakes themselves.
type testCLI struct {
	cli    *CLI
	runner *gitcfg.FakeRunner
	mock   *prompt.Mock
	out    *bytes.Buffer

	profilesFile string
}

// newTestCLI builds a CLI against a temp config dir, a fake command runner
// and a mock prompter. No real git, ssh-add or terminal is ever touched.
func newTestCLI(t *testing.T) *testCLI {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv("GIDENT_CONFIG_DIR", tmpDir)

	settings, err := config.LoadFrom(filepath.Join(tmpDir, "config.yaml"))
	if err != nil {
		t.Fatalf("loading settings: %v", err)
	}

	runner := gitcfg.NewFakeRunner()
	mock := &prompt.Mock{}
	out := &bytes.Buffer{}
	profilesFile := filepath.Join(tmpDir, "profiles.json")

	return &testCLI{
		cli: &CLI{
			Settings:  settings,
			Store:     store.LoadFrom(profilesFile),
			Git:       gitcfg.NewClient("git", runner),
			Registrar: sshkey.NewRegistrar("ssh-add", runner),
			Prompter:  mock,
			Notifier:  notify.New(config.NotificationConfig{}),
			Runner:    runner,
			out:       out,
		},
		runner:       runner,
		mock:         mock,
		out:          out,
		profilesFile: profilesFile,
	}
}

// seedProfiles writes profiles to the store file and reloads the CLI store.
func (tc *testCLI) seedProfiles(t *testing.T, profiles ...store.Profile) {
	t.Helper()

	s := store.Empty(tc.profilesFile)
	s.Profiles = profiles
	if err := s.Save(); err != nil {
		t.Fatalf("seeding profiles: %v", err)
	}
	tc.cli.Store = store.LoadFrom(tc.profilesFile)
}

// reload reads the store file back from disk.
func (tc *testCLI) reload() *store.Store {
	return store.LoadFrom(tc.profilesFile)
}

// setCalls returns the runner invocations that write config (no --get).
func (tc *testCLI) setCalls() []string {
	var out []string
	for _, call := range tc.runner.Calls {
		if !strings.Contains(call, "--get") {
			out = append(out, call)
		}
	}
	return out
}
