package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gident/gident/internal/config"
	"github.com/gident/gident/internal/sshkey"
)

// CheckResult represents the result of a diagnostic check.
type CheckResult struct {
	Name    string      `json:"name"`
	Status  CheckStatus `json:"status"`
	Message string      `json:"message"`
	Fix     string      `json:"fix,omitempty"`
}

// CheckStatus represents the status of a diagnostic check.
type CheckStatus int

const (
	// CheckOK indicates the check passed.
	CheckOK CheckStatus = iota
	// CheckWarning indicates a non-critical issue.
	CheckWarning
	// CheckError indicates a critical failure.
	CheckError
)

// String returns the status name.
func (s CheckStatus) String() string {
	switch s {
	case CheckOK:
		return "OK"
	case CheckWarning:
		return "WARN"
	case CheckError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Icon returns the status icon for display.
func (s CheckStatus) Icon() string {
	switch s {
	case CheckOK:
		return markerStyle.Render("[OK]")
	case CheckWarning:
		return warnStyle.Render("[!!]")
	case CheckError:
		return "[XX]"
	default:
		return "[??]"
	}
}

// MarshalJSON implements json.Marshaler.
func (s CheckStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// DoctorOutput represents the doctor command output for JSON.
type DoctorOutput struct {
	Checks      []CheckResult `json:"checks"`
	HasErrors   bool          `json:"has_errors"`
	HasWarnings bool          `json:"has_warnings"`
}

// newDoctorCmd creates the doctor command.
func (cli *CLI) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose common issues",
		Long: `Run diagnostic checks to identify and troubleshoot common issues.

The doctor command checks:
  - git and ssh-add binaries on PATH
  - settings file validity
  - profile store validity
  - SSH directory and conventional key files`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(cli.outputFlag)
			if err != nil {
				return err
			}
			return cli.runDoctor(cmd.Context(), format)
		},
	}
}

// runDoctor runs all diagnostic checks and prints the results.
func (cli *CLI) runDoctor(ctx context.Context, format OutputFormat) error {
	output := NewOutputWriterTo(format, cli.out)

	checks := []CheckResult{
		cli.checkGitBinary(ctx),
		cli.checkSSHAddBinary(),
		cli.checkSettingsFile(),
		cli.checkProfileStore(),
		cli.checkSSHDir(),
	}

	data := DoctorOutput{Checks: checks}
	for _, c := range checks {
		switch c.Status {
		case CheckError:
			data.HasErrors = true
		case CheckWarning:
			data.HasWarnings = true
		}
	}

	return output.Write(data, func(w io.Writer) {
		for _, c := range checks {
			fmt.Fprintf(w, "%s %s: %s\n", c.Status.Icon(), c.Name, c.Message)
			if c.Fix != "" {
				fmt.Fprintf(w, "     %s\n", dimStyle.Render("fix: "+c.Fix))
			}
		}
	})
}

func (cli *CLI) checkGitBinary(ctx context.Context) CheckResult {
	check := CheckResult{Name: "git binary"}

	bin := cli.Settings.GitBinary
	if _, err := exec.LookPath(bin); err != nil {
		check.Status = CheckError
		check.Message = fmt.Sprintf("%q not found on PATH", bin)
		check.Fix = "install git or set git_binary in " + cli.Settings.FilePath()
		return check
	}

	out, err := cli.Runner.Output(ctx, bin, "version")
	if err != nil {
		check.Status = CheckWarning
		check.Message = fmt.Sprintf("%q found but 'git version' failed: %v", bin, err)
		return check
	}

	check.Status = CheckOK
	check.Message = strings.TrimSpace(out)
	return check
}

func (cli *CLI) checkSSHAddBinary() CheckResult {
	check := CheckResult{Name: "ssh-add binary"}

	bin := cli.Settings.SSHAddBinary
	if _, err := exec.LookPath(bin); err != nil {
		check.Status = CheckWarning
		check.Message = fmt.Sprintf("%q not found on PATH, SSH key registration unavailable", bin)
		check.Fix = "install openssh or set ssh_add_binary in " + cli.Settings.FilePath()
		return check
	}

	check.Status = CheckOK
	check.Message = bin + " found"
	return check
}

func (cli *CLI) checkSettingsFile() CheckResult {
	check := CheckResult{Name: "settings file"}

	path := config.GetPaths().SettingsFile
	if _, err := os.Stat(path); os.IsNotExist(err) {
		check.Status = CheckOK
		check.Message = "not present, defaults in use"
		return check
	}

	if _, err := config.LoadFrom(path); err != nil {
		check.Status = CheckError
		check.Message = err.Error()
		check.Fix = "fix or delete " + path
		return check
	}

	check.Status = CheckOK
	check.Message = path
	return check
}

func (cli *CLI) checkProfileStore() CheckResult {
	check := CheckResult{Name: "profile store"}

	path := config.GetPaths().ProfilesFile
	data, err := os.ReadFile(path) // #nosec G304 - controlled config path
	if err != nil {
		if os.IsNotExist(err) {
			check.Status = CheckOK
			check.Message = "not present yet, will be created on first save"
			return check
		}
		check.Status = CheckWarning
		check.Message = fmt.Sprintf("unreadable, treated as empty: %v", err)
		return check
	}

	var parsed map[string]any
	if err := json.Unmarshal(data, &parsed); err != nil {
		check.Status = CheckWarning
		check.Message = "not valid JSON, treated as empty"
		check.Fix = "fix or delete " + path
		return check
	}

	check.Status = CheckOK
	check.Message = fmt.Sprintf("%s (%d profiles)", path, len(cli.Store.Profiles))
	return check
}

func (cli *CLI) checkSSHDir() CheckResult {
	check := CheckResult{Name: "ssh keys"}

	dir := sshkey.Dir(cli.Settings.SSHDir)
	if _, err := os.Stat(dir); err != nil {
		check.Status = CheckWarning
		check.Message = dir + " does not exist"
		return check
	}

	keys := sshkey.Installed(dir)
	if len(keys) == 0 {
		check.Status = CheckWarning
		check.Message = "no conventional key files in " + dir
		return check
	}

	check.Status = CheckOK
	check.Message = strings.Join(keys, ", ")
	return check
}
