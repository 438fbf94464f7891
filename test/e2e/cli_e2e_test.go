package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the binary and exercises the main command-line modes.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}

	tmpDir := t.TempDir()
	binName := "basecalc"
	if runtime.GOOS == "windows" {
		binName = "basecalc.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	build := exec.Command("go", "build", "-o", binPath, "./cmd/basecalc")
	build.Dir = "../.."
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("failed to build basecalc: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "basic addition",
			args:     []string{"12", "34"},
			wantOut:  "12 + 34 = 46",
			wantCode: 0,
		},
		{
			name:     "quiet multiplication",
			args:     []string{"-q", "-o", "*", "12", "34"},
			wantOut:  "408",
			wantCode: 0,
		},
		{
			name:     "negative base",
			args:     []string{"-q", "-b", "-2", "10011", "1101"},
			wantOut:  "11100",
			wantCode: 0,
		},
		{
			name:     "hex with explicit alphabet",
			args:     []string{"-q", "-b", "16", "-a", "0123456789ABCDEF", "AFFE", "2"},
			wantOut:  "B000",
			wantCode: 0,
		},
		{
			name:     "compare mode",
			args:     []string{"-compare", "12", "34"},
			wantOut:  "46",
			wantCode: 0,
		},
		{
			name:     "engine listing",
			args:     []string{"-list"},
			wantOut:  "vector",
			wantCode: 0,
		},
		{
			name:     "help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "version flag",
			args:     []string{"--version"},
			wantOut:  "basecalc",
			wantCode: 0,
		},
		{
			name:     "invalid base",
			args:     []string{"-b", "200", "1", "2"},
			wantOut:  "base magnitude",
			wantCode: 4,
		},
		{
			name:     "missing operands",
			args:     []string{},
			wantOut:  "two operands",
			wantCode: 4,
		},
		{
			name:     "foreign digit",
			args:     []string{"12F", "3"},
			wantOut:  "not in the alphabet",
			wantCode: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("command failed unexpectedly: %v\noutput: %s", err, outStr)
				}
			} else {
				exitErr, ok := err.(*exec.ExitError)
				if !ok {
					t.Fatalf("expected exit code %d, got err %v\noutput: %s", tt.wantCode, err, outStr)
				}
				if exitErr.ExitCode() != tt.wantCode {
					t.Errorf("exit code = %d, want %d\noutput: %s", exitErr.ExitCode(), tt.wantCode, outStr)
				}
			}

			if tt.wantOut != "" && !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("output missing %q:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
