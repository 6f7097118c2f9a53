package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) error {
	t.Helper()

	root := GetRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func TestConfigInitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := runCommand(t, "config", "init", "--config", path); err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("expected 0600 permissions, got %v", info.Mode().Perm())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "secret:") {
		t.Error("expected a generated JWT secret in the config file")
	}

	if err := runCommand(t, "config", "validate", "--config", path); err != nil {
		t.Errorf("config validate failed on freshly initialized file: %v", err)
	}

	// A second init without --force must refuse to overwrite.
	if err := runCommand(t, "config", "init", "--config", path); err == nil {
		t.Error("expected init without --force to fail on an existing file")
	}
}
