package paths

import (
	"path/filepath"
	"testing"
)

func TestHomeDirUsesHome(t *testing.T) {
	t.Setenv("HOME", filepath.Join("/tmp", "test-home"))

	home, err := HomeDir()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if home != filepath.Join("/tmp", "test-home") {
		t.Fatalf("expected %s, got %s", filepath.Join("/tmp", "test-home"), home)
	}
}

func TestDefaultConfigPathUsesHome(t *testing.T) {
	t.Setenv("HOME", filepath.Join("/tmp", "test-home"))
	t.Setenv("XDG_CONFIG_HOME", "")

	path, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := filepath.Join("/tmp", "test-home", ".config", "pomo", "config.toml")
	if path != expected {
		t.Fatalf("expected %s, got %s", expected, path)
	}
}

func TestDefaultConfigPathUsesXDGConfigHome(t *testing.T) {
	t.Setenv("HOME", filepath.Join("/tmp", "test-home"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join("/tmp", "xdg"))

	path, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := filepath.Join("/tmp", "xdg", "pomo", "config.toml")
	if path != expected {
		t.Fatalf("expected %s, got %s", expected, path)
	}
}

func TestDefaultConfigDirIgnoresRelativeXDG(t *testing.T) {
	t.Setenv("HOME", filepath.Join("/tmp", "test-home"))
	t.Setenv("XDG_CONFIG_HOME", "relative")

	dir, err := DefaultConfigDir()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := filepath.Join("/tmp", "test-home", ".config", "pomo")
	if dir != expected {
		t.Fatalf("expected %s, got %s", expected, dir)
	}
}
