package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/amonks/pomo/internal/testsupport"
)

func TestPomoExitsOnInterrupt(t *testing.T) {
	binPath := testsupport.BuildPomo(t)
	workDir := t.TempDir()
	binDir := filepath.Join(workDir, "bin")
	if _, err := testsupport.WriteFakeNotifier(binDir); err != nil {
		t.Fatalf("write fake notifier: %v", err)
	}
	homeDir := filepath.Join(workDir, "home")
	if err := testsupport.EnsureHomeDirs(homeDir); err != nil {
		t.Fatalf("setup home: %v", err)
	}
	logPath := filepath.Join(workDir, "notify.log")

	cmd := exec.Command(binPath, "--tick", "1h")
	cmd.Env = append(os.Environ(),
		"HOME="+homeDir,
		"XDG_CONFIG_HOME=",
		"PATH="+binDir+string(os.PathListSeparator)+os.Getenv("PATH"),
		"NOTIFY_LOG="+logPath,
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Start(); err != nil {
		t.Fatalf("start pomo: %v", err)
	}
	t.Cleanup(func() {
		_ = cmd.Process.Kill()
	})

	want := "-u critical -a pomo start working\n"
	deadline := time.Now().Add(10 * time.Second)
	for {
		data, _ := os.ReadFile(logPath)
		if string(data) == want {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for the first notification, log %q", string(data))
		}
		time.Sleep(10 * time.Millisecond)
	}

	if err := cmd.Process.Signal(syscall.SIGINT); err != nil {
		t.Fatalf("send interrupt: %v", err)
	}
	err := cmd.Wait()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected exit error, got %v", err)
	}
	if exitErr.ExitCode() != 130 {
		t.Fatalf("expected exit code 130, got %d", exitErr.ExitCode())
	}
	if stderr.Len() != 0 {
		t.Fatalf("expected empty stderr, got %q", stderr.String())
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read notify log: %v", err)
	}
	if string(data) != want {
		t.Fatalf("expected %q, got %q", want, string(data))
	}
}
