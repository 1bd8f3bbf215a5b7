package main

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amonks/pomo/internal/screen"
	"github.com/amonks/pomo/internal/testsupport"
	"github.com/creack/pty"
)

func TestPomoRedrawsTerminal(t *testing.T) {
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

	cmd := exec.Command(binPath, "-w", "2", "-s", "1", "-l", "1", "-c", "2", "--tick", "1ms", "--phases", "2")
	cmd.Env = append(os.Environ(),
		"HOME="+homeDir,
		"XDG_CONFIG_HOME=",
		"PATH="+binDir+string(os.PathListSeparator)+os.Getenv("PATH"),
		"NOTIFY_LOG="+logPath,
	)

	terminal, err := pty.Start(cmd)
	if err != nil {
		t.Fatalf("start pty: %v", err)
	}
	defer terminal.Close()

	var output bytes.Buffer
	// Reading the pty fails with EIO once the child exits.
	_, _ = io.Copy(&output, terminal)
	if err := cmd.Wait(); err != nil {
		t.Fatalf("pomo exited with error: %v\n%s", err, output.String())
	}

	screenOutput := output.String()
	if got := strings.Count(screenOutput, screen.ClearSequence); got != 4 {
		t.Fatalf("expected 4 redraws, got %d in %q", got, screenOutput)
	}
	for _, check := range []string{"POMO", "W:2", "S:1", "L:1", "C:2"} {
		if !strings.Contains(screenOutput, check) {
			t.Fatalf("expected output to include %q, got %q", check, screenOutput)
		}
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read notify log: %v", err)
	}
	want := "-u critical -a pomo start working\n-u critical -a pomo take a short break\n"
	if string(data) != want {
		t.Fatalf("expected %q, got %q", want, string(data))
	}
}
