package tuitest

import (
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	if cfg.Width != defaultWidth || cfg.Height != defaultHeight || cfg.Timeout != defaultTimeout {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	cfg = Config{Width: 80, Height: 24, Timeout: time.Second}.withDefaults()
	if cfg.Width != 80 || cfg.Height != 24 || cfg.Timeout != time.Second {
		t.Fatalf("explicit values overwritten %+v", cfg)
	}
}

func TestRunRequiresCommand(t *testing.T) {
	if _, err := Run(context.Background(), Config{}); err == nil {
		t.Fatalf("expected an error without a command")
	}
}

func TestRunCapturesOutput(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	rec, err := Run(context.Background(), Config{
		Command: []string{"sh", "-c", "read line; echo got:$line"},
		Steps:   []Step{Press([]byte("hello\r"))},
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !rec.Contains("got:hello") {
		t.Fatalf("output not captured: %q", rec.PlainText())
	}
}

func TestExitAllowed(t *testing.T) {
	err := exec.Command("sh", "-c", "exit 3").Run()
	if err == nil {
		t.Skip("sh not available")
	}
	if (Config{}).exitAllowed(err) {
		t.Fatalf("exit 3 should not be allowed by default")
	}
	if !(Config{AllowedExitCodes: []int{3}}).exitAllowed(err) {
		t.Fatalf("exit 3 should be allowed when listed")
	}
	if !strings.Contains(err.Error(), "3") {
		t.Fatalf("unexpected error %v", err)
	}
}
