package main

import "testing"

func TestRunVersionCommand(t *testing.T) {
	if code := run([]string{"version"}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}

func TestRunConvert(t *testing.T) {
	if code := run([]string{"SYSTEM.DEF.SVRCONN"}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if code := run([]string{"qm1."}); code != 0 {
		t.Fatalf("expected exit code 0 for a URL warning, got %d", code)
	}
}

func TestRunInvalidChannel(t *testing.T) {
	if code := run([]string{"unknown-command"}); code == 0 {
		t.Fatalf("expected non-zero exit code for invalid channel name")
	}
}

func TestRunTooManyArgs(t *testing.T) {
	if code := run([]string{"QM1", "QM2"}); code == 0 {
		t.Fatalf("expected non-zero exit code for two channel names")
	}
}
