// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestMain lets the test binary act as mulbench itself
// when MULBENCH_MAIN is set, so the tests can run the real command.
func TestMain(m *testing.M) {
	if os.Getenv("MULBENCH_MAIN") == "1" {
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func mulbench(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	if runtime.GOOS == "js" || runtime.GOOS == "wasip1" {
		t.Skip("cannot exec subprocess")
	}
	exe, err := os.Executable()
	if err != nil {
		t.Skip(err)
	}
	cmd := exec.Command(exe, args...)
	cmd.Env = append(os.Environ(), "MULBENCH_MAIN=1")
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	err = cmd.Run()
	var ee *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &ee):
		code = ee.ExitCode()
	default:
		t.Fatal(err)
	}
	return out.String(), errb.String(), code
}

func TestCommand(t *testing.T) {
	stdout, stderr, code := mulbench(t, "-n", "1000")
	if code != 0 {
		t.Fatalf("mulbench -n 1000: exit %d\n%s", code, stderr)
	}
	got, times := shape(stdout)
	if diff := cmp.Diff(template, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	if len(times) != 6 {
		t.Errorf("found %d times, want 6", len(times))
	}
}

func TestCommandUsage(t *testing.T) {
	tests := []struct {
		args []string
		msg  string
	}{
		{[]string{"extra"}, "usage: mulbench"},
		{[]string{"-n", "-1"}, "negative count"},
		{[]string{"-clock", "sundial"}, `unknown clock "sundial"`},
		{[]string{"-nosuchflag"}, "usage: mulbench"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			stdout, stderr, code := mulbench(t, tt.args...)
			if code != 2 {
				t.Errorf("exit code = %d, want 2", code)
			}
			if stdout != "" {
				t.Errorf("unexpected stdout:\n%s", stdout)
			}
			if !strings.Contains(stderr, tt.msg) {
				t.Errorf("stderr does not contain %q:\n%s", tt.msg, stderr)
			}
		})
	}
}
