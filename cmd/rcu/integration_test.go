// Package main provides integration tests for the rcu CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/andyballingall/rust-code-uploader/internal/app"
)

// The scripts run against fake rustup and rustfmt commands built into the test
// binary. The fake rustfmt appends its arguments to rustfmt.args in the working
// directory and exits with $FAKE_RUSTFMT_EXIT.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"rcu": func() int {
			if err := app.Run(context.Background(), os.Args, os.Stdout, os.Stderr, nil); err != nil {
				os.Exit(1)
			}
			return 0
		},
		"rustup":  func() int { fakeRustup(); return 0 },
		"rustfmt": func() int { fakeRustfmt(); return 0 },
	}))
}

func fakeRustup() {
	if len(os.Args) != 3 || os.Args[1] != "which" {
		fmt.Fprintln(os.Stderr, "error: unsupported fake rustup call")
		os.Exit(2)
	}
	path, err := exec.LookPath(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: not a file: %s\n", os.Args[2])
		os.Exit(1)
	}
	fmt.Println(path)
}

func fakeRustfmt() {
	f, err := os.OpenFile("rustfmt.args", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		os.Exit(101)
	}
	fmt.Fprintln(f, strings.Join(os.Args[1:], " "))
	_ = f.Close()

	if code, err := strconv.Atoi(os.Getenv("FAKE_RUSTFMT_EXIT")); err == nil && code != 0 {
		fmt.Fprintln(os.Stderr, "error: expected item, found `(`")
		os.Exit(code)
	}
}

func TestScripts(t *testing.T) {
	t.Parallel()
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
		Setup: func(env *testscript.Env) error {
			// Keep a developer's own settings or log file out of the scripts.
			env.Setenv("RCU_CONFIG", "")
			env.Setenv("RCU_LOG_FILE", "")
			env.Setenv("RCU_RUSTFMT", "")
			env.Setenv("FAKE_RUSTFMT_EXIT", "0")
			return nil
		},
	})
}
