package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootRejectsArguments(t *testing.T) {
	if err := rootCmd.Args(rootCmd, []string{"extra"}); err == nil {
		t.Error("expected an error for positional arguments, got nil")
	}
}

func TestRunRoot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader("add Apple -k 50\nexit\n"))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "Welcome to DietBook!") {
		t.Errorf("output missing welcome message:\n%s", out.String())
	}
	if _, err := os.Stat(filepath.Join(home, ".dietbook", "config.json")); err != nil {
		t.Errorf("config template not written: %v", err)
	}
	if _, err := os.Stat("FoodList.txt"); err != nil {
		t.Errorf("food log not saved: %v", err)
	}
}
