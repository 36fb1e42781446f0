package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"
)

func TestNewCommand_Subcommands(t *testing.T) {
	root := newCommand()
	if root.Action == nil {
		t.Fatal("root command must default to run")
	}

	want := []string{"run", "index", "search", "ask", "serve"}
	got := make(map[string]*cli.Command, len(root.Commands))
	for _, c := range root.Commands {
		got[c.Name] = c
	}
	for _, name := range want {
		if got[name] == nil {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestQueryArg(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"joined words", []string{"chicken", "curry"}, "chicken curry", false},
		{"quoted", []string{"  basmati rice "}, "basmati rice", false},
		{"missing", nil, "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var (
				got string
				err error
			)
			cmd := &cli.Command{
				Name: "search",
				Action: func(_ context.Context, c *cli.Command) error {
					got, err = queryArg(c)
					return nil
				},
			}
			if runErr := cmd.Run(context.Background(), append([]string{"search"}, tc.args...)); runErr != nil {
				t.Fatalf("run: %v", runErr)
			}
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("query = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRunCommand_DatabaseUnavailable(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := `
database:
  driver: redis
  addrs: ["127.0.0.1:1"]
  readiness_timeout_sec: 1
embedding:
  api_key: sk-test
logging:
  level: fatal
`
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ENV", "local")

	var out bytes.Buffer
	root := newCommand()
	root.Writer = &out

	args := []string{"shopassist", "--env", filepath.Join(dir, "missing.env"), "--config", cfgPath, "run"}
	if err := root.Run(context.Background(), args); err != nil {
		t.Fatalf("run must report instead of failing, got %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Search Results:") {
		t.Errorf("missing results header:\n%s", got)
	}
	if !strings.Contains(got, "No results: ") {
		t.Errorf("missing failure reason:\n%s", got)
	}
	if strings.Contains(got, "Cooking Instructions:") {
		t.Errorf("instructions must not be generated without hits:\n%s", got)
	}
}

func TestIndexCommand_DatabaseUnavailableFails(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := `
database:
  addrs: ["127.0.0.1:1"]
  readiness_timeout_sec: 1
embedding:
  api_key: sk-test
logging:
  level: fatal
`
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ENV", "local")

	root := newCommand()
	root.Writer = &bytes.Buffer{}

	args := []string{"shopassist", "--env", filepath.Join(dir, "missing.env"), "--config", cfgPath, "index"}
	if err := root.Run(context.Background(), args); err == nil {
		t.Fatal("index must fail without a database")
	}
}

func TestRunCommand_InvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("database:\n  addrs: [\"127.0.0.1:1\"]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ENV", "local")
	t.Setenv("OPENAI_API_KEY", "")

	root := newCommand()
	root.Writer = &bytes.Buffer{}

	args := []string{"shopassist", "--env", filepath.Join(dir, "missing.env"), "--config", cfgPath, "run"}
	err := root.Run(context.Background(), args)
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("expected config error, got %v", err)
	}
}
