package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gofooting/internal/footing"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("logged = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)

	if got := loggerFromContext(withLogger(context.Background(), l)); got != l {
		t.Error("loggerFromContext() did not return the attached logger")
	}
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("expected log.Default() without an attached logger")
	}
}

func newTestCommand(f *designFlags) *cobra.Command {
	c := &cobra.Command{Use: "test"}
	f.register(c, "Width (in)", "kips")
	return c
}

func TestRecordLeavesUnsetOptionalsAbsent(t *testing.T) {
	var f designFlags
	c := newTestCommand(&f)
	if err := c.ParseFlags([]string{"-w", "18", "-d", "175", "-l", "175", "--fc", "3000",
		"--grade", "60", "--asp", "5000", "--we", "110"}); err != nil {
		t.Fatal(err)
	}

	rec := f.record(c, footing.Column)
	if rec.Type != "column" || *rec.Width != 18 || *rec.ASP != 5000 {
		t.Errorf("required fields not copied: %+v", rec)
	}
	if rec.We == nil || *rec.We != 110 {
		t.Errorf("w_e = %v, want 110", rec.We)
	}
	if rec.Wc != nil || rec.Bottom != nil || rec.Precision != nil || rec.ConcreteType != nil {
		t.Error("unset optional flags should stay absent")
	}
}

func TestLoadDefaultsFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.toml")
	if err := os.WriteFile(path, []byte("[defaults]\nprecision = 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	configFile = path
	defer func() { configFile = "" }()

	c := &cobra.Command{}
	c.SetContext(context.Background())
	def, err := loadDefaults(c)
	if err != nil {
		t.Fatalf("loadDefaults() error: %v", err)
	}
	if def.Precision != 0.5 || def.ConcreteUnitWeight != 150 {
		t.Errorf("defaults = %+v", def)
	}
}

func TestRootRegistersCommands(t *testing.T) {
	want := []string{"batch", "column", "load", "version", "wall"}
	var got []string
	for _, c := range rootCmd.Commands() {
		got = append(got, c.Name())
	}
	joined := strings.Join(got, ",")
	for _, name := range want {
		if !strings.Contains(joined, name) {
			t.Errorf("command %q not registered (have %s)", name, joined)
		}
	}
}
