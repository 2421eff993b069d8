package config

import (
	"go/ast"
	goparser "go/parser"
	"go/token"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"8080", ":8080"},
		{":8080", ":8080"},
		{"127.0.0.1:8080", "127.0.0.1:8080"},
		{" 9000 ", ":9000"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseAddress(tt.input); got != tt.expected {
				t.Errorf("parseAddress(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CACHE_TTL", "")
	t.Setenv("MAX_MESSAGE_LEN", "")

	cfg := Load()

	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr: got %q, want :8080", cfg.ListenAddr)
	}
	if cfg.CacheTTL != 10*time.Minute {
		t.Errorf("CacheTTL: got %s, want 10m", cfg.CacheTTL)
	}
	if cfg.MaxMessageLen != 4096 {
		t.Errorf("MaxMessageLen: got %d, want 4096", cfg.MaxMessageLen)
	}
	if cfg.LogLevel != log.InfoLevel {
		t.Errorf("LogLevel: got %v, want info", cfg.LogLevel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LISTEN_ADDR", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("MAX_MESSAGE_LEN", "512")

	cfg := Load()

	if cfg.ListenAddr != ":9090" {
		t.Errorf("ListenAddr: got %q, want :9090", cfg.ListenAddr)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Errorf("CacheTTL: got %s, want 30s", cfg.CacheTTL)
	}
	if cfg.MaxMessageLen != 512 {
		t.Errorf("MaxMessageLen: got %d, want 512", cfg.MaxMessageLen)
	}
	if cfg.LogLevel != log.DebugLevel {
		t.Errorf("LogLevel: got %v, want debug", cfg.LogLevel)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")
	t.Setenv("MAX_MESSAGE_LEN", "-1")

	cfg := Load()

	if cfg.CacheTTL != 10*time.Minute {
		t.Errorf("CacheTTL: got %s, want default", cfg.CacheTTL)
	}
	if cfg.MaxMessageLen != 4096 {
		t.Errorf("MaxMessageLen: got %d, want default", cfg.MaxMessageLen)
	}
}

func TestExportedIdentifiersDocumented(t *testing.T) {
	if missing := undocumented(t, "config.go"); len(missing) > 0 {
		t.Errorf("no doc comment on %v", missing)
	}
}

// undocumented lists the exported top-level functions, methods and types of
// file that carry no doc comment.
func undocumented(t *testing.T, file string) []string {
	t.Helper()

	f, err := goparser.ParseFile(token.NewFileSet(), file, nil, goparser.ParseComments)
	if err != nil {
		t.Fatalf("parse %s: %v", file, err)
	}

	var missing []string
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Name.IsExported() && d.Doc == nil {
				missing = append(missing, d.Name.Name)
			}
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				ts := spec.(*ast.TypeSpec)
				if ts.Name.IsExported() && ts.Doc == nil && d.Doc == nil {
					missing = append(missing, ts.Name.Name)
				}
			}
		}
	}
	return missing
}
