package gotemplate_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-payforms/pkg/render/template/gotemplate"
)

func newEngine(t *testing.T, opts ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	files := fstest.MapFS{
		"hello.tmpl":      {Data: []byte("Hello {{ name|trim }}!")},
		"use-global.tmpl": {Data: []byte("env={{ settings.env }}")},
		"use-filter.tmpl": {Data: []byte("{{ name|shout }}")},
		"use-func.tmpl":   {Data: []byte("{{ greet(name) }}")},
	}
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(files)}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplateWritesToWriters(t *testing.T) {
	engine := newEngine(t)

	var buf bytes.Buffer
	got, err := engine.RenderTemplate("hello", map[string]any{"name": "  Ada "}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Ada!" || buf.String() != got {
		t.Fatalf("unexpected output %q / %q", got, buf.String())
	}
}

func TestEngine_GlobalContextAndStructData(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{"settings": map[string]any{"env": "staging"}}); err != nil {
		t.Fatalf("global context: %v", err)
	}
	got, err := engine.Render("use-global", nil)
	if err != nil || got != "env=staging" {
		t.Fatalf("unexpected output %q err=%v", got, err)
	}

	type payload struct {
		Name string `json:"name"`
	}
	got, err = engine.Render("{{ name }}", payload{Name: "Grace"})
	if err != nil || got != "Grace" {
		t.Fatalf("unexpected inline output %q err=%v", got, err)
	}
}

func TestEngine_RegisterFilterAndFuncs(t *testing.T) {
	engine := newEngine(t, gotemplate.WithTemplateFunc(map[string]any{
		"greet": func(name string) string { return "hi " + name },
	}))
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}

	got, err := engine.RenderTemplate("use-filter", map[string]any{"name": "ada"})
	if err != nil || got != "ADA!" {
		t.Fatalf("unexpected filter output %q err=%v", got, err)
	}
	got, err = engine.RenderTemplate("use-func.tmpl", map[string]any{"name": "ada"})
	if err != nil || got != "hi ada" {
		t.Fatalf("unexpected func output %q err=%v", got, err)
	}
}

func TestNew_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without templates")
	}
}

func TestEngine_BaseDirTakesPrecedenceOverFS(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hello.tmpl"), []byte("Hi {{ name }} from disk"), 0o600); err != nil {
		t.Fatalf("write template: %v", err)
	}
	engine := newEngine(t, gotemplate.WithBaseDir(dir))

	got, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hi Ada from disk" {
		t.Fatalf("expected disk template, got %q", got)
	}

	got, err = engine.RenderTemplate("use-global", map[string]any{"settings": map[string]any{"env": "dev"}})
	if err != nil {
		t.Fatalf("render fs fallback: %v", err)
	}
	if got != "env=dev" {
		t.Fatalf("expected fs template, got %q", got)
	}
}

func TestEngine_BaseDirOnly(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "page.tmpl"), []byte("<{% include \"part.tmpl\" %}>"), 0o600); err != nil {
		t.Fatalf("write page: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "part.tmpl"), []byte("{{ name }}"), 0o600); err != nil {
		t.Fatalf("write part: %v", err)
	}
	engine, err := gotemplate.New(gotemplate.WithBaseDir(dir))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderTemplate("page", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "<Ada>" {
		t.Fatalf("unexpected output %q", got)
	}
}
