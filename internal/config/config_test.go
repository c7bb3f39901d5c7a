package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	if err := Init(""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	if c != want {
		t.Errorf("expected defaults %+v, got %+v", want, c)
	}
}

func TestLoad_FileWithSubstitution(t *testing.T) {
	resetViper(t)
	t.Setenv("RAIN_SERVER", "http://rain.internal:8080")

	path := filepath.Join(t.TempDir(), "raindrop.yml")
	content := "endpoint: ${env://RAIN_SERVER}/api/translate\nlocale: zh\nhint: false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if c.Endpoint != "http://rain.internal:8080/api/translate" {
		t.Errorf("unexpected endpoint %q", c.Endpoint)
	}
	if c.Locale != "zh" || c.Hint {
		t.Errorf("unexpected settings %+v", c)
	}
}

func TestLoad_JSONFile(t *testing.T) {
	resetViper(t)

	path := filepath.Join(t.TempDir(), "raindrop.json")
	if err := os.WriteFile(path, []byte(`{"locale": "zh", "debug": true}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Locale != "zh" || !c.Debug {
		t.Errorf("unexpected settings %+v", c)
	}
}

func TestLoadFile_WithoutEnvRefsIsReadVerbatim(t *testing.T) {
	resetViper(t)

	path := filepath.Join(t.TempDir(), ".raindrop.yml")
	content := "endpoint: https://rain.example.com/api/translate?token=${TOKEN}\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := viper.GetString("endpoint"); got != "https://rain.example.com/api/translate?token=${TOKEN}" {
		t.Errorf("expected the endpoint untouched, got %q", got)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	resetViper(t)
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RAINDROP_ENDPOINT", "https://rain.example.com/api/translate")
	t.Setenv("RAINDROP_LOG_FILE", "/tmp/rain.log")

	if err := Init(""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Endpoint != "https://rain.example.com/api/translate" {
		t.Errorf("unexpected endpoint %q", c.Endpoint)
	}
	if c.LogFile != "/tmp/rain.log" {
		t.Errorf("unexpected log file %q", c.LogFile)
	}
}

func TestInit_MissingVariable(t *testing.T) {
	resetViper(t)
	t.Setenv("RAIN_NOT_SET", "")

	path := filepath.Join(t.TempDir(), "raindrop.yml")
	if err := os.WriteFile(path, []byte("endpoint: ${env://RAIN_NOT_SET}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Init(path); err == nil {
		t.Fatal("expected an error for an unset variable")
	}
}

func TestInit_DiscoversWorkingDirectoryFile(t *testing.T) {
	resetViper(t)
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	if err := os.WriteFile(filepath.Join(dir, ".raindrop.yml"), []byte("locale: zh\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Init(""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Locale != "zh" {
		t.Errorf("expected the discovered file to be loaded, got locale %q", c.Locale)
	}
}

func TestWriteDefault(t *testing.T) {
	resetViper(t)
	path := filepath.Join(t.TempDir(), "nested", ".raindrop.yml")

	if err := WriteDefault(path, false); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}
	if err := WriteDefault(path, false); !errors.Is(err, ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}
	if err := WriteDefault(path, true); err != nil {
		t.Fatalf("WriteDefault with force: %v", err)
	}

	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c != Default() {
		t.Errorf("round trip through the written file changed settings: %+v", c)
	}
}
