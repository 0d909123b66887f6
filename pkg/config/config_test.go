package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Dict.Path != "words.txt" {
		t.Errorf("Dict.Path = %q, want words.txt", cfg.Dict.Path)
	}
	if cfg.Suggest.Limit != 5 {
		t.Errorf("Suggest.Limit = %d, want 5", cfg.Suggest.Limit)
	}
	if cfg.Server.MaxTextBytes != 1<<20 || cfg.Server.MaxWordLen != 64 || cfg.Server.MaxLimit != 100 {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Server.AllowRefreshPath {
		t.Error("refresh from client paths must be off by default")
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("InitConfig() = %+v, want defaults", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(reloaded, cfg) {
		t.Errorf("reloaded config = %+v, want %+v", reloaded, cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
[dict]
path = "/usr/share/dict/words"

[suggest]
limit = 3

[allow]
words = ["gopher"]
prefixes = ["http", "www."]
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dict.Path != "/usr/share/dict/words" || cfg.Suggest.Limit != 3 {
		t.Errorf("LoadConfig() = %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Allow.Prefixes, []string{"http", "www."}) {
		t.Errorf("Allow.Prefixes = %v", cfg.Allow.Prefixes)
	}
	if cfg.Server.MaxWordLen != 64 {
		t.Errorf("missing section should keep defaults, got %+v", cfg.Server)
	}
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
[dict]
path = "mine.txt"

[suggest]
limit = "ten"

[server]
max_word_len = 32
max_limit = 20
allow_refresh_path = true
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dict.Path != "mine.txt" {
		t.Errorf("Dict.Path = %q, want mine.txt", cfg.Dict.Path)
	}
	if cfg.Suggest.Limit != 5 {
		t.Errorf("Suggest.Limit = %d, want default 5", cfg.Suggest.Limit)
	}
	if cfg.Server.MaxWordLen != 32 || cfg.Server.MaxLimit != 20 || !cfg.Server.AllowRefreshPath {
		t.Errorf("Server = %+v, want max_word_len 32, max_limit 20, refresh paths allowed", cfg.Server)
	}
}

func TestLoadConfigUnparsable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[dict\npath = ")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
}

func TestNormalize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[suggest]\nlimit = -1\n[server]\nmax_text_bytes = 0\nmax_limit = -5\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Suggest.Limit != 5 || cfg.Server.MaxTextBytes != 1<<20 || cfg.Server.MaxLimit != 100 {
		t.Errorf("normalize left %+v %+v", cfg.Suggest, cfg.Server)
	}
}

func TestApplyEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	writeFile(t, envFile, "WORDCHECK_DICT=from-file.txt\nWORDCHECK_LIMIT=7\n")

	t.Run("env file", func(t *testing.T) {
		t.Setenv(EnvDict, "")
		t.Setenv(EnvLimit, "")
		cfg := DefaultConfig()
		cfg.ApplyEnv(envFile)
		if cfg.Dict.Path != "from-file.txt" || cfg.Suggest.Limit != 7 {
			t.Errorf("ApplyEnv() = %+v %+v", cfg.Dict, cfg.Suggest)
		}
	})

	t.Run("process env wins", func(t *testing.T) {
		t.Setenv(EnvDict, "from-env.txt")
		t.Setenv(EnvLimit, "")
		cfg := DefaultConfig()
		cfg.ApplyEnv(envFile)
		if cfg.Dict.Path != "from-env.txt" || cfg.Suggest.Limit != 7 {
			t.Errorf("ApplyEnv() = %+v %+v", cfg.Dict, cfg.Suggest)
		}
	})

	t.Run("invalid limit ignored", func(t *testing.T) {
		t.Setenv(EnvDict, "")
		t.Setenv(EnvLimit, "lots")
		cfg := DefaultConfig()
		cfg.ApplyEnv("")
		if cfg.Suggest.Limit != 5 || cfg.Dict.Path != "words.txt" {
			t.Errorf("ApplyEnv() = %+v %+v", cfg.Dict, cfg.Suggest)
		}
	})
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, path, "[suggest]\nlimit = 9\n")

	cfg, used, err := LoadConfigWithPriority(path)
	if err != nil {
		t.Fatal(err)
	}
	if used != path || cfg.Suggest.Limit != 9 {
		t.Errorf("LoadConfigWithPriority() = %+v from %q", cfg.Suggest, used)
	}
}
