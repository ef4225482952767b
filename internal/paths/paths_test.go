package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thoreinstein/formkit/internal/errors"
)

func TestResolveHome(t *testing.T) {
	got, err := ResolveHome()
	want, _ := os.UserHomeDir()

	if err != nil {
		if !errors.Is(err, ErrHomeDirNotFound) {
			t.Errorf("unexpected error type: %v", err)
		}
	} else if got != want {
		t.Errorf("ResolveHome() = %q, want %q", got, want)
	}
}

func TestXDGHomes(t *testing.T) {
	for name, got := range map[string]string{
		"ConfigHome": ConfigHome(),
		"DataHome":   DataHome(),
	} {
		if got == "" {
			t.Errorf("%s() returned empty string", name)
		}
		if !filepath.IsAbs(got) {
			t.Errorf("%s() = %q, want absolute path", name, got)
		}
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv(ConfigDirEnv, "")
		want := filepath.Join(ConfigHome(), AppName)
		if got := ConfigDir(); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})

	t.Run("override", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(ConfigDirEnv, dir)
		if got := ConfigDir(); got != dir {
			t.Errorf("ConfigDir() = %q, want %q", got, dir)
		}
		if got, want := ConfigFile(), filepath.Join(dir, "config.yaml"); got != want {
			t.Errorf("ConfigFile() = %q, want %q", got, want)
		}
		if got, want := FormsDir(), filepath.Join(dir, "forms"); got != want {
			t.Errorf("FormsDir() = %q, want %q", got, want)
		}
	})
}

func TestSnapshotsDir(t *testing.T) {
	want := filepath.Join(DataHome(), "formkit", "snapshots")
	if got := SnapshotsDir(); got != want {
		t.Errorf("SnapshotsDir() = %q, want %q", got, want)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	if err := EnsureDir(dir, 0); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != DefaultDirPerm {
		t.Errorf("permissions = %o, want %o", perm, DefaultDirPerm)
	}

	if err := EnsureDir(dir, 0); err != nil {
		t.Errorf("EnsureDir() second call error = %v", err)
	}
}
