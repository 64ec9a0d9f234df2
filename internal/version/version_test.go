package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	v, c, d := Info()
	if v == "" || c == "" || d == "" {
		t.Errorf("Info() returned empty fields: version=%q commit=%q date=%q", v, c, d)
	}
}

func TestAccessorsMatchInfo(t *testing.T) {
	v, c, d := Info()

	if got := GetVersion(); got != v {
		t.Errorf("GetVersion (%s) should match Info version (%s)", got, v)
	}
	if got := GetCommit(); got != c {
		t.Errorf("GetCommit (%s) should match Info commit (%s)", got, c)
	}
	if got := GetDate(); got != d {
		t.Errorf("GetDate (%s) should match Info date (%s)", got, d)
	}
}

func TestDefaultsWithoutLdflags(t *testing.T) {
	// Без -ldflags сборка остаётся dev-версией
	if GetVersion() != "dev" {
		t.Errorf("expected dev version by default, got %s", GetVersion())
	}
	if GetCommit() != "unknown" {
		t.Errorf("expected unknown commit by default, got %s", GetCommit())
	}
}

func TestString(t *testing.T) {
	s := String()

	for _, field := range []string{"version=", "commit=", "date="} {
		if !strings.Contains(s, field) {
			t.Errorf("String() should contain %q, got %s", field, s)
		}
	}
}
