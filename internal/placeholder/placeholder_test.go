package placeholder

import (
	"os"
	"strings"
	"testing"
)

// --- Expand Tests ---

func TestExpand_TMP(t *testing.T) {
	got := Expand("{TMP}/file.html")
	want := os.TempDir() + "/file.html"
	if got != want {
		t.Errorf("Expand() = %q, want %q", got, want)
	}
}

func TestExpand_Env(t *testing.T) {
	t.Setenv("PRETEXT_TEST_VALUE", "/data/html")

	got := Expand("{ENV:PRETEXT_TEST_VALUE}/*.html")
	if got != "/data/html/*.html" {
		t.Errorf("Expand() = %q, want %q", got, "/data/html/*.html")
	}
}

func TestExpand_EnvUnset(t *testing.T) {
	got := Expand("{ENV:PRETEXT_TEST_DEFINITELY_UNSET}x")
	if got != "x" {
		t.Errorf("Expand() = %q, want %q", got, "x")
	}
}

func TestExpand_UnknownTokenUntouched(t *testing.T) {
	got := Expand("{NOT_A_PLACEHOLDER}/a.html")
	if got != "{NOT_A_PLACEHOLDER}/a.html" {
		t.Errorf("unknown token should pass through, got %q", got)
	}
}

func TestExpand_NoTokens(t *testing.T) {
	got := Expand("plain/path.html")
	if got != "plain/path.html" {
		t.Errorf("Expand() = %q, want input unchanged", got)
	}
}

func TestExpand_MultipleOccurrences(t *testing.T) {
	t.Setenv("PRETEXT_TEST_A", "x")

	got := Expand("{ENV:PRETEXT_TEST_A}/{ENV:PRETEXT_TEST_A}")
	if got != "x/x" {
		t.Errorf("Expand() = %q, want %q", got, "x/x")
	}
}

// --- List Tests ---

func TestList_ContainsKnownTokens(t *testing.T) {
	names := List()
	joined := strings.Join(names, " ")

	for _, want := range []string{"{TMP}", "{ENV:NAME}"} {
		if !strings.Contains(joined, want) {
			t.Errorf("List() = %v, missing %s", names, want)
		}
	}
}
