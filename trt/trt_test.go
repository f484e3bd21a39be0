package trt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTable(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "trt_by_word.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestFilterBounds(t *testing.T) {
	path := writeTable(t, strings.Join([]string{
		"word,total_reading_time",
		"he,149",
		"wont,150",
		"go,2000",
		"there,4000",
		"now,4001",
		"",
	}, "\n"))

	res, err := Filter(path, DefaultMin, DefaultMax)
	if err != nil {
		t.Fatal(err)
	}

	if res.Skipped {
		t.Fatal("unexpected skip")
	}
	if res.Before != 5 || res.After != 3 || res.Removed != 2 {
		t.Fatalf("result = %+v, want 5 -> 3", res)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	got := strings.TrimSpace(string(data))
	want := strings.Join([]string{
		"word,total_reading_time",
		"wont,150",
		"go,2000",
		"there,4000",
	}, "\n")

	if got != want {
		t.Errorf("filtered table:\n%s\nwant:\n%s", got, want)
	}
}

func TestFilterMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.csv")

	res, err := Filter(path, DefaultMin, DefaultMax)
	if err != nil {
		t.Fatalf("missing file must be a no-op success, got %v", err)
	}
	if !res.Skipped {
		t.Error("expected Skipped")
	}
}

func TestFilterMissingColumn(t *testing.T) {
	content := "word,fixations\nhe,3\n"
	path := writeTable(t, content)

	res, err := Filter(path, DefaultMin, DefaultMax)
	if err != nil {
		t.Fatalf("missing column must be a no-op success, got %v", err)
	}
	if !res.Skipped {
		t.Error("expected Skipped")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != content {
		t.Error("table changed despite missing column")
	}
}

func TestFilterMalformedInput(t *testing.T) {
	path := writeTable(t, "word,total_reading_time\n\"unterminated\n")

	if _, err := Filter(path, DefaultMin, DefaultMax); err == nil {
		t.Error("expected error for malformed CSV")
	}
}

func TestFilterNonNumericRows(t *testing.T) {
	path := writeTable(t, "word,total_reading_time\nhe,NA\ngo,300\n")

	res, err := Filter(path, DefaultMin, DefaultMax)
	if err != nil {
		t.Fatal(err)
	}

	if res.After != 1 {
		t.Errorf("After = %d, want 1", res.After)
	}
}
