package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/revelaction/saccade/align"
)

func TestAlignmentText(t *testing.T) {
	aoiTokens := []string{"won't", "zzz"}
	docTokens := []string{"wo", "n't"}

	a := align.New()
	mapping := a.Align(aoiTokens, docTokens)

	var buf bytes.Buffer
	r := NewRenderer()
	r.Out = &buf
	r.Alignment(a, aoiTokens, docTokens, mapping)

	out := buf.String()
	if !strings.Contains(out, `"wo" "n't"`) {
		t.Errorf("window not rendered: %s", out)
	}
	if !strings.Contains(out, "unmatched") {
		t.Errorf("unmatched marker missing: %s", out)
	}
}

func TestAlignmentFormatAligned(t *testing.T) {
	aoiTokens := []string{"zzz"}
	docTokens := []string{"He"}

	a := align.New()
	mapping := a.Align(aoiTokens, docTokens)

	var buf bytes.Buffer
	r := NewRenderer()
	r.Out = &buf
	r.Format = "aligned"
	r.Alignment(a, aoiTokens, docTokens, mapping)

	if buf.Len() != 0 {
		t.Errorf("aligned format printed unmatched rows: %s", buf.String())
	}
}

func TestAlignmentJSON(t *testing.T) {
	aoiTokens := []string{"won't", "."}
	docTokens := []string{"wo", "n't", "."}

	a := align.New()
	mapping := a.Align(aoiTokens, docTokens)

	var buf bytes.Buffer
	r := NewRenderer()
	r.Out = &buf
	r.Format = "json"
	r.Alignment(a, aoiTokens, docTokens, mapping)

	var entries []AlignmentEntry
	if err := json.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	if entries[0].TokenId != 0 || len(entries[0].Window) != 2 {
		t.Errorf("won't entry = %+v", entries[0])
	}
	if entries[1].TokenId != 2 {
		t.Errorf(". entry = %+v", entries[1])
	}
}

func TestNextFormat(t *testing.T) {
	r := NewRenderer()

	seen := map[string]bool{}
	for range SupportedFormats() {
		seen[r.Format] = true
		r.NextFormat()
	}

	if r.Format != Defaultformat {
		t.Errorf("formats did not cycle back, got %q", r.Format)
	}
	for _, f := range SupportedFormats() {
		if !seen[f] {
			t.Errorf("format %q never reached", f)
		}
	}
}
