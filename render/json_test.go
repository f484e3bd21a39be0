package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/revelaction/saccade/feature"
)

func TestJSONRendererRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	r.Render(nil)

	var rows []feature.Row
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(rows) != 0 {
		t.Fatalf("expected 0 rows, got %d", len(rows))
	}
}

func TestJSONRendererRenderOneRow(t *testing.T) {
	row := feature.Row{
		Subject:          "s01",
		Item:             "wont",
		AoiIndex:         1,
		AoiText:          "won't",
		Aligned:          true,
		TokenId:          1,
		Pos:              "AUX",
		DepDistance:      2,
		DepDepth:         1,
		TotalReadingTime: 480,
	}

	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	r.Render([]feature.Row{row})

	var rows []feature.Row
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	if rows[0].Subject != "s01" {
		t.Errorf("expected subject 's01', got %q", rows[0].Subject)
	}

	if rows[0].AoiText != "won't" {
		t.Errorf("expected aoi_text \"won't\", got %q", rows[0].AoiText)
	}

	if rows[0].DepDistance != 2 || rows[0].DepDepth != 1 {
		t.Errorf("predictors did not round-trip: %+v", rows[0])
	}
}
