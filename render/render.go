package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/revelaction/saccade/align"
	"github.com/revelaction/saccade/feature"
	sent "github.com/revelaction/saccade/sentence"
	"github.com/revelaction/saccade/syntax"
)

const Defaultformat = "all"

var (
	Red    = "\033[1;31m"
	Green  = "\033[1;32m"
	Yellow = "\033[0;33m"
	Gray   = "\033[0;37m"
	Off    = "\033[0m"
)

func SupportedFormats() []string {
	return []string{"all", "aligned", "json"}
}

type Renderer struct {
	HasColor bool

	// Format determines the output of alignment results
	//
	// all: every AOI token with its aligned window (unmatched marked)
	// aligned: only the aligned pairs
	// json: feature rows as a JSON array
	Format string

	Out io.Writer
}

func NewRenderer() *Renderer {
	return &Renderer{Format: Defaultformat, Out: os.Stdout}
}

// NextFormat cycles the output format. Used by the query REPL key
// binding.
func (r *Renderer) NextFormat() {
	formats := SupportedFormats()
	for i, f := range formats {
		if f == r.Format {
			r.Format = formats[(i+1)%len(formats)]
			return
		}
	}

	r.Format = Defaultformat
}

// AlignmentEntry is the JSON shape of one aligned AOI token.
type AlignmentEntry struct {
	AoiText string   `json:"aoi_text"`
	TokenId int      `json:"token_id"`
	Window  []string `json:"window,omitempty"`
}

// Alignment prints one AOI token per line with the pipeline window it
// aligned to.
func (r *Renderer) Alignment(a *align.Aligner, aoiTokens []string, docTokens []string, mapping align.Mapping) {
	if r.Format == "json" {
		entries := make([]AlignmentEntry, 0, len(aoiTokens))
		for i, aoiTok := range aoiTokens {
			e := AlignmentEntry{AoiText: aoiTok, TokenId: mapping[i]}
			if idx := mapping[i]; idx != align.Unaligned {
				w := a.WindowWidth(aoiTok, docTokens, idx)
				e.Window = docTokens[idx : idx+w]
			}
			entries = append(entries, e)
		}

		json.NewEncoder(r.Out).Encode(entries)
		return
	}

	for i, aoiTok := range aoiTokens {
		idx := mapping[i]

		if idx == align.Unaligned {
			if r.Format == "aligned" {
				continue
			}
			fmt.Fprintf(r.Out, "%20q %s\n", aoiTok, r.color("∅ unmatched", Red))
			continue
		}

		w := a.WindowWidth(aoiTok, docTokens, idx)
		parts := []string{}
		for _, t := range docTokens[idx : idx+w] {
			parts = append(parts, fmt.Sprintf("%q", t))
		}

		fmt.Fprintf(r.Out, "%20q %s %s\n", aoiTok, r.color("→", Gray), r.color(strings.Join(parts, " "), Green))
	}
}

// Sentence prints the tokens of one sentence with their dependency
// metrics, one per line.
func (r *Renderer) Sentence(tree *syntax.Tree, span sent.Span, prefix string) {
	fmt.Fprintf(r.Out, "%s%20s %8s %6s %6s %6s %6s %s\n", prefix, "text", "pos", "head", "dist", "depth", "punct", "dep")
	for i := span.Start; i < span.End; i++ {
		tok := tree.Token(i)
		fmt.Fprintf(r.Out, "%s%20q %8s %6d %6d %6d %6t %s\n",
			prefix, tok.Text, tok.Pos, tok.Head, tree.Distance(i), tree.Depth(i), syntax.IsPunctuation(tok), tok.Dep)
	}
}

// Rows prints feature rows in the configured format.
func (r *Renderer) Rows(rows []feature.Row) {
	if r.Format == "json" {
		NewJSONRenderer(r.Out).Render(rows)
		return
	}

	for _, row := range rows {
		if !row.Aligned {
			if r.Format == "aligned" {
				continue
			}
			fmt.Fprintf(r.Out, "%20q %s\n", row.AoiText, r.color("∅ unmatched", Red))
			continue
		}

		fmt.Fprintf(r.Out, "%20q %8s %6d %6d %6t %8.0f\n",
			row.AoiText, row.Pos, row.DepDistance, row.DepDepth, row.IsPunct, row.TotalReadingTime)
	}
}

func (r *Renderer) color(s, color string) string {
	if !r.HasColor {
		return s
	}

	return color + s + Off
}
