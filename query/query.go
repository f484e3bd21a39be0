// Package query is the interactive alignment explorer: type AOI
// tokens against a chosen doc and see the resulting mapping live.
package query

import (
	"fmt"
	"strings"

	"github.com/revelaction/saccade/align"
	"github.com/revelaction/saccade/render"
	sent "github.com/revelaction/saccade/sentence"
	"github.com/revelaction/saccade/storage"

	prompt "github.com/c-bata/go-prompt"
)

const (
	completionThreshold = 2

	// docPrefix is the character in the prompt that prefixes a doc
	// selection
	docPrefix = "/"
)

type Handler struct {
	DocRepo  storage.DocReader
	Aligner  *align.Aligner
	Renderer *render.Renderer

	// current doc the AOI input is aligned against
	doc sent.Doc
}

func NewHandler(dr storage.DocReader, a *align.Aligner, r *render.Renderer) *Handler {
	return &Handler{
		DocRepo:  dr,
		Aligner:  a,
		Renderer: r,
	}
}

func (h *Handler) Run() error {

	fmt.Println("🔑 /<doc>: select doc, Ctrl+F: next Format, 🔧 quit")

	docs, err := h.DocRepo.List()
	if err != nil {
		return err
	}

	if len(docs) > 0 {
		if err := h.selectDoc(docs[0].Id); err != nil {
			return err
		}
	}

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      👁  ", h.completer(docs),
			prompt.OptionTitle("saccade query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Println("Format set to: " + h.Renderer.Format)
				}}),
		)

		if in == "quit" {
			return nil
		}

		if strings.TrimSpace(in) == "" {
			continue
		}

		history = append(history, in)

		if strings.HasPrefix(in, docPrefix) {
			if err := h.selectDocByTitle(docs, strings.TrimPrefix(in, docPrefix)); err != nil {
				fmt.Printf("❌ %s\n", err)
			}
			continue
		}

		aoiTokens := strings.Fields(in)
		docTokens := h.doc.Texts()

		mapping := h.Aligner.Align(aoiTokens, docTokens)
		h.Renderer.Alignment(h.Aligner, aoiTokens, docTokens, mapping)
		fmt.Printf("      aligned %d/%d\n", mapping.NumAligned(), len(mapping))
	}
}

func (h *Handler) selectDoc(id int) error {
	doc, err := h.DocRepo.Read(id)
	if err != nil {
		return err
	}

	doc.Id = id
	h.doc = doc
	fmt.Printf("📖 %d %s\n", doc.Id, doc.Title)

	return nil
}

func (h *Handler) selectDocByTitle(docs []sent.Doc, title string) error {
	for _, d := range docs {
		if strings.Contains(d.Title, title) {
			return h.selectDoc(d.Id)
		}
	}

	return fmt.Errorf("no doc matches %q", title)
}

func (h *Handler) completer(docs []sent.Doc) prompt.Completer {
	return func(d prompt.Document) []prompt.Suggest {
		word := d.GetWordBeforeCursor()

		if !strings.HasPrefix(word, docPrefix) {
			return nil
		}

		if len(word) < completionThreshold {
			return nil
		}

		suggests := []prompt.Suggest{}
		for _, doc := range docs {
			suggests = append(suggests, prompt.Suggest{
				Text:        docPrefix + doc.Title,
				Description: fmt.Sprintf("doc %d", doc.Id),
			})
		}

		return prompt.FilterContains(suggests, word, true)
	}
}
