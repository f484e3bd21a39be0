package filesystem

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/revelaction/saccade/storage"
	"github.com/revelaction/saccade/trial"
)

type TrialStore struct {
	root string
}

var _ storage.TrialReader = (*TrialStore)(nil)

func NewTrialStore(root string) *TrialStore {
	return &TrialStore{root: root}
}

func (ts *TrialStore) List() ([]string, error) {
	files, err := os.ReadDir(ts.root)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, file := range files {
		if filepath.Ext(file.Name()) != ".json" {
			continue
		}

		names = append(names, strings.TrimSuffix(file.Name(), filepath.Ext(file.Name())))
	}

	return names, nil
}

func (ts *TrialStore) Read(name string) (trial.Trial, error) {
	data, err := os.ReadFile(filepath.Join(ts.root, name+".json"))
	if err != nil {
		return trial.Trial{}, err
	}

	var tr trial.Trial
	if err := json.Unmarshal(data, &tr); err != nil {
		return trial.Trial{}, err
	}

	return tr, nil
}
