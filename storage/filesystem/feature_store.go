package filesystem

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/revelaction/saccade/align"
	"github.com/revelaction/saccade/feature"
	"github.com/revelaction/saccade/storage"
)

// featureHeader is the column contract of the per-word table. The
// total_reading_time column is what the trt post-processing filters.
var featureHeader = []string{
	"subject",
	"item",
	"doc_id",
	"aoi_index",
	"aoi_text",
	"token_id",
	"pos",
	"dep",
	"dep_distance",
	"dep_depth",
	"is_punct",
	"total_reading_time",
}

// FeatureStore appends extracted feature rows to one CSV table.
type FeatureStore struct {
	file *os.File
	w    *csv.Writer
}

var _ storage.FeatureWriter = (*FeatureStore)(nil)

// NewFeatureStore creates (or truncates) the CSV table at path and
// writes the header.
func NewFeatureStore(path string) (*FeatureStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(file)
	if err := w.Write(featureHeader); err != nil {
		file.Close()
		return nil, err
	}

	return &FeatureStore{file: file, w: w}, nil
}

func (fs *FeatureStore) Write(rows []feature.Row) error {
	for _, row := range rows {
		rec := []string{
			row.Subject,
			row.Item,
			strconv.Itoa(row.DocId),
			strconv.Itoa(row.AoiIndex),
			row.AoiText,
			tokenId(row),
			row.Pos,
			row.Dep,
			strconv.Itoa(row.DepDistance),
			strconv.Itoa(row.DepDepth),
			strconv.FormatBool(row.IsPunct),
			strconv.FormatFloat(row.TotalReadingTime, 'f', -1, 64),
		}

		if err := fs.w.Write(rec); err != nil {
			return err
		}
	}

	fs.w.Flush()
	return fs.w.Error()
}

func (fs *FeatureStore) Close() error {
	fs.w.Flush()
	if err := fs.w.Error(); err != nil {
		fs.file.Close()
		return err
	}

	return fs.file.Close()
}

// tokenId renders an unaligned row with an empty token id: missing
// predictor, not a value.
func tokenId(row feature.Row) string {
	if row.TokenId == align.Unaligned {
		return ""
	}

	return strconv.Itoa(row.TokenId)
}
