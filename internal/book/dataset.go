package book

import (
	_ "embed"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
)

//go:embed books.json
var defaultDataset []byte

type dataset struct {
	Books []Book `json:"books"`
}

// DefaultBooks returns the catalog shipped with the binary.
func DefaultBooks() ([]Book, error) {
	return decodeDataset(defaultDataset)
}

// LoadBooks reads a dataset file with the same shape as books.json. An
// empty path selects the embedded catalog.
func LoadBooks(path string) ([]Book, error) {
	if path == "" {
		return DefaultBooks()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return decodeDataset(raw)
}

func decodeDataset(raw []byte) ([]Book, error) {
	var ds dataset
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return ds.Books, nil
}
