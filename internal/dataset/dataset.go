// Package dataset holds the phrase records and language metadata compiled
// into the binary.
package dataset

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/emiliopalmerini/polyglot/internal/domain"
)

//go:embed phrases.yaml
var seed []byte

// Dataset is the immutable data source shared by every renderer.
// Records must not be modified after Load returns.
type Dataset struct {
	Records   []domain.PhraseRecord
	Languages domain.Catalog
}

type document struct {
	Languages []domain.Language     `yaml:"languages"`
	Phrases   []domain.PhraseRecord `yaml:"phrases"`
}

// Load decodes the embedded seed.
func Load() (*Dataset, error) {
	return Parse(seed)
}

// Parse decodes a dataset document and validates its language metadata.
func Parse(data []byte) (*Dataset, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	catalog := domain.NewCatalog(doc.Languages...)
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("validate languages: %w", err)
	}

	records := doc.Phrases
	if records == nil {
		records = []domain.PhraseRecord{}
	}
	return &Dataset{Records: records, Languages: catalog}, nil
}

// UnknownCodes lists record codes without catalog metadata. They render with
// the fallback label and color.
func (d *Dataset) UnknownCodes() []string {
	return d.Languages.UnknownCodes(d.Records)
}
