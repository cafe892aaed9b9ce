package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/IMSLEPT/quizlo/internal/parse"
)

// File is the on-disk shape of the optional noise-vocabulary override. Any
// field left empty keeps its built-in default.
type File struct {
	HeaderPrefixes       []string `yaml:"headerPrefixes"`
	ProvenanceSubstrings []string `yaml:"provenanceSubstrings"`
	PageLabelPattern     string   `yaml:"pageLabelPattern"`
}

// Load reads the noise vocabulary from path. A missing file yields the
// built-in defaults; an unreadable or malformed file is an error.
func Load(path string) (parse.Vocabulary, error) {
	vocab := parse.DefaultVocabulary()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return vocab, nil
		}
		return vocab, fmt.Errorf("read config %q: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	var file File
	if err := decoder.Decode(&file); err != nil {
		return vocab, fmt.Errorf("parse config %q: %w", path, err)
	}

	if len(file.HeaderPrefixes) > 0 {
		vocab.HeaderPrefixes = file.HeaderPrefixes
	}
	if len(file.ProvenanceSubstrings) > 0 {
		vocab.ProvenanceSubstrings = file.ProvenanceSubstrings
	}
	if file.PageLabelPattern != "" {
		pattern, err := regexp.Compile(file.PageLabelPattern)
		if err != nil {
			return vocab, fmt.Errorf("invalid pageLabelPattern in %q: %w", path, err)
		}
		vocab.PageLabelPattern = pattern
	}

	return vocab, nil
}
