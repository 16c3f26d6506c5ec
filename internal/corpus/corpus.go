package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/drakos74/stylo/internal/metrics"
	"github.com/drakos74/stylo/internal/model"
	"github.com/drakos74/stylo/internal/text"
	"github.com/rs/zerolog/log"
)

// Extension is the suffix of the source files picked up by Load.
const Extension = ".txt"

// Source is a raw text together with the author and title derived from its file name.
type Source struct {
	Path   string
	Author model.Label
	Title  string
}

// ParseName derives the author and the title from a file name.
// The author is the first character of the stem, the title the second
// underscore separated part of it e.g. "h_hamlet_1603.txt" -> ("h", "hamlet").
// A stem without underscores is its own title.
func ParseName(name string) (model.Label, string, error) {
	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if stem == "" {
		return "", "", fmt.Errorf("no author in file name '%s': %w", name, model.ConfigurationErr)
	}
	r, _ := utf8.DecodeRuneInString(stem)
	author := model.Label(string(r))

	title := stem
	if parts := strings.Split(stem, "_"); len(parts) > 1 && parts[1] != "" {
		title = parts[1]
	}
	return author, title, nil
}

// Scan lists the source files under dir, sorted by path.
// Hidden files and directories are skipped.
func Scan(dir string) ([]Source, error) {
	sources := make([]Source, 0)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path != dir && strings.HasPrefix(info.Name(), ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() || filepath.Ext(info.Name()) != Extension {
			return nil
		}
		author, title, err := ParseName(info.Name())
		if err != nil {
			return err
		}
		sources = append(sources, Source{
			Path:   path,
			Author: author,
			Title:  title,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not scan '%s': %w", dir, err)
	}
	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Path < sources[j].Path
	})
	return sources, nil
}

// Load reads every source file under dir and segments it into documents of chunkLength tokens.
func Load(dir string, chunkLength int) (model.Corpus, error) {
	sources, err := Scan(dir)
	if err != nil {
		return model.Corpus{}, err
	}

	c := model.NewCorpus()
	for _, source := range sources {
		data, err := os.ReadFile(source.Path)
		if err != nil {
			return model.Corpus{}, fmt.Errorf("could not read '%s': %w", source.Path, err)
		}
		docs, err := text.Segment(string(data), source.Author, source.Title, chunkLength)
		if err != nil {
			return model.Corpus{}, fmt.Errorf("could not segment '%s': %w", source.Path, err)
		}
		if len(docs) == 0 {
			log.Warn().
				Str("file", source.Path).
				Str("author", string(source.Author)).
				Int("chunk", chunkLength).
				Msg("source shorter than one chunk")
		}
		for _, doc := range docs {
			metrics.Observer.Document(string(doc.Author))
		}
		c.Add(docs...)
	}

	log.Info().
		Str("dir", dir).
		Int("files", len(sources)).
		Int("documents", c.Size()).
		Int("authors", len(c.Authors())).
		Msg("loaded corpus")
	return c, nil
}
