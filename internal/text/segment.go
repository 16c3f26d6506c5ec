package text

import (
	"fmt"

	"github.com/drakos74/stylo/internal/model"
)

// Segment splits the source into consecutive, non-overlapping documents of exactly chunkLength tokens.
// A trailing chunk shorter than chunkLength is dropped, so a short source yields no documents at all.
// Titles are suffixed with a 1-based counter e.g. "title-1", "title-2".
func Segment(source string, author model.Label, title string, chunkLength int) ([]model.Document, error) {
	if chunkLength <= 0 {
		return nil, fmt.Errorf("chunk length must be positive, got %d: %w", chunkLength, model.ConfigurationErr)
	}

	tokens := Fields(source)
	docs := make([]model.Document, 0, len(tokens)/chunkLength)
	for start := 0; start+chunkLength <= len(tokens); start += chunkLength {
		chunk := make([]string, chunkLength)
		copy(chunk, tokens[start:start+chunkLength])
		docs = append(docs, model.Document{
			Tokens: chunk,
			Author: author,
			Title:  fmt.Sprintf("%s-%d", title, len(docs)+1),
		})
	}
	return docs, nil
}
