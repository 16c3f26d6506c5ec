package model

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Label identifies the author of a document.
type Label string

// Document is a fixed-length chunk of lowercase tokens taken from a source text.
type Document struct {
	Tokens []string `json:"tokens"`
	Author Label    `json:"author"`
	Title  string   `json:"title"`
}

// Text joins the document tokens back into a single string.
func (d Document) Text() string {
	return strings.Join(d.Tokens, " ")
}

// Len returns the number of tokens in the document.
func (d Document) Len() int {
	return len(d.Tokens)
}

// Corpus is an ordered collection of labelled documents.
// Labels and Titles are parallel to Documents.
type Corpus struct {
	Documents []Document `json:"documents"`
}

// NewCorpus creates a corpus from the given documents.
func NewCorpus(docs ...Document) Corpus {
	c := Corpus{Documents: make([]Document, 0, len(docs))}
	c.Add(docs...)
	return c
}

// Add appends documents to the corpus.
func (c *Corpus) Add(docs ...Document) {
	c.Documents = append(c.Documents, docs...)
}

// Size returns the number of documents.
func (c Corpus) Size() int {
	return len(c.Documents)
}

// Labels returns the author label of each document.
func (c Corpus) Labels() []Label {
	return lo.Map(c.Documents, func(d Document, _ int) Label {
		return d.Author
	})
}

// Titles returns the title of each document.
func (c Corpus) Titles() []string {
	return lo.Map(c.Documents, func(d Document, _ int) string {
		return d.Title
	})
}

// Authors returns the distinct labels of the corpus in sorted order.
func (c Corpus) Authors() []Label {
	authors := lo.Uniq(c.Labels())
	sort.Slice(authors, func(i, j int) bool {
		return authors[i] < authors[j]
	})
	return authors
}
