package app

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/corey/docwiki/internal/adapters/ahocorasick"
	"github.com/corey/docwiki/internal/domain/comment"
	"github.com/corey/docwiki/internal/domain/search"
	"github.com/corey/docwiki/internal/domain/wiki"
	"github.com/corey/docwiki/internal/ports"
)

// Hit is one search result: where the doc lives and its short summary.
type Hit struct {
	File  string
	Line  int
	Short string
	Score int
}

// Search tokenizes the query, compiles a keyword automaton, and ranks
// stored docs by how many distinct tokens their flattened text contains.
// Each distinct token scores 2 if found in the short summary plus 1 if
// found in the body.
func Search(storage ports.Storage, projectID, query string) ([]Hit, error) {
	tokens := search.Tokenize(query)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("query %q has no searchable tokens", query)
	}

	var matcher ahocorasick.Matcher
	matcher.Build(tokens)

	recs, err := storage.LoadDocs(projectID)
	if err != nil {
		return nil, fmt.Errorf("load docs: %w", err)
	}

	var hits []Hit
	for _, rec := range recs {
		var doc comment.Comment
		if err := json.Unmarshal(rec.Data, &doc); err != nil {
			return nil, fmt.Errorf("decode doc %s:%d: %w", rec.File, rec.Line, err)
		}

		short := ""
		if doc.Short != nil {
			short = wiki.FlattenInline(doc.Short)
		}
		body := wiki.FlattenBody(doc.Body)

		score := 2*matcher.MatchCount(strings.ToLower(short)) +
			matcher.MatchCount(strings.ToLower(body))
		if score == 0 {
			continue
		}
		hits = append(hits, Hit{File: rec.File, Line: rec.Line, Short: short, Score: score})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		if hits[i].File != hits[j].File {
			return hits[i].File < hits[j].File
		}
		return hits[i].Line < hits[j].Line
	})
	return hits, nil
}
