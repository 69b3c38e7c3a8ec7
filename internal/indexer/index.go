package indexer

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/MarbleSodas/godoty-docs/pkg/types"
)

// BM25 parameters.
const (
	k1 = 1.5
	b  = 0.75
)

// Posting records one document containing a term.
type Posting struct {
	DocID     int `json:"doc_id"`
	Frequency int `json:"frequency"`
}

// PostingList is the per-term list of postings, ordered by ascending DocID.
type PostingList []Posting

// Stats holds corpus-level statistics used by the ranking function.
type Stats struct {
	DocCount     int     `json:"doc_count"`
	AvgDocLength float64 `json:"avg_doc_length"`
}

// MemoryIndex is the built ranking structure. It is immutable after Build:
// no locking is needed because no writer exists once warm-up completes.
type MemoryIndex struct {
	// Terms maps a token to the documents containing it.
	Terms map[string]PostingList `json:"terms"`
	// Entries maps a document id to its entry; ids are slice positions.
	Entries []types.DocEntry `json:"entries"`
	// Qualified maps "Class.member" to a document id (first wins).
	Qualified map[string]int `json:"qualified"`
	// ClassEntries maps a class name to the ids of its class entry and all
	// of its member entries.
	ClassEntries map[string][]int `json:"class_entries"`
	// Classes holds the full documentation record per class name.
	Classes map[string]types.ClassDoc `json:"classes"`
	// DocLengths maps a document id to its token count, floored at 1.
	DocLengths []int `json:"doc_lengths"`
	Stats      Stats `json:"stats"`
}

// Build constructs a MemoryIndex from parsed class documents. Per class it
// registers one class-kind entry followed by one member-kind entry per
// method, property, signal, and constant, assigning sequential ids.
func Build(classes []types.ClassDoc) *MemoryIndex {
	idx := &MemoryIndex{
		Terms:        make(map[string]PostingList),
		Entries:      make([]types.DocEntry, 0, len(classes)),
		Qualified:    make(map[string]int),
		ClassEntries: make(map[string][]int, len(classes)),
		Classes:      make(map[string]types.ClassDoc, len(classes)),
	}

	totalLength := 0
	for ci := range classes {
		class := classes[ci]
		class.Normalize()
		idx.Classes[class.Name] = class

		classTokens := append(TokenizeName(class.Name),
			TokenizeText(class.Brief+" "+class.Description)...)
		classID := idx.register(types.DocEntry{
			Kind:        types.KindClass,
			Name:        class.Name,
			Brief:       class.Brief,
			Description: class.Description,
		}, classTokens, &totalLength)
		idx.ClassEntries[class.Name] = append(idx.ClassEntries[class.Name], classID)

		for _, m := range class.Methods {
			idx.registerMember(class.Name, types.KindMethod, m.Name, m.Description, &totalLength)
		}
		for _, p := range class.Properties {
			idx.registerMember(class.Name, types.KindProperty, p.Name, p.Description, &totalLength)
		}
		for _, s := range class.Signals {
			idx.registerMember(class.Name, types.KindSignal, s.Name, s.Description, &totalLength)
		}
		for _, c := range class.Constants {
			idx.registerMember(class.Name, types.KindConstant, c.Name, c.Description, &totalLength)
		}
	}

	idx.Stats.DocCount = len(idx.Entries)
	if idx.Stats.DocCount > 0 {
		idx.Stats.AvgDocLength = float64(totalLength) / float64(idx.Stats.DocCount)
	}
	return idx
}

func (m *MemoryIndex) registerMember(class string, kind types.EntryKind, name, description string, totalLength *int) {
	tokens := append(TokenizeName(name), TokenizeText(description)...)
	id := m.register(types.DocEntry{
		Kind:        kind,
		Name:        name,
		ClassName:   class,
		Description: description,
	}, tokens, totalLength)

	m.ClassEntries[class] = append(m.ClassEntries[class], id)
	qualified := class + "." + name
	if _, exists := m.Qualified[qualified]; !exists {
		m.Qualified[qualified] = id
	}
}

func (m *MemoryIndex) register(entry types.DocEntry, tokens []string, totalLength *int) int {
	id := len(m.Entries)
	entry.ID = id
	m.Entries = append(m.Entries, entry)

	freq := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		freq[tok]++
	}
	// Terms sorted before appending keeps posting construction deterministic
	// across builds; DocID order within a list follows registration order.
	terms := make([]string, 0, len(freq))
	for term := range freq {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	for _, term := range terms {
		m.Terms[term] = append(m.Terms[term], Posting{DocID: id, Frequency: freq[term]})
	}

	length := len(tokens)
	if length < 1 {
		length = 1
	}
	m.DocLengths = append(m.DocLengths, length)
	*totalLength += length
	return id
}

// ScoreQuery computes per-document BM25 scores for the given query tokens.
// Documents containing none of the tokens get no entry in the result.
func (m *MemoryIndex) ScoreQuery(tokens []string) map[int]float64 {
	scores := make(map[int]float64)
	for _, token := range tokens {
		postings, ok := m.Terms[token]
		if !ok {
			continue
		}
		idf := computeIDF(m.Stats.DocCount, len(postings))
		for _, posting := range postings {
			tfNorm := computeTFNorm(float64(posting.Frequency),
				float64(m.DocLengths[posting.DocID]), m.Stats.AvgDocLength)
			scores[posting.DocID] += idf * tfNorm
		}
	}
	return scores
}

func computeIDF(totalDocs, docFreq int) float64 {
	numerator := float64(totalDocs) - float64(docFreq) + 0.5
	denominator := float64(docFreq) + 0.5
	return math.Log(1 + numerator/denominator)
}

func computeTFNorm(termFreq, docLength, avgDocLength float64) float64 {
	if avgDocLength == 0 {
		return 0
	}
	lengthRatio := docLength / avgDocLength
	return (termFreq * (k1 + 1)) / (termFreq + k1*(1-b+b*lengthRatio))
}

// Entry returns the document entry for an id.
func (m *MemoryIndex) Entry(id int) (*types.DocEntry, bool) {
	if id < 0 || id >= len(m.Entries) {
		return nil, false
	}
	return &m.Entries[id], true
}

// Class returns the full documentation record for a class name.
func (m *MemoryIndex) Class(name string) (*types.ClassDoc, bool) {
	doc, ok := m.Classes[name]
	if !ok {
		return nil, false
	}
	return &doc, true
}

// ClassNames returns all class names in sorted order.
func (m *MemoryIndex) ClassNames() []string {
	names := make([]string, 0, len(m.Classes))
	for name := range m.Classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks index well-formedness: every id referenced from any
// lookup table must exist in the entry table, entry ids must match their
// positions, and statistics must agree with the tables.
func (m *MemoryIndex) Validate() error {
	n := len(m.Entries)
	if len(m.DocLengths) != n {
		return fmt.Errorf("doc length table has %d entries, want %d", len(m.DocLengths), n)
	}
	if m.Stats.DocCount != n {
		return fmt.Errorf("stats report %d documents, entry table has %d", m.Stats.DocCount, n)
	}
	for i := range m.Entries {
		if m.Entries[i].ID != i {
			return fmt.Errorf("entry at position %d carries id %d", i, m.Entries[i].ID)
		}
		if err := m.Entries[i].Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	for term, postings := range m.Terms {
		for _, p := range postings {
			if p.DocID < 0 || p.DocID >= n {
				return fmt.Errorf("term %q references unknown document %d", term, p.DocID)
			}
			if p.Frequency < 1 {
				return fmt.Errorf("term %q has non-positive frequency for document %d", term, p.DocID)
			}
		}
	}
	for qualified, id := range m.Qualified {
		if id < 0 || id >= n {
			return fmt.Errorf("qualified name %q references unknown document %d", qualified, id)
		}
		if !strings.Contains(qualified, ".") {
			return fmt.Errorf("qualified name %q is missing its class scope", qualified)
		}
	}
	for class, ids := range m.ClassEntries {
		if _, ok := m.Classes[class]; !ok {
			return fmt.Errorf("class entry table references unknown class %q", class)
		}
		for _, id := range ids {
			if id < 0 || id >= n {
				return fmt.Errorf("class %q references unknown document %d", class, id)
			}
		}
	}
	return nil
}
