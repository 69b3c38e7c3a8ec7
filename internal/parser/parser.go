package parser

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MarbleSodas/godoty-docs/pkg/types"
)

// DefaultYieldEvery is the number of files parsed between cooperative
// cancellation checks during a corpus parse.
const DefaultYieldEvery = 25

// Parser reads structured class-documentation files into ClassDoc records.
type Parser struct {
	// YieldEvery controls how often ParseCorpus checks for cancellation.
	YieldEvery int
}

// New creates a Parser with default settings.
func New() *Parser {
	return &Parser{YieldEvery: DefaultYieldEvery}
}

// xmlClass mirrors the on-disk shape: one XML document per class.
type xmlClass struct {
	Name        string        `xml:"name,attr"`
	Inherits    string        `xml:"inherits,attr"`
	Brief       string        `xml:"brief_description"`
	Description string        `xml:"description"`
	Methods     []xmlMethod   `xml:"methods>method"`
	Members     []xmlMember   `xml:"members>member"`
	Signals     []xmlSignal   `xml:"signals>signal"`
	Constants   []xmlConstant `xml:"constants>constant"`
}

type xmlMethod struct {
	Name        string     `xml:"name,attr"`
	Qualifiers  string     `xml:"qualifiers,attr"`
	Return      *xmlReturn `xml:"return"`
	Params      []xmlParam `xml:"param"`
	Description string     `xml:"description"`
}

type xmlReturn struct {
	Type string `xml:"type,attr"`
}

type xmlParam struct {
	Name    string `xml:"name,attr"`
	Type    string `xml:"type,attr"`
	Default string `xml:"default,attr"`
}

type xmlMember struct {
	Name    string `xml:"name,attr"`
	Type    string `xml:"type,attr"`
	Default string `xml:"default,attr"`
	Text    string `xml:",chardata"`
}

type xmlSignal struct {
	Name        string     `xml:"name,attr"`
	Params      []xmlParam `xml:"param"`
	Description string     `xml:"description"`
}

type xmlConstant struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
	Text  string `xml:",chardata"`
}

// ParseCorpus parses every class file under dir (one .xml file per class)
// and returns the resulting documents in file-name order.
//
// A malformed file aborts the whole batch: silently skipping a bad file
// would produce a misleadingly incomplete corpus and bogus "class not
// found" answers downstream. The returned error names the offending file.
func (p *Parser) ParseCorpus(ctx context.Context, dir string) ([]types.ClassDoc, error) {
	pattern := filepath.Join(dir, "*.xml")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, types.NewInvalidConfig("invalid corpus pattern %s: %v", pattern, err)
	}
	if len(files) == 0 {
		return nil, types.NewInvalidConfig("no class files found under %s", dir)
	}
	sort.Strings(files)

	yieldEvery := p.YieldEvery
	if yieldEvery < 1 {
		yieldEvery = DefaultYieldEvery
	}

	docs := make([]types.ClassDoc, 0, len(files))
	for i, file := range files {
		// Periodic cancellation check so a large corpus parse cannot
		// starve the transport during warm-up.
		if i%yieldEvery == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		doc, err := p.ParseFile(file)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}

	return docs, nil
}

// ParseFile parses a single class-documentation file.
func (p *Parser) ParseFile(path string) (*types.ClassDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.NewParseError(filepath.Base(path), err)
	}

	var raw xmlClass
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, types.NewParseError(filepath.Base(path), err)
	}

	if raw.Name == "" {
		return nil, types.NewParseError(filepath.Base(path),
			fmt.Errorf("class element has no name attribute"))
	}

	doc := &types.ClassDoc{
		Name:        raw.Name,
		Inherits:    raw.Inherits,
		Brief:       clean(raw.Brief),
		Description: clean(raw.Description),
		Methods:     make([]types.Method, 0, len(raw.Methods)),
		Properties:  make([]types.Property, 0, len(raw.Members)),
		Signals:     make([]types.Signal, 0, len(raw.Signals)),
		Constants:   make([]types.Constant, 0, len(raw.Constants)),
	}

	for _, m := range raw.Methods {
		if m.Name == "" {
			continue
		}
		method := types.Method{
			Name:        m.Name,
			Description: clean(m.Description),
			Args:        convertParams(m.Params),
			Qualifiers:  splitQualifiers(m.Qualifiers),
		}
		if m.Return != nil {
			method.ReturnType = m.Return.Type
		}
		doc.Methods = append(doc.Methods, method)
	}

	for _, m := range raw.Members {
		if m.Name == "" {
			continue
		}
		doc.Properties = append(doc.Properties, types.Property{
			Name:        m.Name,
			Type:        m.Type,
			Default:     m.Default,
			Description: clean(m.Text),
		})
	}

	for _, s := range raw.Signals {
		if s.Name == "" {
			continue
		}
		doc.Signals = append(doc.Signals, types.Signal{
			Name:        s.Name,
			Description: clean(s.Description),
			Args:        convertParams(s.Params),
		})
	}

	for _, c := range raw.Constants {
		if c.Name == "" {
			continue
		}
		doc.Constants = append(doc.Constants, types.Constant{
			Name:        c.Name,
			Value:       c.Value,
			Description: clean(c.Text),
		})
	}

	doc.Normalize()
	return doc, nil
}

func convertParams(params []xmlParam) []types.Argument {
	args := make([]types.Argument, 0, len(params))
	for _, p := range params {
		if p.Name == "" {
			continue
		}
		args = append(args, types.Argument{Name: p.Name, Type: p.Type, Default: p.Default})
	}
	return args
}

func splitQualifiers(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	return strings.Fields(s)
}

func clean(s string) string {
	return strings.TrimSpace(s)
}
