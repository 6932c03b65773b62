package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// CurrentVersion is the version of the body schema accepted by NewPseudoAST.
const CurrentVersion int32 = 1

// PseudoAST implements Schema interface and used to parse and render simple,
// block/section based post body content schema.
//
// Pseudo-AST stands for Pseudo Abstract Syntax Tree. It's a simplified post body schema, designed to be client/editor-agnostic.
type PseudoAST struct {
	version  int32
	sections []Section
}

func NewPseudoAST() *PseudoAST {
	return &PseudoAST{version: CurrentVersion}
}

func (s *PseudoAST) Name() string {
	return "pseudo-ast"
}

func (s *PseudoAST) Version() int32 {
	return s.version
}

// Sections returns the sections saved by the last successful Parse.
func (s *PseudoAST) Sections() []Section {
	return s.sections
}

// these unexported DTOs must have exported fields and json name tags
// to ensure encoding/json will parse raw data into these structs
type rawSchema struct {
	Version  int32        `json:"version"`
	Sections []rawSection `json:"sections"`
}

type rawSection struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Kind    Kind      `json:"kind"`
	Content []RawItem `json:"content"`
}

// Parse transforms raw json into PseudoAST with raw content items,
// parses them as specific content items, saves the tree internally
// and returns new marshaled tree as json.
func (s *PseudoAST) Parse(body []byte) ([]byte, error) {

	// 1) parse raw json
	var rawParsed rawSchema
	if err := json.Unmarshal(body, &rawParsed); err != nil {
		return nil, err
	}

	if rawParsed.Version != s.version {
		return nil, fmt.Errorf("unsupported body version: got %d, want %d", rawParsed.Version, s.version)
	}
	if len(rawParsed.Sections) == 0 {
		return nil, errors.New("body.sections must not be empty")
	}

	// 2) parse and validate contents and store into []Section
	parsedContent := make([]Section, len(rawParsed.Sections))
	ids := make(map[string]bool, len(rawParsed.Sections))

	for i, sec := range rawParsed.Sections {
		if sec.ID == "" {
			return nil, fmt.Errorf("section[%d]: id is required", i)
		}
		if ids[sec.ID] {
			return nil, fmt.Errorf("section[%d]: duplicate id %q", i, sec.ID)
		}
		ids[sec.ID] = true

		if len(sec.Content) == 0 {
			return nil, fmt.Errorf("section[%d]: content must not be empty", i)
		}
		if sec.Kind == "" {
			sec.Kind = KindDefault
		}

		section := Section{
			ID:      sec.ID,
			Title:   strings.TrimSpace(sec.Title),
			Kind:    sec.Kind,
			Content: make([]ContentItem, len(sec.Content)),
		}

		for j, rawItem := range sec.Content {
			item, err := parseItem(rawItem)
			if err != nil {
				return nil, fmt.Errorf("section[%d].content[%d]: %w", i, j, err)
			}

			section.Content[j] = item
		}

		parsedContent[i] = section
	}

	s.sections = parsedContent

	canonical := struct {
		Version  int32     `json:"version"`
		Sections []Section `json:"sections"`
	}{
		Version:  s.version,
		Sections: parsedContent,
	}

	out, err := json.Marshal(canonical)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func parseItem(rawItem RawItem) (ContentItem, error) {
	switch rawItem.Type {
	case TypeParagraph:
		return NewParagraph(rawItem.Raw)
	case TypeList:
		return NewList(rawItem.Raw)
	case TypeCode:
		return NewCode(rawItem.Raw)
	case TypeQuote:
		return NewQuote(rawItem.Raw)
	case TypeDivider:
		return Divider{Typed{TypeDivider}}, nil
	default:
		return nil, fmt.Errorf("unknown type %q", rawItem.Type)
	}
}

// RenderedSection is a section with its content converted into HTML.
type RenderedSection struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Kind  Kind   `json:"kind"`
	HTML  string `json:"html"`
}

// Render converts every parsed section into HTML, the user-authored texts
// are passed through r.
func (s *PseudoAST) Render(r TextRenderer) []RenderedSection {
	out := make([]RenderedSection, len(s.sections))

	for i, sec := range s.sections {
		var sb strings.Builder
		for _, item := range sec.Content {
			sb.WriteString(item.HTML(r))
		}

		out[i] = RenderedSection{
			ID:    sec.ID,
			Title: sec.Title,
			Kind:  sec.Kind,
			HTML:  sb.String(),
		}
	}

	return out
}

// Section defines a separate block of the content.
type Section struct {
	ID      string        `json:"id"`      // Required. Must be unique across all sections.
	Title   string        `json:"title"`   // Optional. Defines the display name of each section.
	Kind    Kind          `json:"kind"`    // Required. Defines the type of the block. "default" by default.
	Content []ContentItem `json:"content"` // Required. Actual body of the block.
}

// RawItem defines not-fully parsed json content item to be later parsed as ContentItem based on the Type field.
type RawItem struct {
	Type Type            `json:"type"`
	Raw  json.RawMessage // the whole JSON object for this item
}

// UnmarshalJSON helps saving all the data in the Raw field
// and still be able to access the content type via Type field
func (ri *RawItem) UnmarshalJSON(data []byte) error {
	// 1) first copy all the data into the Raw field
	ri.Raw = make(json.RawMessage, len(data))
	copy(ri.Raw, data)

	// 2) extract only type and save it in the Type field
	var aux struct {
		Type Type `json:"type"`
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	ri.Type = aux.Type
	return nil
}
