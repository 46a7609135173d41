// Package clueset reads and validates host-authored clue sets.
//
// A clue set is a JSON document with six categories of five clues and a
// final clue. Parse trims every string field once; Validate checks the
// structure and produces the board a game is played on.
package clueset

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Document is the on-disk shape of a clue set
type Document struct {
	Categories []CategoryDoc `json:"categories"`
	FinalClue  FinalClueDoc  `json:"finalClue"`
}

// CategoryDoc is one category in a clue set document
type CategoryDoc struct {
	Title string    `json:"title"`
	Clues []ClueDoc `json:"clues"`
}

// ClueDoc is one clue in a clue set document.
// PointValue and Image are pointers so that absence can be told apart from zero.
type ClueDoc struct {
	PointValue      *int    `json:"pointValue,omitempty"`
	Answer          string  `json:"answer"`
	CorrectResponse string  `json:"correctResponse"`
	IsDailyDouble   bool    `json:"isDailyDouble"`
	Image           *string `json:"image,omitempty"`
	IsDone          bool    `json:"isDone"`
}

// FinalClueDoc is the final clue in a clue set document
type FinalClueDoc struct {
	CategoryTitle   string  `json:"categoryTitle"`
	Answer          string  `json:"answer"`
	CorrectResponse string  `json:"correctResponse"`
	Image           *string `json:"image,omitempty"`
}

// ParseError reports a document that is not well-formed JSON or has a field
// of the wrong type.
type ParseError struct {
	// Field is the dotted JSON path of the offending field, if known
	Field string
	// Offset is the byte offset of a syntax error, if known
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("parse clue set: field %s: %v", e.Field, e.Err)
	case e.Offset > 0:
		return fmt.Sprintf("parse clue set: offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("parse clue set: %v", e.Err)
}

// Unwrap returns ErrMalformed so callers can match any parse failure
func (e *ParseError) Unwrap() []error {
	return []error{ErrMalformed, e.Err}
}

// Parse decodes a clue set document and trims its string fields
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		parseErr := &ParseError{Err: err}

		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &syntaxErr):
			parseErr.Offset = syntaxErr.Offset
		case errors.As(err, &typeErr):
			parseErr.Field = typeErr.Field
			parseErr.Offset = typeErr.Offset
		}
		return nil, parseErr
	}

	doc.trim()
	return &doc, nil
}

func (d *Document) trim() {
	for i := range d.Categories {
		category := &d.Categories[i]
		category.Title = strings.TrimSpace(category.Title)
		for j := range category.Clues {
			clue := &category.Clues[j]
			clue.Answer = strings.TrimSpace(clue.Answer)
			clue.CorrectResponse = strings.TrimSpace(clue.CorrectResponse)
			clue.Image = trimOptional(clue.Image)
		}
	}

	d.FinalClue.CategoryTitle = strings.TrimSpace(d.FinalClue.CategoryTitle)
	d.FinalClue.Answer = strings.TrimSpace(d.FinalClue.Answer)
	d.FinalClue.CorrectResponse = strings.TrimSpace(d.FinalClue.CorrectResponse)
	d.FinalClue.Image = trimOptional(d.FinalClue.Image)
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
