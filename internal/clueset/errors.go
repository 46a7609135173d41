package clueset

import (
	"errors"
	"fmt"
)

// ErrMalformed is wrapped by every ParseError
var ErrMalformed = errors.New("malformed clue set")

// Kind is a machine-readable validation failure code
type Kind string

const (
	KindWrongCategoryCount             Kind = "WRONG_CATEGORY_COUNT"
	KindEmptyCategoryTitle             Kind = "EMPTY_CATEGORY_TITLE"
	KindWrongClueCount                 Kind = "WRONG_CLUE_COUNT"
	KindMultipleDailyDoublesInCategory Kind = "MULTIPLE_DAILY_DOUBLES_IN_CATEGORY"
	KindWrongPointValue                Kind = "WRONG_POINT_VALUE"
	KindEmptyPrompt                    Kind = "EMPTY_PROMPT"
	KindEmptyResponse                  Kind = "EMPTY_RESPONSE"
	KindEmptyMediaRef                  Kind = "EMPTY_MEDIA_REF"
	KindClueAlreadyDone                Kind = "CLUE_ALREADY_DONE"
	KindWrongDailyDoubleCount          Kind = "WRONG_DAILY_DOUBLE_COUNT"
	KindEmptyFinalCategoryTitle        Kind = "EMPTY_FINAL_CATEGORY_TITLE"
	KindEmptyFinalPrompt               Kind = "EMPTY_FINAL_PROMPT"
	KindEmptyFinalResponse             Kind = "EMPTY_FINAL_RESPONSE"
	KindEmptyFinalMediaRef             Kind = "EMPTY_FINAL_MEDIA_REF"
)

// Validation errors, one per Kind
var (
	ErrWrongCategoryCount             = errors.New("wrong number of categories")
	ErrEmptyCategoryTitle             = errors.New("empty category title")
	ErrWrongClueCount                 = errors.New("wrong number of clues in category")
	ErrMultipleDailyDoublesInCategory = errors.New("more than one daily double in category")
	ErrWrongPointValue                = errors.New("wrong point value")
	ErrEmptyPrompt                    = errors.New("empty clue answer")
	ErrEmptyResponse                  = errors.New("empty clue correct response")
	ErrEmptyMediaRef                  = errors.New("empty clue image")
	ErrClueAlreadyDone                = errors.New("clue already marked done")
	ErrWrongDailyDoubleCount          = errors.New("wrong number of daily doubles")
	ErrEmptyFinalCategoryTitle        = errors.New("empty final category title")
	ErrEmptyFinalPrompt               = errors.New("empty final clue answer")
	ErrEmptyFinalResponse             = errors.New("empty final clue correct response")
	ErrEmptyFinalMediaRef             = errors.New("empty final clue image")
)

var kindErrors = map[Kind]error{
	KindWrongCategoryCount:             ErrWrongCategoryCount,
	KindEmptyCategoryTitle:             ErrEmptyCategoryTitle,
	KindWrongClueCount:                 ErrWrongClueCount,
	KindMultipleDailyDoublesInCategory: ErrMultipleDailyDoublesInCategory,
	KindWrongPointValue:                ErrWrongPointValue,
	KindEmptyPrompt:                    ErrEmptyPrompt,
	KindEmptyResponse:                  ErrEmptyResponse,
	KindEmptyMediaRef:                  ErrEmptyMediaRef,
	KindClueAlreadyDone:                ErrClueAlreadyDone,
	KindWrongDailyDoubleCount:          ErrWrongDailyDoubleCount,
	KindEmptyFinalCategoryTitle:        ErrEmptyFinalCategoryTitle,
	KindEmptyFinalPrompt:               ErrEmptyFinalPrompt,
	KindEmptyFinalResponse:             ErrEmptyFinalResponse,
	KindEmptyFinalMediaRef:             ErrEmptyFinalMediaRef,
}

// ValidationError describes the first structural defect found in a clue set.
//
// Indices are zero-based. CategoryIndex is set for category and clue kinds,
// ClueIndex for clue kinds; both are -1 otherwise. Actual and Expected are
// set for the count and point value kinds.
type ValidationError struct {
	Kind          Kind
	Actual        int
	Expected      int
	CategoryIndex int
	ClueIndex     int
}

func (e *ValidationError) Error() string {
	switch {
	case e.ClueIndex >= 0 && e.Kind == KindWrongPointValue:
		return fmt.Sprintf("clue set: category %d clue %d: %v %d (expected %d)",
			e.CategoryIndex, e.ClueIndex, e.Unwrap(), e.Actual, e.Expected)
	case e.ClueIndex >= 0:
		return fmt.Sprintf("clue set: category %d clue %d: %v", e.CategoryIndex, e.ClueIndex, e.Unwrap())
	case e.CategoryIndex >= 0 && e.Kind == KindWrongClueCount:
		return fmt.Sprintf("clue set: category %d: %v %d (expected %d)",
			e.CategoryIndex, e.Unwrap(), e.Actual, e.Expected)
	case e.CategoryIndex >= 0:
		return fmt.Sprintf("clue set: category %d: %v", e.CategoryIndex, e.Unwrap())
	case e.Kind == KindWrongCategoryCount || e.Kind == KindWrongDailyDoubleCount:
		return fmt.Sprintf("clue set: %v %d (expected %d)", e.Unwrap(), e.Actual, e.Expected)
	}
	return fmt.Sprintf("clue set: %v", e.Unwrap())
}

// Unwrap returns the sentinel error for the kind
func (e *ValidationError) Unwrap() error {
	return kindErrors[e.Kind]
}

func boardError(kind Kind, actual, expected int) *ValidationError {
	return &ValidationError{Kind: kind, Actual: actual, Expected: expected, CategoryIndex: -1, ClueIndex: -1}
}

func categoryError(kind Kind, categoryIndex int) *ValidationError {
	return &ValidationError{Kind: kind, CategoryIndex: categoryIndex, ClueIndex: -1}
}

func clueError(kind Kind, categoryIndex, clueIndex int) *ValidationError {
	return &ValidationError{Kind: kind, CategoryIndex: categoryIndex, ClueIndex: clueIndex}
}

func finalError(kind Kind) *ValidationError {
	return &ValidationError{Kind: kind, CategoryIndex: -1, ClueIndex: -1}
}
