package clueset

import (
	"fmt"
	"os"

	"jeopardy/internal/domain"
)

// ClueSet is a validated board and final clue, ready to start a game
type ClueSet struct {
	Board     *domain.Board
	FinalClue domain.FinalClue
}

// Load parses and validates a clue set document
func Load(data []byte) (*ClueSet, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Validate(doc)
}

// LoadFile reads, parses and validates the clue set at path
func LoadFile(path string) (*ClueSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read clue set: %w", err)
	}
	return Load(data)
}

// Validate checks a parsed document and builds a clue set from it.
// The first defect found is returned as a *ValidationError; nothing is built
// in that case.
func Validate(doc *Document) (*ClueSet, error) {
	if len(doc.Categories) != domain.CategoryCount {
		return nil, boardError(KindWrongCategoryCount, len(doc.Categories), domain.CategoryCount)
	}

	for i := range doc.Categories {
		if err := validateCategory(&doc.Categories[i], i); err != nil {
			return nil, err
		}
	}

	dailyDoubles := 0
	for _, category := range doc.Categories {
		dailyDoubles += countDailyDoubles(category)
	}
	if dailyDoubles != domain.DailyDoubleCount {
		return nil, boardError(KindWrongDailyDoubleCount, dailyDoubles, domain.DailyDoubleCount)
	}

	if err := validateFinalClue(&doc.FinalClue); err != nil {
		return nil, err
	}

	return build(doc), nil
}

func validateCategory(category *CategoryDoc, index int) error {
	if category.Title == "" {
		return categoryError(KindEmptyCategoryTitle, index)
	}

	if len(category.Clues) != domain.CluesPerCategory {
		err := categoryError(KindWrongClueCount, index)
		err.Actual = len(category.Clues)
		err.Expected = domain.CluesPerCategory
		return err
	}

	if countDailyDoubles(*category) > 1 {
		return categoryError(KindMultipleDailyDoublesInCategory, index)
	}

	for i := range category.Clues {
		if err := validateClue(&category.Clues[i], index, i); err != nil {
			return err
		}
	}
	return nil
}

func validateClue(clue *ClueDoc, categoryIndex, clueIndex int) error {
	expected := domain.ExpectedPointValue(clueIndex)
	if clue.PointValue == nil || *clue.PointValue != expected {
		err := clueError(KindWrongPointValue, categoryIndex, clueIndex)
		if clue.PointValue != nil {
			err.Actual = *clue.PointValue
		}
		err.Expected = expected
		return err
	}

	switch {
	case clue.Answer == "":
		return clueError(KindEmptyPrompt, categoryIndex, clueIndex)
	case clue.CorrectResponse == "":
		return clueError(KindEmptyResponse, categoryIndex, clueIndex)
	case clue.Image != nil && *clue.Image == "":
		return clueError(KindEmptyMediaRef, categoryIndex, clueIndex)
	case clue.IsDone:
		return clueError(KindClueAlreadyDone, categoryIndex, clueIndex)
	}
	return nil
}

func validateFinalClue(final *FinalClueDoc) error {
	switch {
	case final.CategoryTitle == "":
		return finalError(KindEmptyFinalCategoryTitle)
	case final.Answer == "":
		return finalError(KindEmptyFinalPrompt)
	case final.CorrectResponse == "":
		return finalError(KindEmptyFinalResponse)
	case final.Image != nil && *final.Image == "":
		return finalError(KindEmptyFinalMediaRef)
	}
	return nil
}

func countDailyDoubles(category CategoryDoc) int {
	count := 0
	for _, clue := range category.Clues {
		if clue.IsDailyDouble {
			count++
		}
	}
	return count
}

func build(doc *Document) *ClueSet {
	board := &domain.Board{Categories: make([]*domain.Category, 0, len(doc.Categories))}
	for _, category := range doc.Categories {
		clues := make([]*domain.Clue, 0, len(category.Clues))
		for _, clue := range category.Clues {
			clues = append(clues, &domain.Clue{
				ID:              domain.NewClueID(),
				PointValue:      *clue.PointValue,
				Answer:          clue.Answer,
				CorrectResponse: clue.CorrectResponse,
				IsDailyDouble:   clue.IsDailyDouble,
				Image:           deref(clue.Image),
			})
		}
		board.Categories = append(board.Categories, &domain.Category{
			Title: category.Title,
			Clues: clues,
		})
	}

	return &ClueSet{
		Board: board,
		FinalClue: domain.FinalClue{
			CategoryTitle:   doc.FinalClue.CategoryTitle,
			Answer:          doc.FinalClue.Answer,
			CorrectResponse: doc.FinalClue.CorrectResponse,
			Image:           deref(doc.FinalClue.Image),
		},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
