// Package i18n renders host-facing messages for clue set and game errors.
//
// Messages live in an x/text catalog keyed by stable identifiers. English is
// the source locale and the fallback for anything a translation lacks.
package i18n

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"jeopardy/internal/app"
	"jeopardy/internal/clueset"
	"jeopardy/internal/domain"
)

// DefaultTag is the source locale
var DefaultTag = language.English

var supported = []language.Tag{language.English, language.Spanish}

var (
	matcher = language.NewMatcher(supported)
	builder = mustBuildCatalog()
)

// Supported returns the locales with a catalog
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Parse resolves a configured language value such as "es" or "en-GB" to a
// supported tag.
func Parse(value string) (language.Tag, bool) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return DefaultTag, false
	}
	return match(tag), true
}

// MatchAcceptLanguage picks the best supported tag for an Accept-Language
// header, falling back to fallback when the header is empty or unparseable.
func MatchAcceptLanguage(header string, fallback language.Tag) language.Tag {
	header = strings.TrimSpace(header)
	if header == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	return match(tags...)
}

func match(tags ...language.Tag) language.Tag {
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag
	}
	return supported[index]
}

// Printer returns a message printer bound to the catalog. Unsupported tags
// print in DefaultTag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(match(tag), message.Catalog(builder))
}

// Message renders err for a host. Unknown errors fall back to err.Error().
func Message(err error, tag language.Tag) string {
	if err == nil {
		return ""
	}
	p := Printer(tag)

	var verr *clueset.ValidationError
	if errors.As(err, &verr) {
		return validationMessage(p, verr)
	}

	var perr *clueset.ParseError
	if errors.As(err, &perr) {
		if perr.Field != "" {
			return p.Sprintf(keyParseField, perr.Field)
		}
		return p.Sprintf(keyParse)
	}

	var werr *domain.WagerError
	if errors.As(err, &werr) {
		if werr.Kind == domain.WagerForbidden {
			return p.Sprintf(keyWagerForbidden, werr.Amount)
		}
		return p.Sprintf(keyWagerOutOfRange, werr.Min, werr.Max)
	}

	for sentinel, key := range sentinelKeys {
		if errors.Is(err, sentinel) {
			return p.Sprintf(key)
		}
	}
	return err.Error()
}

func validationMessage(p *message.Printer, e *clueset.ValidationError) string {
	key, ok := validationKeys[e.Kind]
	if !ok {
		return e.Error()
	}
	category, clue := e.CategoryIndex+1, e.ClueIndex+1

	switch e.Kind {
	case clueset.KindWrongCategoryCount, clueset.KindWrongDailyDoubleCount:
		return p.Sprintf(key, e.Expected, e.Actual)
	case clueset.KindWrongClueCount:
		return p.Sprintf(key, category, e.Expected, e.Actual)
	case clueset.KindWrongPointValue:
		return p.Sprintf(key, clue, category, e.Expected, e.Actual)
	case clueset.KindEmptyCategoryTitle, clueset.KindMultipleDailyDoublesInCategory:
		return p.Sprintf(key, category)
	case clueset.KindEmptyPrompt, clueset.KindEmptyResponse,
		clueset.KindEmptyMediaRef, clueset.KindClueAlreadyDone:
		return p.Sprintf(key, clue, category)
	}
	return p.Sprintf(key)
}

var sentinelKeys = map[error]string{
	app.ErrNoClueSet:          keyNoClueSet,
	app.ErrNotEnoughPlayers:   keyNotEnoughPlayers,
	app.ErrRosterFull:         keyRosterFull,
	app.ErrNoGame:             keyNoGame,
	app.ErrGameInProgress:     keyGameInProgress,
	app.ErrPlayerNotFound:     keyPlayerNotFound,
	domain.ErrEmptyPlayerName: keyEmptyPlayerName,
}

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(DefaultTag))
	for tag, messages := range translations {
		for key, msg := range messages {
			if err := b.SetString(tag, key, msg); err != nil {
				panic("i18n: " + key + ": " + err.Error())
			}
		}
	}
	return b
}
