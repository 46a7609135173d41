package i18n

import (
	"golang.org/x/text/language"

	"jeopardy/internal/clueset"
)

const (
	keyParse           = "clueset.parse"
	keyParseField      = "clueset.parse_field"
	keyWagerForbidden  = "wager.forbidden"
	keyWagerOutOfRange = "wager.out_of_range"

	keyNoClueSet        = "setup.no_clue_set"
	keyNotEnoughPlayers = "setup.not_enough_players"
	keyRosterFull       = "setup.roster_full"
	keyNoGame           = "game.none"
	keyGameInProgress   = "game.in_progress"
	keyPlayerNotFound   = "setup.player_not_found"
	keyEmptyPlayerName  = "setup.empty_player_name"
)

var validationKeys = map[clueset.Kind]string{
	clueset.KindWrongCategoryCount:             "clueset.wrong_category_count",
	clueset.KindEmptyCategoryTitle:             "clueset.empty_category_title",
	clueset.KindWrongClueCount:                 "clueset.wrong_clue_count",
	clueset.KindMultipleDailyDoublesInCategory: "clueset.multiple_daily_doubles",
	clueset.KindWrongPointValue:                "clueset.wrong_point_value",
	clueset.KindEmptyPrompt:                    "clueset.empty_answer",
	clueset.KindEmptyResponse:                  "clueset.empty_response",
	clueset.KindEmptyMediaRef:                  "clueset.empty_image",
	clueset.KindClueAlreadyDone:                "clueset.clue_done",
	clueset.KindWrongDailyDoubleCount:          "clueset.wrong_daily_double_count",
	clueset.KindEmptyFinalCategoryTitle:        "clueset.empty_final_title",
	clueset.KindEmptyFinalPrompt:               "clueset.empty_final_answer",
	clueset.KindEmptyFinalResponse:             "clueset.empty_final_response",
	clueset.KindEmptyFinalMediaRef:             "clueset.empty_final_image",
}

var translations = map[language.Tag]map[string]string{
	language.English: {
		"clueset.wrong_category_count":     "Incorrect number of categories (expected: %d, actual: %d)",
		"clueset.empty_category_title":     "The title of category %d is empty.",
		"clueset.wrong_clue_count":         "Incorrect number of clues in category %d (expected: %d, actual: %d)",
		"clueset.multiple_daily_doubles":   "There cannot be more than one Daily Double in category %d.",
		"clueset.wrong_point_value":        "Incorrect point value of clue %d in category %d (expected: %d, actual: %d)",
		"clueset.empty_answer":             "The “answer” of clue %d in category %d is empty.",
		"clueset.empty_response":           "The correct response to clue %d in category %d is empty.",
		"clueset.empty_image":              "The accompanying image filename for clue %d in category %d is empty.",
		"clueset.clue_done":                "Clue %d in category %d cannot be marked as “done.”",
		"clueset.wrong_daily_double_count": "Incorrect number of Daily Doubles (expected: %d, actual: %d)",
		"clueset.empty_final_title":        "The title of the Final Jeopardy! category is empty.",
		"clueset.empty_final_answer":       "The “answer” of the Final Jeopardy! clue is empty.",
		"clueset.empty_final_response":     "The correct response to the Final Jeopardy! clue is empty.",
		"clueset.empty_final_image":        "The accompanying image filename for the Final Jeopardy! clue is empty.",
		keyParse:                           "The clue set is not valid JSON.",
		keyParseField:                      "The clue set field %s has the wrong type.",
		keyWagerForbidden:                  "A wager of %d is not allowed.",
		keyWagerOutOfRange:                 "The wager must be between %d and %d.",
		keyNoClueSet:                       "Load a clue set before starting the game.",
		keyNotEnoughPlayers:                "Add more players before starting the game.",
		keyRosterFull:                      "No more players can be added.",
		keyNoGame:                          "No game is in progress.",
		keyGameInProgress:                  "The roster cannot change while a game is in progress.",
		keyPlayerNotFound:                  "That player is not on the roster.",
		keyEmptyPlayerName:                 "Enter a player name.",
	},
	language.Spanish: {
		"clueset.wrong_category_count":     "Número incorrecto de categorías (esperado: %d, actual: %d)",
		"clueset.empty_category_title":     "El título de la categoría %d está vacío.",
		"clueset.wrong_clue_count":         "Número incorrecto de pistas en la categoría %d (esperado: %d, actual: %d)",
		"clueset.multiple_daily_doubles":   "No puede haber más de un Daily Double en la categoría %d.",
		"clueset.wrong_point_value":        "Valor incorrecto de la pista %d en la categoría %d (esperado: %d, actual: %d)",
		"clueset.empty_answer":             "La “respuesta” de la pista %d en la categoría %d está vacía.",
		"clueset.empty_response":           "La pregunta correcta de la pista %d en la categoría %d está vacía.",
		"clueset.empty_image":              "El nombre de la imagen de la pista %d en la categoría %d está vacío.",
		"clueset.clue_done":                "La pista %d en la categoría %d no puede estar marcada como “hecha.”",
		"clueset.wrong_daily_double_count": "Número incorrecto de Daily Doubles (esperado: %d, actual: %d)",
		"clueset.empty_final_title":        "El título de la categoría de Final Jeopardy! está vacío.",
		"clueset.empty_final_answer":       "La “respuesta” de la pista de Final Jeopardy! está vacía.",
		"clueset.empty_final_response":     "La pregunta correcta de la pista de Final Jeopardy! está vacía.",
		"clueset.empty_final_image":        "El nombre de la imagen de la pista de Final Jeopardy! está vacío.",
		keyParse:                           "El juego de pistas no es JSON válido.",
		keyParseField:                      "El campo %s del juego de pistas tiene un tipo incorrecto.",
		keyWagerForbidden:                  "No se permite una apuesta de %d.",
		keyWagerOutOfRange:                 "La apuesta debe estar entre %d y %d.",
		keyNoClueSet:                       "Cargue un juego de pistas antes de empezar.",
		keyNotEnoughPlayers:                "Agregue más jugadores antes de empezar.",
		keyRosterFull:                      "No se pueden agregar más jugadores.",
		keyNoGame:                          "No hay ningún juego en curso.",
		keyGameInProgress:                  "La lista de jugadores no puede cambiar durante un juego.",
		keyPlayerNotFound:                  "Ese jugador no está en la lista.",
		keyEmptyPlayerName:                 "Escriba el nombre del jugador.",
	},
}
