// Package analysis scores a free-text message against a fixed keyword
// list per mission pillar. Despite the "analysis" name this is a plain
// deterministic overlap heuristic: word and sentence counts plus the
// fraction of pillar keywords present in the text.
package analysis

import (
	"strings"
	"unicode"

	"nird-intake/internal/domain"
)

// missionKeywords holds the fixed keyword list per pillar. Matching is
// case-insensitive on whole words after punctuation is stripped.
var missionKeywords = map[domain.MissionType][]string{
	domain.MissionIndependance: {
		"indépendance", "libre", "souveraineté", "open", "source",
		"logiciel", "alternative", "dépendance", "gafam", "migration",
	},
	domain.MissionResponsabilite: {
		"données", "éthique", "protection", "rgpd", "vie",
		"privée", "confidentialité", "gouvernance", "sécurité", "responsable",
	},
	domain.MissionDurabilite: {
		"durable", "écologique", "carbone", "empreinte", "environnement",
		"recyclage", "énergie", "sobriété", "matériel", "réemploi",
	},
	domain.MissionApprentissage: {
		"formation", "compétences", "apprentissage", "pédagogie", "atelier",
		"sensibilisation", "enseignants", "élèves", "pratiques", "ressources",
	},
}

// Result is the outcome of analyzing one message
type Result struct {
	WordCount       int      `json:"word_count"`
	SentenceCount   int      `json:"sentence_count"`
	MatchedKeywords []string `json:"matched_keywords"`
	RelevanceScore  int      `json:"relevance_score"`
}

// Analyze scores a message against the keyword list of the given
// pillar. An empty message or an unknown pillar yields a zero result.
func Analyze(mission domain.MissionType, message string) Result {
	result := Result{MatchedKeywords: []string{}}

	message = strings.TrimSpace(message)
	if message == "" {
		return result
	}

	words := tokenize(message)
	result.WordCount = len(words)
	result.SentenceCount = countSentences(message)

	keywords, ok := missionKeywords[mission]
	if !ok {
		return result
	}

	present := make(map[string]bool, len(words))
	for _, w := range words {
		present[w] = true
	}

	for _, kw := range keywords {
		if present[kw] {
			result.MatchedKeywords = append(result.MatchedKeywords, kw)
		}
	}

	result.RelevanceScore = len(result.MatchedKeywords) * 100 / len(keywords)
	return result
}

// tokenize lowercases the message and splits it into words, dropping
// punctuation but keeping accented letters. Apostrophes split so
// elisions like "d'indépendance" still expose the bare keyword.
func tokenize(message string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, strings.ToLower(message))

	return strings.Fields(cleaned)
}

// countSentences counts terminator runs so "..." ends one sentence,
// with trailing text counting as a final sentence.
func countSentences(message string) int {
	count := 0
	inTerminator := false
	sawText := false

	for _, r := range message {
		switch r {
		case '.', '!', '?':
			if !inTerminator && sawText {
				count++
			}
			inTerminator = true
			sawText = false
		case ' ', '\t', '\n', '\r':
			inTerminator = false
		default:
			inTerminator = false
			sawText = true
		}
	}

	if sawText {
		count++
	}
	return count
}
