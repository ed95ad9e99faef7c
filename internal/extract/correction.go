package extract

import (
	"regexp"
	"strings"
)

// Correction is a "recategorize X as Y" directive extracted from chat text.
// From and To are raw lower-cased words, not validated against the
// vocabulary: corrections may relabel to free-form tags.
type Correction struct {
	From string
	To   string
}

// Two accepted phrasings, tried in order:
//
//	verbose: "corrigir ... mercado ... para ... alimentacao"
//	terse:   "corrigir: mercado vira alimentacao"
var (
	correctionVerboseRe = regexp.MustCompile(`(?i)corrig(?:ir|o).+?\b(\w+)\b.+?\bpara\b.+?\b(\w+)\b`)
	correctionTerseRe   = regexp.MustCompile(`(?i)corrigir.*?:\s*(\w+)\s+vira\s+(\w+)`)
)

// CorrectionDirective extracts a category correction from text, if present.
func CorrectionDirective(text string) (Correction, bool) {
	if m := correctionVerboseRe.FindStringSubmatch(text); m != nil {
		return Correction{From: strings.ToLower(m[1]), To: strings.ToLower(m[2])}, true
	}
	if m := correctionTerseRe.FindStringSubmatch(text); m != nil {
		return Correction{From: strings.ToLower(m[1]), To: strings.ToLower(m[2])}, true
	}
	return Correction{}, false
}
