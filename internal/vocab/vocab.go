// Package vocab holds the category vocabulary: the ordered pattern->tag table
// that drives chat classification. The table is data, not code, so new
// categories are additions to a YAML file rather than code changes.
package vocab

import (
	"fmt"
	"os"
	"regexp"

	"finchat/internal/logging"
	"finchat/internal/models"
	"finchat/internal/textutils"

	"gopkg.in/yaml.v3"
)

// Rule maps one regular expression to a category tag. Patterns are evaluated
// against folded text (lower case, accents stripped), so they are written in
// plain unaccented lower case.
type Rule struct {
	Tag     string `yaml:"tag"`
	Pattern string `yaml:"pattern"`
}

// rulesFile is the on-disk shape of a vocabulary YAML file.
type rulesFile struct {
	Categories []Rule `yaml:"categories"`
}

// Vocabulary is an ordered list of compiled rules. Order defines tie-break
// priority: the first rule whose pattern matches wins.
type Vocabulary struct {
	rules    []compiledRule
	fallback string
}

type compiledRule struct {
	tag string
	re  *regexp.Regexp
}

// DefaultRules returns the built-in vocabulary, used when no YAML file is
// configured or the configured file is missing.
func DefaultRules() []Rule {
	return []Rule{
		{Tag: models.CategoryFood, Pattern: `mercado|supermercado|comida|restaurante|alimentacao`},
		{Tag: models.CategoryTransport, Pattern: `transporte|uber|onibus|metro|gasolina|combustivel`},
		{Tag: models.CategoryLeisure, Pattern: `lazer|cinema|jogo|assinatura|stream`},
		{Tag: models.CategoryIncome, Pattern: `salario|renda|recebi|ganhei`},
		{Tag: models.CategoryHousing, Pattern: `aluguel|moradia|condominio|energia|agua|internet`},
	}
}

// New compiles an ordered rule list into a Vocabulary.
func New(rules []Rule) (*Vocabulary, error) {
	v := &Vocabulary{fallback: models.CategoryOther}
	for _, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compiling pattern for category %q: %w", r.Tag, err)
		}
		v.rules = append(v.rules, compiledRule{tag: r.Tag, re: re})
	}
	return v, nil
}

// Default returns the built-in vocabulary. It never fails: the default
// patterns are compiled constants.
func Default() *Vocabulary {
	v, err := New(DefaultRules())
	if err != nil {
		panic(fmt.Sprintf("default vocabulary does not compile: %v", err))
	}
	return v
}

// Load reads a vocabulary YAML file. A missing file is not an error: the
// built-in default table is returned instead, the same policy the rest of the
// configuration follows.
func Load(path string, logger logging.Logger) (*Vocabulary, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("Vocabulary file not found, using built-in categories",
				logging.Field{Key: logging.FieldFile, Value: path})
			return Default(), nil
		}
		return nil, fmt.Errorf("reading vocabulary file: %w", err)
	}

	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing vocabulary file: %w", err)
	}
	if len(file.Categories) == 0 {
		logger.Warn("Vocabulary file has no categories, using built-in categories",
			logging.Field{Key: logging.FieldFile, Value: path})
		return Default(), nil
	}

	logger.Debug("Loaded vocabulary",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(file.Categories)})
	return New(file.Categories)
}

// Categorize returns the tag of the first rule matching text, or "outros".
// It is total and deterministic: identical input always yields the same tag.
func (v *Vocabulary) Categorize(text string) string {
	folded := textutils.Fold(text)
	for _, r := range v.rules {
		if r.re.MatchString(folded) {
			return r.tag
		}
	}
	return v.fallback
}

// Tags lists the vocabulary tags in priority order, fallback last.
func (v *Vocabulary) Tags() []string {
	tags := make([]string, 0, len(v.rules)+1)
	for _, r := range v.rules {
		tags = append(tags, r.tag)
	}
	return append(tags, v.fallback)
}
