package sentiment

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/jonreiter/govader"
	"github.com/pelletier/go-toml/v2"
)

// maxValence bounds lexicon entries to the scale VADER's compound
// normalization expects.
const maxValence = 4.0

// Vader scores text with the VADER lexicon and rules.
type Vader struct {
	mu  sync.RWMutex
	sia *govader.SentimentIntensityAnalyzer
}

// NewVader loads a fresh analyzer with the stock lexicon. Each Vader owns its
// lexicon, so overrides on one never leak into another.
func NewVader() *Vader {
	return &Vader{sia: govader.NewSentimentIntensityAnalyzer()}
}

var sharedVader = sync.OnceValue(NewVader)

// Default returns a process-wide Vader with the stock lexicon. It must not be
// given overrides; use NewVader for that.
func Default() *Vader {
	return sharedVader()
}

// Polarity returns VADER's compound score for text.
func (v *Vader) Polarity(text string) float64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.sia.PolarityScores(text).Compound
}

// Valence reports the lexicon entry for word, ignoring case.
func (v *Vader) Valence(word string) (float64, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	value, ok := v.sia.Lexicon[strings.ToLower(strings.TrimSpace(word))]
	return value, ok
}

// Set adds or replaces the valence of word.
func (v *Vader) Set(word string, valence float64) error {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return fmt.Errorf("empty word")
	}
	if valence < -maxValence || valence > maxValence {
		return fmt.Errorf("valence %.2f for %q outside [-%.0f, %.0f]", valence, word, maxValence, maxValence)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sia.Lexicon[word] = valence
	return nil
}

type lexiconOverrides struct {
	Words map[string]float64 `toml:"words"`
}

// LoadOverrides applies a TOML file of the form
//
//	[words]
//	unputdownable = 3.0
//
// on top of the lexicon. Nothing is applied unless every entry is valid.
func (v *Vader) LoadOverrides(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open lexicon overrides: %w", err)
	}
	defer file.Close()

	var overrides lexiconOverrides
	if err := toml.NewDecoder(file).DisallowUnknownFields().Decode(&overrides); err != nil {
		return fmt.Errorf("parse lexicon overrides %s: %w", path, err)
	}
	for word, value := range overrides.Words {
		if strings.TrimSpace(word) == "" || value < -maxValence || value > maxValence {
			return fmt.Errorf("lexicon overrides: invalid entry %q = %.2f", word, value)
		}
	}
	for word, value := range overrides.Words {
		if err := v.Set(word, value); err != nil {
			return fmt.Errorf("lexicon overrides: %w", err)
		}
	}
	return nil
}
