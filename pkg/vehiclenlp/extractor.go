// Package vehiclenlp extracts vehicle brand and model mentions from free
// text. Matching is driven by whatever catalog the caller supplies, so the
// matcher only recognizes vehicles it can actually answer for.
package vehiclenlp

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/tunexa/audiodb/pkg/fn"
)

// Match is one recognized vehicle mention.
type Match struct {
	Brand      string  // canonical brand, e.g. "Skoda"
	Model      string  // canonical model, empty if only the brand matched
	Year       int     // 0 if not found
	Confidence float64 // 0.0-1.0
	Span       string  // the matched text fragment, normalized
}

// builtinAliases maps common shorthand to canonical brand names. An alias
// is active only when its brand is present in the supplied catalog.
var builtinAliases = map[string]string{
	"vw":        "Volkswagen",
	"mercedes":  "Mercedes-Benz",
	"merc":      "Mercedes-Benz",
	"benz":      "Mercedes-Benz",
	"alfa":      "Alfa Romeo",
	"landrover": "Land Rover",
	"citroen":   "Citroen",
}

// foldReplacer maps accented letters to their ASCII base so that "Škoda"
// and "Citroën" match their catalog spellings.
var foldReplacer = strings.NewReplacer(
	"á", "a", "ä", "a", "â", "a", "à", "a",
	"č", "c", "ç", "c",
	"ď", "d",
	"é", "e", "ě", "e", "ë", "e", "è", "e", "ê", "e",
	"í", "i", "î", "i",
	"ĺ", "l", "ľ", "l",
	"ň", "n",
	"ó", "o", "ô", "o", "ö", "o",
	"ŕ", "r", "ř", "r",
	"š", "s",
	"ť", "t",
	"ú", "u", "ů", "u", "ü", "u",
	"ý", "y",
	"ž", "z",
)

func normalize(s string) string {
	return foldReplacer.Replace(strings.ToLower(s))
}

var (
	yearFullRe = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)
	yearAbbrRe = regexp.MustCompile(`'(\d{2})\b`)
)

type modelEntry struct {
	norm, canonical string
}

// Matcher recognizes the brands and models it was built from.
type Matcher struct {
	aliases     map[string]string       // normalized alias -> canonical brand
	modelsOf    map[string][]modelEntry // canonical brand -> models, longest first
	uniqueModel map[string]string       // normalized model -> its only brand
	brandRe     *regexp.Regexp
}

// NewMatcher builds a matcher from brand -> model names.
func NewMatcher(models map[string][]string) *Matcher {
	m := &Matcher{
		aliases:     make(map[string]string),
		modelsOf:    make(map[string][]modelEntry),
		uniqueModel: make(map[string]string),
	}

	for brand, names := range models {
		m.aliases[normalize(brand)] = brand
		entries := make([]modelEntry, 0, len(names))
		for _, name := range fn.Unique(names) {
			entries = append(entries, modelEntry{norm: normalize(name), canonical: name})
		}
		// Longest first so "Range Rover Evoque" wins over "Range Rover".
		sort.Slice(entries, func(i, j int) bool { return len(entries[i].norm) > len(entries[j].norm) })
		m.modelsOf[brand] = entries
	}
	for alias, brand := range builtinAliases {
		if _, ok := m.modelsOf[brand]; ok {
			m.aliases[alias] = brand
		}
	}

	// Models distinctive enough to identify a brand on their own.
	count := make(map[string]int)
	for _, entries := range m.modelsOf {
		for _, e := range entries {
			count[e.norm]++
		}
	}
	for brand, entries := range m.modelsOf {
		for _, e := range entries {
			if count[e.norm] == 1 && len(e.norm) >= 3 {
				m.uniqueModel[e.norm] = brand
			}
		}
	}

	if len(m.aliases) == 0 {
		return m
	}
	names := make([]string, 0, len(m.aliases))
	for alias := range m.aliases {
		names = append(names, regexp.QuoteMeta(alias))
	}
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	m.brandRe = regexp.MustCompile(`\b(` + strings.Join(names, "|") + `)\b`)
	return m
}

// Extract finds all vehicle mentions in text, sorted by confidence.
func (m *Matcher) Extract(text string) []Match {
	if text == "" || m.brandRe == nil {
		return nil
	}
	folded := normalize(text)

	var matches []Match
	used := make(map[string]bool)

	for _, loc := range m.brandRe.FindAllStringSubmatchIndex(folded, -1) {
		brand := m.aliases[folded[loc[2]:loc[3]]]
		if brand == "" {
			continue
		}

		// Look for a model just after the brand mention.
		afterEnd := min(loc[1]+40, len(folded))
		after := folded[loc[1]:afterEnd]
		model, modelSpan := m.findModel(brand, after)

		// Year may sit just before the brand or after the model.
		beforeStart := max(0, loc[0]-10)
		before := folded[beforeStart:loc[0]]
		year := findYear(before)
		if year == 0 {
			search := after
			if modelSpan > 0 {
				search = after[modelSpan:]
			}
			year = findYear(search)
		}
		if year == 0 {
			year = findAbbrYear(before)
		}

		conf := 0.60
		switch {
		case model != "" && year > 0:
			conf = 0.95
		case model != "":
			conf = 0.80
		case year > 0:
			conf = 0.70
		}

		spanEnd := loc[1]
		if model != "" {
			spanEnd = loc[1] + modelSpan
		}
		span := strings.TrimSpace(folded[loc[0]:spanEnd])

		key := fmt.Sprintf("%s|%s|%d", brand, model, year)
		if used[key] {
			continue
		}
		used[key] = true

		matches = append(matches, Match{Brand: brand, Model: model, Year: year, Confidence: conf, Span: span})
	}

	matches = append(matches, m.standaloneModels(folded, used)...)

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Confidence > matches[j].Confidence })
	return matches
}

// ExtractBest returns the highest-confidence match.
func (m *Matcher) ExtractBest(text string) (Match, bool) {
	matches := m.Extract(text)
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[0], true
}

// findModel looks for a known model of the brand at the start of the
// fragment following the brand mention.
func (m *Matcher) findModel(brand, after string) (string, int) {
	trimmed := strings.TrimLeftFunc(after, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	offset := len(after) - len(trimmed)

	for _, e := range m.modelsOf[brand] {
		if !strings.HasPrefix(trimmed, e.norm) {
			continue
		}
		end := len(e.norm)
		if end < len(trimmed) {
			next := rune(trimmed[end])
			if unicode.IsLetter(next) || unicode.IsDigit(next) {
				continue
			}
		}
		return e.canonical, offset + end
	}
	return "", 0
}

// standaloneModels finds mentions of models distinctive enough to stand
// without their brand, e.g. "octavia" alone.
func (m *Matcher) standaloneModels(folded string, used map[string]bool) []Match {
	var out []Match
	for norm, brand := range m.uniqueModel {
		idx := strings.Index(folded, norm)
		if idx < 0 {
			continue
		}
		if idx > 0 {
			prev := rune(folded[idx-1])
			if unicode.IsLetter(prev) || unicode.IsDigit(prev) {
				continue
			}
		}
		end := idx + len(norm)
		if end < len(folded) {
			next := rune(folded[end])
			if unicode.IsLetter(next) || unicode.IsDigit(next) {
				continue
			}
		}

		canonical := m.canonicalModel(brand, norm)

		nearStart := max(0, idx-12)
		nearEnd := min(end+12, len(folded))
		year := findYear(folded[nearStart:nearEnd])
		if year == 0 {
			year = findAbbrYear(folded[nearStart:idx])
		}

		conf := 0.50
		if year > 0 {
			conf = 0.75
		}
		key := fmt.Sprintf("%s|%s|%d", brand, canonical, year)
		if used[key] {
			continue
		}
		used[key] = true

		out = append(out, Match{
			Brand:      brand,
			Model:      canonical,
			Year:       year,
			Confidence: conf,
			Span:       strings.TrimSpace(folded[nearStart:nearEnd]),
		})
	}
	return out
}

func (m *Matcher) canonicalModel(brand, norm string) string {
	for _, e := range m.modelsOf[brand] {
		if e.norm == norm {
			return e.canonical
		}
	}
	return norm
}

func findYear(s string) int {
	match := yearFullRe.FindStringSubmatch(s)
	if match == nil {
		return 0
	}
	y, _ := strconv.Atoi(match[1])
	if y >= 1980 && y <= 2030 {
		return y
	}
	return 0
}

func findAbbrYear(s string) int {
	match := yearAbbrRe.FindStringSubmatch(s)
	if match == nil {
		return 0
	}
	yy, _ := strconv.Atoi(match[1])
	if yy >= 0 && yy <= 30 {
		return 2000 + yy
	}
	if yy >= 80 && yy <= 99 {
		return 1900 + yy
	}
	return 0
}
