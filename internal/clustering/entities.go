package clustering

import (
	"regexp"
	"strings"
)

// brandVocabulary holds the manufacturer and marque names recognized in
// titles. Matching is a plain substring check on the lowercased title, so
// "VW" in a headline matches via "vw".
var brandVocabulary = []string{
	"tesla", "toyota", "honda", "ford", "bmw", "mercedes", "hyundai", "kia",
	"nissan", "maruti", "mahindra", "tata", "suzuki", "bajaj", "tvs", "ather",
	"ola", "rivian", "nio", "byd", "volkswagen", "vw", "audi", "volvo",
	"porsche", "ferrari", "renault", "mg", "skoda", "jeep", "lexus", "isuzu",
	"ktm", "yamaha", "hero", "royal", "enfield", "ducati", "triumph",
	"harley", "davidson",
}

var (
	capitalizedTokenPattern = regexp.MustCompile(`\b[A-Z][a-z]{4,}\b`)
	yearTokenPattern        = regexp.MustCompile(`\b\d{4}\b`)
)

// entitySet holds the named entities extracted from an article title. Brands
// are tracked separately because they drive the merge veto rules; all also
// contains capitalized tokens and 4-digit tokens such as model years.
type entitySet struct {
	brands map[string]struct{}
	all    map[string]struct{}
}

// extractEntities pulls brand names, capitalized words of five or more
// letters and 4-digit tokens from the title. It never fails; a title with
// nothing recognizable yields empty sets.
func extractEntities(title string) entitySet {
	e := entitySet{
		brands: make(map[string]struct{}),
		all:    make(map[string]struct{}),
	}

	lower := strings.ToLower(title)
	for _, brand := range brandVocabulary {
		if strings.Contains(lower, brand) {
			e.brands[brand] = struct{}{}
			e.all[brand] = struct{}{}
		}
	}

	for _, tok := range capitalizedTokenPattern.FindAllString(title, -1) {
		e.all[strings.ToLower(tok)] = struct{}{}
	}
	for _, tok := range yearTokenPattern.FindAllString(title, -1) {
		e.all[tok] = struct{}{}
	}

	return e
}

func (e entitySet) hasBrand() bool {
	return len(e.brands) > 0
}

// sharesBrand reports whether the two sets have at least one brand in common.
func (e entitySet) sharesBrand(other entitySet) bool {
	return intersects(e.brands, other.brands)
}

// sharesAny reports whether the two sets have any entity in common.
func (e entitySet) sharesAny(other entitySet) bool {
	return intersects(e.all, other.all)
}

func intersects(a, b map[string]struct{}) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for k := range a {
		if _, ok := b[k]; ok {
			return true
		}
	}
	return false
}
