package catalog

import "errors"

// ErrEmpty is returned by Build when the merged catalog has no brands.
var ErrEmpty = errors.New("catalog: no authored data")

// segments are merged in authoring order. A brand appearing in more than
// one segment has its model lists merged; a model appearing twice keeps
// the later segment's generations.
var segments = []Catalog{
	segmentVAG,
	segmentGerman,
	segmentAsia,
	segmentStellantis,
	segmentOther,
}

// Build merges the authored segments into a single catalog. Nil
// generation lists are normalized to empty slices so an empty model
// serializes as [] rather than null.
func Build() (Catalog, error) {
	cat := Catalog{}
	for _, seg := range segments {
		for brand, models := range seg {
			merged, ok := cat[brand]
			if !ok {
				merged = make(map[string][]Entry, len(models))
				cat[brand] = merged
			}
			for model, gens := range models {
				if gens == nil {
					gens = []Entry{}
				}
				merged[model] = gens
			}
		}
	}
	if len(cat) == 0 {
		return nil, ErrEmpty
	}
	return cat, nil
}
