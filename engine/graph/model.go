package graph

import "strings"

// Brand is a top-level catalog node.
type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Model is a vehicle model belonging to a brand.
type Model struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	BrandID string `json:"brand_id"`
}

// Generation is one audio-fit row under a model. Position preserves the
// authored order of the generation list.
type Generation struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	Years         string `json:"years"`
	BaseSystem    string `json:"base_system"`
	PremiumSystem string `json:"premium_system"`
	Position      int    `json:"position"`
	ModelID       string `json:"model_id"`
}

// BrandStats summarizes one brand for the stats endpoint.
type BrandStats struct {
	Name        string `json:"name"`
	Models      int64  `json:"models"`
	Generations int64  `json:"generations"`
}

// SystemHit is one text match on audio-system descriptions.
type SystemHit struct {
	Brand      string `json:"brand"`
	Model      string `json:"model"`
	Generation string `json:"generation"`
	Years      string `json:"years"`
	System     string `json:"system"`
	Tier       string `json:"tier"`
}

// NewBrand derives the node from a catalog brand name.
func NewBrand(name string) Brand {
	return Brand{ID: sanitizeID(name), Name: name}
}

// sanitizeID normalizes free text into a node id: lowercased, with runs
// of anything outside [a-z0-9] collapsed to single dashes. Diacritics are
// dropped rather than transliterated, which keeps ids stable for the
// authored data where labels differ in their ASCII parts.
func sanitizeID(s string) string {
	var b strings.Builder
	dash := true
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// modelID builds a model node id under a brand.
func modelID(brandID, model string) string {
	return brandID + "-" + sanitizeID(model)
}

// generationID builds a generation node id under a model.
func generationID(modelID, label string) string {
	return modelID + "-" + sanitizeID(label)
}
