package semantic

// SystemRecord is one audio system description prepared for indexing.
// Each catalog generation yields up to two records, one per trim tier.
type SystemRecord struct {
	Brand      string `json:"brand"`
	Model      string `json:"model"`
	Generation string `json:"generation"`
	Years      string `json:"years"`
	Tier       string `json:"tier"` // "base" or "premium"
	Text       string `json:"text"`
}

// SystemHit is a single similarity search hit.
type SystemHit struct {
	ID         string  `json:"id"`
	Score      float32 `json:"score"`
	Brand      string  `json:"brand"`
	Model      string  `json:"model"`
	Generation string  `json:"generation"`
	Years      string  `json:"years"`
	Tier       string  `json:"tier"`
	Text       string  `json:"text"`
}
