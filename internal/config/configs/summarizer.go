package configs

// Summarizer picks the summarizer. With a Gemini API key the Gemini model is
// used; otherwise the extractive summarizer keeps MaxSentences sentences.
type Summarizer struct {
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	Model        string `env:"MODEL" envDefault:"gemini-2.5-flash-lite"`
	MaxSentences int    `env:"MAX_SENTENCES" envDefault:"2"`
}
