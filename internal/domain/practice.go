package domain

// PracticeConfig holds limits for cloze practice checks (pure domain type).
type PracticeConfig struct {
	DefaultLanguage Language
	MaxTextRunes    int
	MaxBatchItems   int
	BatchWorkers    int
}
