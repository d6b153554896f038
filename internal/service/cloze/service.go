package cloze

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/panjuncai/Sola-sub000/internal/domain"
	"github.com/panjuncai/Sola-sub000/internal/sentence"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type tokenizer interface {
	Tokenize(text, lang string) []string
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements cloze practice checks.
type Service struct {
	cmp *Comparator
	log *slog.Logger
	cfg domain.PracticeConfig
}

// NewService creates a new cloze Service.
func NewService(log *slog.Logger, tok tokenizer, cfg domain.PracticeConfig) (*Service, error) {
	if cfg.MaxTextRunes <= 0 || cfg.MaxBatchItems <= 0 || cfg.BatchWorkers <= 0 {
		return nil, fmt.Errorf("invalid practice limits: %+v", cfg)
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = domain.LanguageDefault
	}

	return &Service{
		cmp: NewComparator(tok),
		log: log.With("service", "cloze"),
		cfg: cfg,
	}, nil
}

// BatchResult holds per-item results in input order.
type BatchResult struct {
	Results      []domain.ClozeResult
	CorrectCount int
	Total        int
}

// Compare checks a single attempt.
func (s *Service) Compare(ctx context.Context, input CompareInput) (*domain.ClozeResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkLength(input.Expected, input.Attempt, "expected", "attempt"); err != nil {
		return nil, err
	}

	lang := s.language(input.Language)
	result := s.cmp.Compare(input.Expected, input.Attempt, lang.String())

	s.log.DebugContext(ctx, "cloze compared",
		slog.String("language", lang.String()),
		slog.Int("segments", len(result.Segments)),
		slog.Bool("correct", result.Correct),
	)

	return &result, nil
}

// CompareBatch checks many attempts concurrently and keeps input order.
func (s *Service) CompareBatch(ctx context.Context, input CompareBatchInput) (*BatchResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if len(input.Items) > s.cfg.MaxBatchItems {
		return nil, fmt.Errorf("%w: %d items, max %d", domain.ErrTooLarge, len(input.Items), s.cfg.MaxBatchItems)
	}

	var errs []domain.FieldError
	for i, item := range input.Items {
		errs = append(errs, s.lengthErrors(item.Expected, item.Attempt,
			fmt.Sprintf("items[%d].expected", i), fmt.Sprintf("items[%d].attempt", i))...)
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	start := time.Now()
	lang := s.language(input.Language).String()
	results := make([]domain.ClozeResult, len(input.Items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.BatchWorkers)
	for i, item := range input.Items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.cmp.Compare(item.Expected, item.Attempt, lang)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("compare batch: %w", err)
	}

	out := &BatchResult{Results: results, Total: len(results)}
	for _, r := range results {
		if r.Correct {
			out.CorrectCount++
		}
	}

	s.log.InfoContext(ctx, "cloze batch compared",
		slog.String("language", lang),
		slog.Int("items", out.Total),
		slog.Int("correct", out.CorrectCount),
		slog.Duration("duration", time.Since(start)),
	)

	return out, nil
}

// SplitSentences breaks imported article text into practice sentences.
func (s *Service) SplitSentences(ctx context.Context, input SplitInput) ([]string, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	limit := s.cfg.MaxTextRunes * s.cfg.MaxBatchItems
	if n := utf8.RuneCountInString(input.Text); n > limit {
		return nil, fmt.Errorf("%w: text has %d characters, max %d", domain.ErrTooLarge, n, limit)
	}

	sentences := sentence.Split(input.Text)

	s.log.DebugContext(ctx, "article split",
		slog.Int("sentences", len(sentences)),
	)

	return sentences, nil
}

func (s *Service) language(tag string) domain.Language {
	return domain.ParseLanguageOr(tag, s.cfg.DefaultLanguage)
}

func (s *Service) checkLength(expected, attempt, expField, actField string) error {
	if errs := s.lengthErrors(expected, attempt, expField, actField); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (s *Service) lengthErrors(expected, attempt, expField, actField string) []domain.FieldError {
	var errs []domain.FieldError
	msg := fmt.Sprintf("max %d characters", s.cfg.MaxTextRunes)
	if utf8.RuneCountInString(expected) > s.cfg.MaxTextRunes {
		errs = append(errs, domain.FieldError{Field: expField, Message: msg})
	}
	if utf8.RuneCountInString(attempt) > s.cfg.MaxTextRunes {
		errs = append(errs, domain.FieldError{Field: actField, Message: msg})
	}
	return errs
}
