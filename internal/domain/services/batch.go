package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ersonp/klisis/internal/domain/entities"
	"github.com/ersonp/klisis/internal/infrastructure/parsers"
)

// DefaultWorkers is the batch parallelism used when none is configured.
const DefaultWorkers = 4

// RecordError describes a batch record that could not be declined.
type RecordError struct {
	Line       int
	Nominative string
	Err        error
}

func (e RecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d (%s): %v", e.Line, e.Nominative, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Nominative, e.Err)
}

func (e RecordError) Unwrap() error { return e.Err }

// BatchResult holds the nouns that were declined, in input order, and the
// records that were skipped.
type BatchResult struct {
	Nouns   []*entities.Noun
	Skipped []RecordError
}

// BatchService declines many records, keeping input order in the output.
type BatchService struct {
	paradigms *ParadigmService
	workers   int
}

// NewBatchService creates a new BatchService. Workers below 1 use DefaultWorkers.
func NewBatchService(paradigms *ParadigmService, workers int) *BatchService {
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &BatchService{
		paradigms: paradigms,
		workers:   workers,
	}
}

// Decline declines every record. A record that fails classification, gender
// decoding or stem extraction is reported in Skipped and does not stop the batch.
func (s *BatchService) Decline(ctx context.Context, records []parsers.RawRecord) (*BatchResult, error) {
	nouns := make([]*entities.Noun, len(records))
	failures := make([]error, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i := range records {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			nouns[i], failures[i] = s.declineRecord(records[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("declining batch: %w", err)
	}

	result := &BatchResult{Nouns: make([]*entities.Noun, 0, len(records))}
	for i, noun := range nouns {
		if failures[i] != nil {
			lineNum := records[i].LineNum
			if lineNum == 0 {
				lineNum = i + 1
			}
			result.Skipped = append(result.Skipped, RecordError{
				Line:       lineNum,
				Nominative: records[i].Nominative,
				Err:        failures[i],
			})
			continue
		}
		result.Nouns = append(result.Nouns, noun)
	}

	return result, nil
}

func (s *BatchService) declineRecord(rec parsers.RawRecord) (*entities.Noun, error) {
	switch {
	case rec.Nominative == "":
		return nil, fmt.Errorf("%w: nominative", entities.ErrMissingField)
	case rec.Genitive == "":
		return nil, fmt.Errorf("%w: genitive", entities.ErrMissingField)
	case rec.Gender == "":
		return nil, fmt.Errorf("%w: gender", entities.ErrMissingField)
	}
	return s.paradigms.DeclineTokens(rec.Nominative, rec.Genitive, rec.Gender)
}
