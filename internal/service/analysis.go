package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ai_calls_platform/backend/internal/ai"
	"github.com/ai_calls_platform/backend/internal/models"
	"github.com/ai_calls_platform/backend/internal/store"
)

// MaxBatchSize caps how many recordings one batch request analyzes. Extra ids
// are dropped.
const MaxBatchSize = 10

type AnalysisService struct {
	Store    *store.Store
	Analyzer *ai.Analyzer
	Logger   zerolog.Logger
}

// Analyze loads one recording and analyzes it. Any load failure is reported
// as store.ErrNotFound.
func (s *AnalysisService) Analyze(ctx context.Context, recordingID string) (models.AIAnalysis, error) {
	md, err := s.Store.Load(ctx, recordingID)
	if err != nil {
		s.Logger.Warn().Err(err).Str("recording_id", recordingID).Msg("metadata unavailable for analysis")
		return models.AIAnalysis{}, store.ErrNotFound
	}
	return s.Analyzer.Analyze(ctx, md), nil
}

// AnalyzeBatch analyzes up to MaxBatchSize recordings concurrently. Results
// keep input order; ids that do not resolve are left out.
func (s *AnalysisService) AnalyzeBatch(ctx context.Context, recordingIDs []string) []models.BatchAnalysis {
	if len(recordingIDs) > MaxBatchSize {
		recordingIDs = recordingIDs[:MaxBatchSize]
	}

	results := make([]*models.BatchAnalysis, len(recordingIDs))
	var wg sync.WaitGroup
	for i, id := range recordingIDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			analysis, err := s.Analyze(ctx, id)
			if err != nil {
				return
			}
			results[i] = &models.BatchAnalysis{RecordingID: id, Analysis: analysis}
		}(i, id)
	}
	wg.Wait()

	out := make([]models.BatchAnalysis, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}
