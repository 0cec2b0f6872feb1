package ai

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ai_calls_platform/backend/internal/models"
)

// Analyzer turns call metadata into an AIAnalysis. A nil Generator means no
// model is configured and every analysis comes from Fallback.
type Analyzer struct {
	Generator Generator
	Logger    zerolog.Logger
}

func (a *Analyzer) Configured() bool {
	return a != nil && a.Generator != nil
}

// Analyze never fails: generator errors are logged and answered with Fallback.
func (a *Analyzer) Analyze(ctx context.Context, md models.CallMetadata) models.AIAnalysis {
	if !a.Configured() {
		return Fallback(md)
	}

	text, err := a.Generator.Generate(ctx, BuildPrompt(md))
	if err != nil {
		a.Logger.Warn().Err(err).Str("recording_id", md.RecordingID).Msg("generation failed, using fallback analysis")
		return Fallback(md)
	}
	return Extract(text, md)
}
