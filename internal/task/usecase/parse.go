package usecase

import (
	"context"

	"dothis/internal/task"
)

// Parse previews what Create would extract from the text.
func (uc *implUseCase) Parse(ctx context.Context, input task.ParseInput) (task.ParseOutput, error) {
	res := uc.extractor.Parse(input.Text)
	uc.l.Debugf(ctx, "Parse: success=%v confidence=%.2f", res.Success, res.Confidence)
	return task.ParseOutput{Result: res}, nil
}
