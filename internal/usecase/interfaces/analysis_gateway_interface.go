package interfaces

import "context"

// IAnalysisGateway abstracts the external narrative-analysis service
// (e.g. Google Gemini).
//
// The calibration use case builds the full prompt (equipment spec plus every
// measurement group); the gateway only turns it into free text. A failed call
// is mapped to a fixed fallback string by the caller, never left silent.
type IAnalysisGateway interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
