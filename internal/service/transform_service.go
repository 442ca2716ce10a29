package service

import (
	"strings"

	"github.com/itsGods/Notes-to-Store/internal/domain"
	"github.com/itsGods/Notes-to-Store/internal/transform"
)

type TransformService struct {
	provider transform.Provider
}

func NewTransformService(provider transform.Provider) *TransformService {
	return &TransformService{provider: provider}
}

// Transform runs text through the generative provider. It always returns
// usable text: on provider failure or empty output the original text
// comes back untouched together with a *TransformError.
func (s *TransformService) Transform(text string, action domain.TransformAction) (string, error) {
	result, err := s.provider.Transform(text, action)
	if err != nil {
		return text, &TransformError{Action: string(action), Err: err}
	}

	if strings.TrimSpace(result) == "" {
		return text, &TransformError{Action: string(action), Err: errEmptyTransform}
	}

	return result, nil
}
