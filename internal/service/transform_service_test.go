package service

import (
	"errors"
	"testing"

	"github.com/itsGods/Notes-to-Store/internal/domain"
)

type mockProvider struct {
	result string
	err    error
}

func (m *mockProvider) Transform(text string, action domain.TransformAction) (string, error) {
	return m.result, m.err
}

func TestTransformService_Success(t *testing.T) {
	svc := NewTransformService(&mockProvider{result: "a tighter version"})

	got, err := svc.Transform("the original rambling text", domain.ActionSummarize)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if got != "a tighter version" {
		t.Errorf("Transform() = %q", got)
	}
}

func TestTransformService_FailurePreservesOriginal(t *testing.T) {
	original := "do not lose this"

	tests := []struct {
		name     string
		provider *mockProvider
	}{
		{name: "provider error", provider: &mockProvider{err: errors.New("upstream down")}},
		{name: "empty output", provider: &mockProvider{result: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewTransformService(tt.provider)

			got, err := svc.Transform(original, domain.ActionImprove)

			var transformErr *TransformError
			if !errors.As(err, &transformErr) {
				t.Fatalf("expected *TransformError, got %v", err)
			}
			if got != original {
				t.Errorf("original text not preserved: %q", got)
			}
		})
	}
}
