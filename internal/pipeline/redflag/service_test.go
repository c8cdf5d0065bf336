package redflag

import (
	"testing"

	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline/features"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name     string
		keywords []string
		want     []string
	}{
		{
			name:     "single red flag",
			keywords: []string{"chest pain"},
			want:     []string{"chest pain"},
		},
		{
			name:     "red flag mixed with benign symptoms",
			keywords: []string{"headache", "seizure", "fever"},
			want:     []string{"seizure"},
		},
		{
			name:     "multiple red flags keep feature order",
			keywords: []string{"stroke", "chest pain"},
			want:     []string{"stroke", "chest pain"},
		},
		{
			name:     "benign symptoms only",
			keywords: []string{"headache", "cough"},
			want:     nil,
		},
		{
			name:     "empty keywords",
			keywords: nil,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Detect(&features.StructuredFeatures{SymptomKeywords: tt.keywords})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetect_NilFeatures(t *testing.T) {
	assert.Nil(t, NewService().Detect(nil))
}
