package domain

import "testing"

func TestDetectDraft(t *testing.T) {
	tests := []struct {
		name   string
		schema any
		want   Draft
	}{
		{
			name:   "draft-07 url",
			schema: map[string]any{"$schema": "http://json-schema.org/draft-07/schema#"},
			want:   Draft7,
		},
		{
			name:   "draft-04 url",
			schema: map[string]any{"$schema": "http://json-schema.org/draft-04/schema#"},
			want:   Draft4,
		},
		{
			name:   "draft-06 url",
			schema: map[string]any{"$schema": "http://json-schema.org/draft-06/schema#"},
			want:   Draft6,
		},
		{
			name:   "2019-09 url",
			schema: map[string]any{"$schema": "https://json-schema.org/draft/2019-09/schema"},
			want:   Draft2019,
		},
		{
			name:   "2020-12 url",
			schema: map[string]any{"$schema": "https://json-schema.org/draft/2020-12/schema"},
			want:   Draft2020,
		},
		{
			name:   "missing $schema",
			schema: map[string]any{"type": "object"},
			want:   Draft2020,
		},
		{
			name:   "unrecognized url",
			schema: map[string]any{"$schema": "https://example.com/my-schema"},
			want:   Draft2020,
		},
		{
			name:   "non-string $schema",
			schema: map[string]any{"$schema": float64(7)},
			want:   Draft2020,
		},
		{
			name:   "non-object schema",
			schema: true,
			want:   Draft2020,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDraft(tt.schema); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseDraft(t *testing.T) {
	tests := []struct {
		input   string
		want    Draft
		wantErr bool
	}{
		{input: "", want: DraftAuto},
		{input: "auto", want: DraftAuto},
		{input: "draft4", want: Draft4},
		{input: "draft-07", want: Draft7},
		{input: "2019-09", want: Draft2019},
		{input: "DRAFT2020-12", want: Draft2020},
		{input: "draft5", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDraft(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("expected error for %q", tt.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("expected %s for %q, got %s", tt.want, tt.input, got)
		}
	}
}
