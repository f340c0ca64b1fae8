package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestNewResolver(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		wantCustom bool
		wantErr    error
	}{
		{name: "embedded only", path: ""},
		{name: "custom directory", path: t.TempDir(), wantCustom: true},
		{name: "invalid directory", path: "/nonexistent/path/abc123xyz", wantErr: ErrInvalidBasePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := NewResolver(tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewResolver(%q) error = %v, want %v", tt.path, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewResolver(%q) unexpected error: %v", tt.path, err)
			}
			if r.HasCustomLoader() != tt.wantCustom {
				t.Errorf("HasCustomLoader() = %v, want %v", r.HasCustomLoader(), tt.wantCustom)
			}
		})
	}
}

func TestResolver_LoadStyle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeStyle(t, dir, "default", "/* override */")
	writeStyle(t, dir, "house", "/* house */")
	r, err := NewResolver(dir)
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	tests := []struct {
		name        string
		style       string
		wantContain string
		wantErr     error
	}{
		{name: "custom overrides embedded", style: "default", wantContain: "override"},
		{name: "custom only", style: "house", wantContain: "house"},
		{name: "falls back to embedded", style: "print", wantContain: "compact-container"},
		{name: "missing everywhere", style: "nope", wantErr: ErrStyleNotFound},
		{name: "invalid name does not fall back", style: "a/b", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.LoadStyle(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.style, err)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadStyle(%q) = %q, want it to contain %q", tt.style, got, tt.wantContain)
			}
		})
	}
}
