package mdtables

import (
	"errors"
	"testing"
)

func TestPageSettings_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		page    *PageSettings
		wantErr error
	}{
		{"nil", nil, nil},
		{"defaults", DefaultPageSettings(), nil},
		{"case insensitive", &PageSettings{Size: "A4", Orientation: "LANDSCAPE", Margin: 1}, nil},
		{"min margin", &PageSettings{Size: "legal", Orientation: "portrait", Margin: MinMargin}, nil},
		{"max margin", &PageSettings{Size: "legal", Orientation: "portrait", Margin: MaxMargin}, nil},
		{"unknown size", &PageSettings{Size: "tabloid", Orientation: "portrait", Margin: 1}, ErrInvalidPageSize},
		{"empty size", &PageSettings{Orientation: "portrait", Margin: 1}, ErrInvalidPageSize},
		{"unknown orientation", &PageSettings{Size: "a4", Orientation: "diagonal", Margin: 1}, ErrInvalidOrientation},
		{"margin too small", &PageSettings{Size: "a4", Orientation: "portrait", Margin: 0.1}, ErrInvalidMargin},
		{"margin too large", &PageSettings{Size: "a4", Orientation: "portrait", Margin: 3.5}, ErrInvalidMargin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.page.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPageSettings_Dimensions(t *testing.T) {
	t.Parallel()

	var nilPage *PageSettings
	if w, h := nilPage.dimensions(); w != 8.5 || h != 11 {
		t.Errorf("nil dimensions = %vx%v, want 8.5x11", w, h)
	}
	landscape := &PageSettings{Size: PageSizeA4, Orientation: OrientationLandscape}
	if w, h := landscape.dimensions(); w != 11.69 || h != 8.27 {
		t.Errorf("a4 landscape dimensions = %vx%v, want 11.69x8.27", w, h)
	}
}
