package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{
			name:   "valid names",
			params: Params{Package: "demofam", Family: "Demo"},
		},
		{
			name:    "empty package",
			params:  Params{Package: "", Family: "Demo"},
			wantErr: ErrPackageInvalid,
		},
		{
			name:    "upper-case package",
			params:  Params{Package: "DemoFam", Family: "Demo"},
			wantErr: ErrPackageInvalid,
		},
		{
			name:    "package with punctuation",
			params:  Params{Package: "demo-fam", Family: "Demo"},
			wantErr: ErrPackageInvalid,
		},
		{
			name:    "empty family",
			params:  Params{Package: "demofam", Family: ""},
			wantErr: ErrFamilyInvalid,
		},
		{
			name:    "unexported family",
			params:  Params{Package: "demofam", Family: "demo"},
			wantErr: ErrFamilyInvalid,
		},
		{
			name:    "family starting with digit",
			params:  Params{Package: "demofam", Family: "9Demo"},
			wantErr: ErrFamilyInvalid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRenderDeclarations(t *testing.T) {
	src, err := Render(Params{Package: "rosterfam", Family: "Roster"})
	require.NoError(t, err)

	got := string(src)
	assert.Contains(t, got, "// Code generated by cellgen. DO NOT EDIT.")
	assert.Contains(t, got, "package rosterfam")
	assert.Contains(t, got, "type rosterMarker struct{}")
	assert.Contains(t, got, "type RosterOwner = keycell.FamilyOwner[rosterMarker]")
	assert.Contains(t, got, "type RosterCell[T any] = keycell.FamilyCell[rosterMarker, T]")
	assert.Contains(t, got, "func NewRosterOwner() *RosterOwner")
	assert.Contains(t, got, "func NewRosterCell[T any](o *RosterOwner, value T) *RosterCell[T]")
	assert.Contains(t, got, "func RosterRead[T any](o *RosterOwner, c *RosterCell[T]) (*T, error)")
	assert.Contains(t, got, "func RosterWrite2[T any](o *RosterOwner, a, b *RosterCell[T]) (*T, *T, error)")
}

func TestRenderInvalidParams(t *testing.T) {
	_, err := Render(Params{Package: "x", Family: "bad"})
	assert.ErrorIs(t, err, ErrFamilyInvalid)
}

// TestRenderMatchesCheckedInFamily keeps pkg/demofam in sync with the
// template: regenerating it must be a no-op.
func TestRenderMatchesCheckedInFamily(t *testing.T) {
	src, err := Render(Params{Package: "demofam", Family: "Demo"})
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join("..", "..", "pkg", "demofam", "demofam.go"))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(src))
}
