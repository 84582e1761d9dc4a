// Package gen renders generated cell-family source files for cellgen.
// A generated family declares its own unexported marker type, which makes
// every generated family a distinct Go type: presenting one family's
// owner to another family's cell is rejected by the compiler, even when
// both families were generated from the same requested name.
package gen

import (
	"bytes"
	"errors"
	"strings"
	"text/template"
	"unicode"
)

// Params selects the package and family names for one generated file.
type Params struct {
	// Package is the Go package name the file is generated into.
	Package string
	// Family is the exported name prefix for the owner and cell types.
	Family string
}

// Parameter validation errors.
var (
	ErrPackageInvalid = errors.New("package must be a lower-case Go identifier")
	ErrFamilyInvalid  = errors.New("family must be an exported Go identifier")
)

// Validate checks that the parameters form legal Go names.
func (p Params) Validate() error {
	if !isIdent(p.Package) || p.Package != strings.ToLower(p.Package) {
		return ErrPackageInvalid
	}
	if !isIdent(p.Family) || !unicode.IsUpper(rune(p.Family[0])) {
		return ErrFamilyInvalid
	}
	return nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}

// marker returns the unexported marker type name for the family.
func (p Params) marker() string {
	return strings.ToLower(p.Family[:1]) + p.Family[1:] + "Marker"
}

// Render produces the generated family source file.
func Render(p Params) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err := familyTmpl.Execute(&buf, struct {
		Package string
		Family  string
		Marker  string
	}{p.Package, p.Family, p.marker()})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var familyTmpl = template.Must(template.New("family").Parse(`// Code generated by cellgen. DO NOT EDIT.

// Package {{.Package}} provides the {{.Family}} cell family: an owner+cell
// pair structurally distinct from every other generated family.
package {{.Package}}

import "github.com/mesh-intelligence/keycell/pkg/keycell"

// {{.Marker}} tags this family. It is unexported, so no other package can
// instantiate a compatible owner or cell type.
type {{.Marker}} struct{}

// {{.Family}}Owner is the capability for {{.Family}} cells.
type {{.Family}}Owner = keycell.FamilyOwner[{{.Marker}}]

// {{.Family}}Cell owns one value accessible only through a {{.Family}}Owner.
type {{.Family}}Cell[T any] = keycell.FamilyCell[{{.Marker}}, T]

// New{{.Family}}Owner creates a new owner with a fresh brand.
func New{{.Family}}Owner() *{{.Family}}Owner {
	return keycell.NewFamilyOwner[{{.Marker}}]()
}

// New{{.Family}}Cell creates a cell stamped with o's brand.
func New{{.Family}}Cell[T any](o *{{.Family}}Owner, value T) *{{.Family}}Cell[T] {
	return keycell.NewFamilyCell(o, value)
}

// {{.Family}}Read returns a shared view of c's content.
func {{.Family}}Read[T any](o *{{.Family}}Owner, c *{{.Family}}Cell[T]) (*T, error) {
	return keycell.FamilyRead(o, c)
}

// {{.Family}}Write returns a mutable view of c's content.
func {{.Family}}Write[T any](o *{{.Family}}Owner, c *{{.Family}}Cell[T]) (*T, error) {
	return keycell.FamilyWrite(o, c)
}

// {{.Family}}Write2 returns two independent mutable views of distinct cells.
func {{.Family}}Write2[T any](o *{{.Family}}Owner, a, b *{{.Family}}Cell[T]) (*T, *T, error) {
	return keycell.FamilyWrite2(o, a, b)
}
`))
