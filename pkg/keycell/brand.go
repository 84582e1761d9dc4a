package keycell

import "github.com/google/uuid"

// Brand is the identity linking an owner to the cells it may access.
// A brand is fixed when its owner (and each of its cells) is constructed
// and never changes afterwards. The zero Brand belongs to no owner.
type Brand struct {
	id string
}

// newBrand allocates a fresh process-unique brand.
func newBrand() Brand {
	return Brand{id: generateID()}
}

// IsZero reports whether b is the zero brand.
func (b Brand) IsZero() bool {
	return b.id == ""
}

// String returns the brand identity for diagnostics.
func (b Brand) String() string {
	return b.id
}

// generateID generates a new UUID v7 for brand identities.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
