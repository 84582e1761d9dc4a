package keycell

// ScopedOwner is the callback-scoped variant: WithOwner passes one to its
// callback and revokes it when the callback returns, so a handle that
// escapes the call fails with ErrOwnerRevoked on its next use.
type ScopedOwner struct {
	brand Brand
	done  bool
}

// WithOwner creates a fresh scoped owner, passes it to f for the duration
// of the call, and returns f's result. The owner is revoked on return
// even if f panics.
func WithOwner[R any](f func(o *ScopedOwner) R) R {
	o := &ScopedOwner{brand: newBrand()}
	defer func() { o.done = true }()
	return f(o)
}

// Brand returns the owner's brand.
func (o *ScopedOwner) Brand() Brand { return o.brand }

func (o *ScopedOwner) revoked() bool { return o.done }
