package keycell

import (
	"reflect"
	"sync"
)

// StaticOwner is the marker-type variant: at most one live owner per
// marker type M exists in the process at any time. The brand is bound to
// M on first acquisition and reused, so a successor owner acquired after
// Release governs the same cells as its predecessor did.
type StaticOwner[M any] struct {
	brand    Brand
	released bool
}

// staticSlot is the per-marker-type registry entry. The brand is
// allocated once, on the type's first acquisition, and survives Release
// so successor owners share it.
type staticSlot struct {
	live  bool
	brand Brand
}

// staticOwners tracks the owner slot for each marker type. The key is
// the reflect.Type, never a name: distinct marker types get distinct
// brands even when their names collide or are empty. This registry is
// the only process-global state in the package.
var staticOwners = struct {
	sync.Mutex
	slots map[reflect.Type]*staticSlot
}{slots: make(map[reflect.Type]*staticSlot)}

// NewStaticOwner creates the owner for marker type M. It returns
// ErrDuplicateOwner if an owner for M is already live.
func NewStaticOwner[M any]() (*StaticOwner[M], error) {
	t := reflect.TypeFor[M]()

	staticOwners.Lock()
	defer staticOwners.Unlock()

	s, ok := staticOwners.slots[t]
	if !ok {
		s = &staticSlot{brand: newBrand()}
		staticOwners.slots[t] = s
	}
	if s.live {
		return nil, ErrDuplicateOwner
	}
	s.live = true

	return &StaticOwner[M]{brand: s.brand}, nil
}

// Brand returns the owner's brand.
func (o *StaticOwner[M]) Brand() Brand { return o.brand }

func (o *StaticOwner[M]) revoked() bool { return o.released }

// Release frees the marker-type slot so a new owner may be constructed,
// and revokes this owner: any later access through it returns
// ErrOwnerRevoked. Release is idempotent.
func (o *StaticOwner[M]) Release() {
	if o.released {
		return
	}
	o.released = true

	staticOwners.Lock()
	defer staticOwners.Unlock()
	if s, ok := staticOwners.slots[reflect.TypeFor[M]()]; ok {
		s.live = false
	}
}
