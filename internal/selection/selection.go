// Package selection holds the single "active" entity reference.
package selection

import (
	"fmt"

	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/constants"
)

type Kind string

const (
	KindDistrict Kind = "district"
	KindLocation Kind = "location"
)

// Ref points at either a reference district or a candidate location. The zero
// value means nothing is selected.
type Ref struct {
	Kind Kind   `json:"kind,omitempty"`
	ID   string `json:"id,omitempty"`
}

func (r Ref) Empty() bool {
	return r.ID == ""
}

// Is reports whether r refers to the given entity.
func (r Ref) Is(kind Kind, id string) bool {
	return !r.Empty() && r.Kind == kind && r.ID == id
}

func District(id string) Ref { return Ref{Kind: KindDistrict, ID: id} }

func Location(id string) Ref { return Ref{Kind: KindLocation, ID: id} }

// Parse validates a ref coming from the outside.
func Parse(kind, id string) (Ref, error) {
	if id == "" {
		return Ref{}, fmt.Errorf("%w: empty id", constants.ErrInvalidSelection)
	}
	switch Kind(kind) {
	case KindDistrict, KindLocation:
		return Ref{Kind: Kind(kind), ID: id}, nil
	}
	return Ref{}, fmt.Errorf("%w: unknown kind %q", constants.ErrInvalidSelection, kind)
}

// Cleared returns the empty ref when r points at the removed location, r otherwise.
func (r Ref) Cleared(removedLocationID string) Ref {
	if r.Is(KindLocation, removedLocationID) {
		return Ref{}
	}
	return r
}
