// Package reconcile applies a client-submitted list of child records to the
// children a parent currently owns. Entries carrying an identity update the
// matching child, entries without one are created, and children that no entry
// references are deleted. Apply must run inside the caller's transaction.
package reconcile

import (
	"context"
	"fmt"

	domainerrors "github.com/Yakorrr/merchandising-management-system/internal/domain/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/errors"

	"github.com/google/uuid"
)

// Child is a persisted record owned by a parent.
type Child interface {
	GetID() uuid.UUID
}

// Entry is one element of the target list. A nil ID asks for a new child.
type Entry[P any] struct {
	ID      *uuid.UUID
	Payload P
}

// Key is one scoped uniqueness value, e.g. {visit_order, 3}.
type Key struct {
	Field string
	Value string
}

func (k Key) String() string {
	return k.Field + " " + k.Value
}

// Collection is the child set of a single parent, bound to a transaction.
type Collection[C Child, P any] interface {
	// Children returns every child currently persisted under the parent.
	Children(ctx context.Context) ([]C, error)
	Create(ctx context.Context, payload P) (C, error)
	Update(ctx context.Context, child C, payload P) (C, error)
	Delete(ctx context.Context, children []C) error
}

// KeyReleaser is implemented by collections whose uniqueness keys are also
// enforced by the database. ReleaseKeys moves the keys of the given children
// out of the way so that updates may swap values between them.
type KeyReleaser[C Child] interface {
	ReleaseKeys(ctx context.Context, children []C) error
}

// Keys projects uniqueness keys out of payloads and persisted children.
// A zero Keys enforces nothing.
type Keys[C Child, P any] struct {
	OfPayload func(P) []Key
	OfChild   func(C) []Key
}

func (k Keys[C, P]) payload(p P) []Key {
	if k.OfPayload == nil {
		return nil
	}

	return k.OfPayload(p)
}

func (k Keys[C, P]) child(c C) []Key {
	if k.OfChild == nil {
		return nil
	}

	return k.OfChild(c)
}

// Result is the child set after a successful Apply.
type Result[C Child] struct {
	Children []C
	Created  int
	Updated  int
	Deleted  int
}

// CheckTarget rejects target lists whose entries repeat a uniqueness key or an
// identity. It touches no storage.
func CheckTarget[C Child, P any](target []Entry[P], keys Keys[C, P]) error {
	seenKeys := make(map[Key]struct{})
	seenIDs := make(map[uuid.UUID]struct{})

	for _, entry := range target {
		if entry.ID != nil {
			if _, dup := seenIDs[*entry.ID]; dup {
				return domainerrors.ErrDuplicateKey.WithDetails(fmt.Sprintf("id %s appears more than once", entry.ID.String()))
			}
			seenIDs[*entry.ID] = struct{}{}
		}

		for _, key := range keys.payload(entry.Payload) {
			if _, dup := seenKeys[key]; dup {
				return domainerrors.ErrDuplicateKey.WithDetails(key.String() + " appears more than once")
			}
			seenKeys[key] = struct{}{}
		}
	}

	return nil
}

type update[C Child, P any] struct {
	child   C
	payload P
}

// Apply reconciles the collection with target. Every check runs before the
// first write, so a failure leaves the collection untouched even before the
// surrounding transaction rolls back.
func Apply[C Child, P any](ctx context.Context, coll Collection[C, P], target []Entry[P], keys Keys[C, P]) (*Result[C], error) {
	if err := CheckTarget(target, keys); err != nil {
		return nil, err
	}

	current, err := coll.Children(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load current children")
	}

	byID := make(map[uuid.UUID]C, len(current))
	for _, child := range current {
		byID[child.GetID()] = child
	}

	referenced := make(map[uuid.UUID]struct{}, len(target))
	updates := make([]update[C, P], 0, len(target))
	creates := make([]P, 0, len(target))

	for _, entry := range target {
		if entry.ID == nil {
			creates = append(creates, entry.Payload)

			continue
		}

		child, ok := byID[*entry.ID]
		if !ok {
			return nil, domainerrors.ErrChildNotFound.WithDetails("id " + entry.ID.String())
		}
		referenced[*entry.ID] = struct{}{}
		updates = append(updates, update[C, P]{child: child, payload: entry.Payload})
	}

	deletes := make([]C, 0, len(current))
	held := make(map[Key]struct{})
	for _, child := range current {
		if _, ok := referenced[child.GetID()]; ok {
			continue
		}
		deletes = append(deletes, child)
		for _, key := range keys.child(child) {
			held[key] = struct{}{}
		}
	}

	// A new child may not take a key still held by an existing child the
	// target list leaves out.
	for _, payload := range creates {
		for _, key := range keys.payload(payload) {
			if _, taken := held[key]; taken {
				return nil, domainerrors.ErrDuplicateKey.WithDetails(key.String() + " is already used by an existing item")
			}
		}
	}

	if len(deletes) > 0 {
		if err := coll.Delete(ctx, deletes); err != nil {
			return nil, errors.Wrap(err, "delete omitted children")
		}
	}

	if releaser, ok := coll.(KeyReleaser[C]); ok && len(updates) > 0 {
		moved := make([]C, 0, len(updates))
		for _, u := range updates {
			moved = append(moved, u.child)
		}
		if err := releaser.ReleaseKeys(ctx, moved); err != nil {
			return nil, errors.Wrap(err, "release keys")
		}
	}

	for _, u := range updates {
		if _, err := coll.Update(ctx, u.child, u.payload); err != nil {
			return nil, errors.Wrapf(err, "update child %s", u.child.GetID())
		}
	}

	for _, payload := range creates {
		if _, err := coll.Create(ctx, payload); err != nil {
			return nil, errors.Wrap(err, "create child")
		}
	}

	children, err := coll.Children(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "reload children")
	}

	return &Result[C]{
		Children: children,
		Created:  len(creates),
		Updated:  len(updates),
		Deleted:  len(deletes),
	}, nil
}
