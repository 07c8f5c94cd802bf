package reconcile

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"testing"

	domainerrors "github.com/Yakorrr/merchandising-management-system/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type visit struct {
	id    uuid.UUID
	order int
	note  string
}

func (v *visit) GetID() uuid.UUID { return v.id }

type visitSpec struct {
	order int
	note  string
}

// memoryVisits keeps children in a map and enforces the unique order the way a
// database index would.
type memoryVisits struct {
	rows     map[uuid.UUID]*visit
	writes   int
	released int
	failOn   string
}

func newMemoryVisits(orders ...int) *memoryVisits {
	m := &memoryVisits{rows: map[uuid.UUID]*visit{}}
	for _, o := range orders {
		id := uuid.New()
		m.rows[id] = &visit{id: id, order: o}
	}

	return m
}

func (m *memoryVisits) Children(context.Context) ([]*visit, error) {
	out := make([]*visit, 0, len(m.rows))
	for _, v := range m.rows {
		cp := *v
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].order < out[j].order })

	return out, nil
}

func (m *memoryVisits) orderTaken(order int, except uuid.UUID) bool {
	for id, v := range m.rows {
		if id != except && v.order == order {
			return true
		}
	}

	return false
}

func (m *memoryVisits) Create(_ context.Context, p visitSpec) (*visit, error) {
	if m.failOn == "create" {
		return nil, errors.New("boom")
	}
	if m.orderTaken(p.order, uuid.Nil) {
		return nil, domainerrors.ErrDuplicateKey
	}
	m.writes++
	v := &visit{id: uuid.New(), order: p.order, note: p.note}
	m.rows[v.id] = v

	return v, nil
}

func (m *memoryVisits) Update(_ context.Context, c *visit, p visitSpec) (*visit, error) {
	if m.orderTaken(p.order, c.id) {
		return nil, domainerrors.ErrDuplicateKey
	}
	m.writes++
	row := m.rows[c.id]
	row.order = p.order
	row.note = p.note

	return row, nil
}

func (m *memoryVisits) Delete(_ context.Context, children []*visit) error {
	m.writes++
	for _, c := range children {
		delete(m.rows, c.id)
	}

	return nil
}

func (m *memoryVisits) ReleaseKeys(_ context.Context, children []*visit) error {
	m.released += len(children)
	for _, c := range children {
		m.rows[c.id].order = -m.rows[c.id].order
	}

	return nil
}

func (m *memoryVisits) idAt(order int) uuid.UUID {
	for id, v := range m.rows {
		if v.order == order {
			return id
		}
	}

	return uuid.Nil
}

func (m *memoryVisits) snapshot() map[uuid.UUID]visit {
	out := make(map[uuid.UUID]visit, len(m.rows))
	for id, v := range m.rows {
		out[id] = *v
	}

	return out
}

var visitKeys = Keys[*visit, visitSpec]{
	OfPayload: func(p visitSpec) []Key { return []Key{{Field: "visit_order", Value: strconv.Itoa(p.order)}} },
	OfChild:   func(c *visit) []Key { return []Key{{Field: "visit_order", Value: strconv.Itoa(c.order)}} },
}

func ptr(id uuid.UUID) *uuid.UUID { return &id }

func orders(children []*visit) []int {
	out := make([]int, 0, len(children))
	for _, c := range children {
		out = append(out, c.order)
	}

	return out
}

func TestApply_DeleteByOmission(t *testing.T) {
	ctx := context.Background()
	coll := newMemoryVisits(1, 2, 3)
	second := coll.idAt(2)

	res, err := Apply[*visit, visitSpec](ctx, coll, []Entry[visitSpec]{
		{ID: ptr(second), Payload: visitSpec{order: 1}},
	}, visitKeys)

	require.NoError(t, err)
	require.Len(t, res.Children, 1)
	assert.Equal(t, second, res.Children[0].id)
	assert.Equal(t, 1, res.Children[0].order)
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 2, res.Deleted)
}

func TestApply_UnknownIdentityLeavesChildrenUntouched(t *testing.T) {
	ctx := context.Background()
	coll := newMemoryVisits(1, 2, 3)
	before := coll.snapshot()

	_, err := Apply[*visit, visitSpec](ctx, coll, []Entry[visitSpec]{
		{ID: ptr(coll.idAt(1)), Payload: visitSpec{order: 1, note: "changed"}},
		{Payload: visitSpec{order: 5}},
		{ID: ptr(uuid.New()), Payload: visitSpec{order: 4}},
	}, visitKeys)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrChildNotFound)
	assert.Equal(t, before, coll.snapshot())
	assert.Zero(t, coll.writes)
}

func TestApply_DuplicateKeyInTarget(t *testing.T) {
	ctx := context.Background()
	coll := newMemoryVisits(1)
	before := coll.snapshot()

	_, err := Apply[*visit, visitSpec](ctx, coll, []Entry[visitSpec]{
		{ID: ptr(coll.idAt(1)), Payload: visitSpec{order: 2}},
		{Payload: visitSpec{order: 2}},
	}, visitKeys)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DUPLICATE_KEY", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "visit_order 2")
	assert.Equal(t, before, coll.snapshot())
}

func TestApply_CreateCollidesWithOmittedChild(t *testing.T) {
	ctx := context.Background()
	coll := newMemoryVisits(5)
	before := coll.snapshot()

	_, err := Apply[*visit, visitSpec](ctx, coll, []Entry[visitSpec]{
		{Payload: visitSpec{order: 5}},
	}, visitKeys)

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateKey)
	assert.Equal(t, before, coll.snapshot())
	assert.Zero(t, coll.writes)
}

func TestApply_CreateMayReuseKeyVacatedByUpdate(t *testing.T) {
	ctx := context.Background()
	coll := newMemoryVisits(1)
	first := coll.idAt(1)

	res, err := Apply[*visit, visitSpec](ctx, coll, []Entry[visitSpec]{
		{ID: ptr(first), Payload: visitSpec{order: 2}},
		{Payload: visitSpec{order: 1}},
	}, visitKeys)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, orders(res.Children))
	assert.Equal(t, first, res.Children[1].id)
}

func TestApply_SwapKeysBetweenUpdates(t *testing.T) {
	ctx := context.Background()
	coll := newMemoryVisits(1, 2)
	first, second := coll.idAt(1), coll.idAt(2)

	res, err := Apply[*visit, visitSpec](ctx, coll, []Entry[visitSpec]{
		{ID: ptr(first), Payload: visitSpec{order: 2}},
		{ID: ptr(second), Payload: visitSpec{order: 1}},
	}, visitKeys)

	require.NoError(t, err)
	assert.Equal(t, 2, coll.released)
	assert.Equal(t, second, res.Children[0].id)
	assert.Equal(t, first, res.Children[1].id)
}

func TestApply_RepeatedIdentityRejected(t *testing.T) {
	ctx := context.Background()
	coll := newMemoryVisits(1)
	id := coll.idAt(1)

	_, err := Apply[*visit, visitSpec](ctx, coll, []Entry[visitSpec]{
		{ID: ptr(id), Payload: visitSpec{order: 1}},
		{ID: ptr(id), Payload: visitSpec{order: 2}},
	}, visitKeys)

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateKey)
}

func TestApply_IdempotentOnRepeat(t *testing.T) {
	ctx := context.Background()
	coll := newMemoryVisits()

	first, err := Apply[*visit, visitSpec](ctx, coll, []Entry[visitSpec]{
		{Payload: visitSpec{order: 1, note: "a"}},
		{Payload: visitSpec{order: 2, note: "b"}},
	}, visitKeys)
	require.NoError(t, err)

	again := make([]Entry[visitSpec], 0, len(first.Children))
	for _, c := range first.Children {
		again = append(again, Entry[visitSpec]{ID: ptr(c.id), Payload: visitSpec{order: c.order, note: c.note}})
	}

	second, err := Apply[*visit, visitSpec](ctx, coll, again, visitKeys)
	require.NoError(t, err)
	assert.Equal(t, first.Children, second.Children)
	assert.Zero(t, second.Created)
	assert.Zero(t, second.Deleted)
}

func TestApply_CompletenessWithoutKeys(t *testing.T) {
	ctx := context.Background()
	coll := newMemoryVisits(1, 2)

	res, err := Apply[*visit, visitSpec](ctx, coll, []Entry[visitSpec]{
		{Payload: visitSpec{order: 7}},
		{Payload: visitSpec{order: 8}},
		{Payload: visitSpec{order: 9}},
	}, Keys[*visit, visitSpec]{})

	require.NoError(t, err)
	assert.Equal(t, []int{7, 8, 9}, orders(res.Children))
	assert.Equal(t, 2, res.Deleted)
}

func TestApply_BackendFailurePropagates(t *testing.T) {
	ctx := context.Background()
	coll := newMemoryVisits()
	coll.failOn = "create"

	_, err := Apply[*visit, visitSpec](ctx, coll, []Entry[visitSpec]{{Payload: visitSpec{order: 1}}}, visitKeys)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create child")
}

func TestCheckTarget_AllowsEmptyAndKeyless(t *testing.T) {
	assert.NoError(t, CheckTarget[*visit, visitSpec](nil, visitKeys))
	assert.NoError(t, CheckTarget[*visit, visitSpec]([]Entry[visitSpec]{
		{Payload: visitSpec{order: 1}}, {Payload: visitSpec{order: 1}},
	}, Keys[*visit, visitSpec]{}))
}
