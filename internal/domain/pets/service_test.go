package pets

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"petclinic/internal/domain/visits"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID   map[int]Pet
	nextID int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) (int, error) {
	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return p.ID, nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id int) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerID int) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type ownersStub map[int]bool

func (o ownersStub) Exists(ctx context.Context, id int) (bool, error) { return o[id], nil }

type visitsStub map[int][]visits.Visit

func (v visitsStub) ListByPet(ctx context.Context, petID int) ([]visits.Visit, error) {
	return v[petID], nil
}

var fixedNow = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestService(repo Repository, vs visitsStub) *Service {
	svc := NewService(repo, vs, ownersStub{1: true})
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestService_Create(t *testing.T) {
	svc := newTestService(newTestRepo(), nil)

	p, err := svc.Create(context.Background(), CreateInput{
		OwnerID:   1,
		Name:      " Leo ",
		BirthDate: time.Date(2010, 9, 7, 0, 0, 0, 0, time.UTC),
		Type:      "Cat",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, p.ID)
	assert.Equal(t, "Leo", p.Name)
	assert.Equal(t, TypeCat, p.Type)
}

func TestService_Create_Validation(t *testing.T) {
	svc := newTestService(newTestRepo(), nil)
	past := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   CreateInput
		want error
	}{
		{"missing owner", CreateInput{Name: "Leo", BirthDate: past, Type: "cat"}, ErrInvalidInput},
		{"empty name", CreateInput{OwnerID: 1, Name: " ", BirthDate: past, Type: "cat"}, ErrInvalidInput},
		{"unknown type", CreateInput{OwnerID: 1, Name: "Leo", BirthDate: past, Type: "dragon"}, ErrInvalidInput},
		{"future birth date", CreateInput{OwnerID: 1, Name: "Leo", BirthDate: fixedNow.Add(24 * time.Hour), Type: "cat"}, ErrInvalidInput},
		{"unknown owner", CreateInput{OwnerID: 2, Name: "Leo", BirthDate: past, Type: "cat"}, ErrOwnerNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestService_Update_KeepsOwner(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, nil)

	p, err := svc.Create(context.Background(), CreateInput{
		OwnerID: 1, Name: "Rosy", BirthDate: time.Date(2011, 4, 17, 0, 0, 0, 0, time.UTC), Type: "dog",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), p.ID, UpdateInput{
		Name: "Rosie", BirthDate: p.BirthDate, Type: "dog",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rosie", updated.Name)
	assert.Equal(t, 1, updated.OwnerID)

	_, err = svc.Update(context.Background(), 99, UpdateInput{Name: "x", BirthDate: p.BirthDate, Type: "dog"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_GetWithVisits(t *testing.T) {
	repo := newTestRepo()
	vs := visitsStub{1: {
		{ID: 1, PetID: 1, Description: "rabies shot"},
		{ID: 4, PetID: 1, Description: "spayed"},
	}}
	svc := newTestService(repo, vs)

	_, err := svc.Create(context.Background(), CreateInput{
		OwnerID: 1, Name: "Samantha", BirthDate: time.Date(2012, 9, 4, 0, 0, 0, 0, time.UTC), Type: "cat",
	})
	require.NoError(t, err)

	p, err := svc.GetWithVisits(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, p.Visits, 2)
	assert.Equal(t, "rabies shot", p.Visits[0].Description)

	_, err = svc.GetWithVisits(context.Background(), 2)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestService_Exists(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, nil)
	_, _ = repo.Create(context.Background(), Pet{OwnerID: 1, Name: "Max"})

	ok, err := svc.Exists(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Exists(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseType(t *testing.T) {
	typ, ok := ParseType(" HAMSTER ")
	assert.True(t, ok)
	assert.Equal(t, TypeHamster, typ)

	_, ok = ParseType("unicorn")
	assert.False(t, ok)

	assert.Len(t, Types(), 6)
}
