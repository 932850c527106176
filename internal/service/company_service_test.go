package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobly/internal/apperr"
	dom "jobly/internal/domain"
)

func intPtr(v int) *int             { return &v }
func strPtr(v string) *string       { return &v }
func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func newCompanyFixture(t *testing.T) (*CompanyService, *memStore) {
	t.Helper()
	s := newMemStore()
	svc := NewCompanyService(memCompanyRepo{s}, nil, nil)
	_, err := svc.Create(context.Background(), dom.Company{
		Handle: "c1", Name: "C1", Description: "Desc1", NumEmployees: intPtr(1), LogoURL: strPtr("http://c1.img"),
	})
	require.NoError(t, err)
	return svc, s
}

func TestCompanyService_Create(t *testing.T) {
	svc, s := newCompanyFixture(t)

	c, err := svc.Create(context.Background(), dom.Company{Handle: " new ", Name: "New", Description: "New Description"})
	require.NoError(t, err)
	assert.Equal(t, "new", c.Handle)
	assert.Contains(t, s.companies, "new")
}

func TestCompanyService_CreateDuplicate(t *testing.T) {
	svc, _ := newCompanyFixture(t)

	_, err := svc.Create(context.Background(), dom.Company{Handle: "c1", Name: "Other", Description: "d"})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeConflict))
	assert.Equal(t, "Duplicate company: c1", err.Error())
}

func TestCompanyService_CreateInvalid(t *testing.T) {
	svc, s := newCompanyFixture(t)

	_, err := svc.Create(context.Background(), dom.Company{Handle: "c9", Name: "C9", NumEmployees: intPtr(-1)})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeValidation))
	assert.NotContains(t, s.companies, "c9")
}

func TestCompanyService_ListRejectsInvertedBounds(t *testing.T) {
	svc, _ := newCompanyFixture(t)

	_, err := svc.List(context.Background(), dom.CompanyFilter{MinEmployees: intPtr(5), MaxEmployees: intPtr(1)})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeValidation))
}

func TestCompanyService_ListPassesTrimmedFilter(t *testing.T) {
	svc, s := newCompanyFixture(t)

	list, err := svc.List(context.Background(), dom.CompanyFilter{NameLike: "  c ", MaxEmployees: intPtr(3)})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "c", s.lastCompanyFilter.NameLike)
	assert.Equal(t, 3, *s.lastCompanyFilter.MaxEmployees)
}

func TestCompanyService_GetNotFound(t *testing.T) {
	svc, _ := newCompanyFixture(t)

	_, err := svc.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
	assert.Equal(t, "No company: nope", err.Error())
}

func TestCompanyService_GetWithoutJobs(t *testing.T) {
	svc, _ := newCompanyFixture(t)

	c, err := svc.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "C1", c.Name)
	assert.Empty(t, c.Jobs)
}

func TestCompanyService_Update(t *testing.T) {
	svc, _ := newCompanyFixture(t)

	c, err := svc.Update(context.Background(), "c1", dom.Patch{
		{Name: "numEmployees", Value: float64(10)},
		{Name: "logoUrl", Value: nil},
	})
	require.NoError(t, err)
	assert.Equal(t, 10, *c.NumEmployees)
	assert.Nil(t, c.LogoURL)
	assert.Equal(t, "C1", c.Name)
}

func TestCompanyService_UpdateRejectedBeforeStore(t *testing.T) {
	testCases := []struct {
		name  string
		patch dom.Patch
	}{
		{name: "empty", patch: dom.Patch{}},
		{name: "handle", patch: dom.Patch{{Name: "handle", Value: "c2"}}},
		{name: "unknown", patch: dom.Patch{{Name: "founded", Value: 1999}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, s := newCompanyFixture(t)

			_, err := svc.Update(context.Background(), "c1", tc.patch)
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.CodeValidation))
			assert.Equal(t, 0, s.updates)
			assert.Equal(t, "C1", s.companies["c1"].Name)
		})
	}
}

func TestCompanyService_UpdateNotFound(t *testing.T) {
	svc, _ := newCompanyFixture(t)

	_, err := svc.Update(context.Background(), "nope", dom.Patch{{Name: "name", Value: "x"}})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestCompanyService_Delete(t *testing.T) {
	svc, s := newCompanyFixture(t)

	require.NoError(t, svc.Delete(context.Background(), "c1"))
	assert.NotContains(t, s.companies, "c1")

	err := svc.Delete(context.Background(), "c1")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}
