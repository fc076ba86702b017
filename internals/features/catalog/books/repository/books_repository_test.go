package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"evsu_library_backend/internals/databases/dbtest"
	"evsu_library_backend/internals/features/catalog/books/model"
)

func strPtr(s string) *string { return &s }

func seed(t *testing.T, repo *BookRepository, title, author string, typeName, location *string, sub SubRecords) *model.BookModel {
	t.Helper()
	b := &model.BookModel{Title: title, Author: author}
	require.NoError(t, repo.Create(context.Background(), b, typeName, location, sub))
	return b
}

func TestCreateAndGetWithRelations(t *testing.T) {
	repo := NewBookRepository(dbtest.Open(t))
	ctx := context.Background()

	b := seed(t, repo, "Dune", "Frank Herbert", strPtr("Fiction"), strPtr("Shelf A"), SubRecords{
		Inventory:  &model.BookInventoryModel{TotalCopies: 2, CopiesAvailable: 0, Status: model.BookStatusBorrowed},
		CallNumber: &model.BookCallNumberModel{Classification: strPtr("PS3558"), Copy: strPtr("c.1")},
	})

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fiction", got.TypeName())
	assert.Equal(t, "Shelf A", got.LocationName())
	require.NotNil(t, got.Inventory)
	assert.Equal(t, 0, got.Inventory.CopiesAvailable)
	assert.Equal(t, 2, got.Inventory.TotalCopies)
	assert.Equal(t, "PS3558 c.1", got.CallNumberString())
}

func TestFindOrCreateTypeReusesRow(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewBookRepository(db)
	a := seed(t, repo, "A", "X", strPtr("Fiction"), nil, SubRecords{})
	b := seed(t, repo, "B", "Y", strPtr("Fiction"), nil, SubRecords{})
	require.NotNil(t, a.TypeID)
	assert.Equal(t, *a.TypeID, *b.TypeID)

	var cnt int64
	require.NoError(t, db.Model(&model.BookTypeModel{}).Count(&cnt).Error)
	assert.Equal(t, int64(1), cnt)
}

func TestListFiltersAndPaging(t *testing.T) {
	repo := NewBookRepository(dbtest.Open(t))
	ctx := context.Background()
	for _, title := range []string{"Dune", "Dune Messiah", "Emma", "Children of Dune"} {
		b := &model.BookModel{Title: title, Author: "Someone", Category: strPtr("Fiction")}
		require.NoError(t, repo.Create(ctx, b, nil, nil, SubRecords{}))
	}

	rows, total, err := repo.List(ctx, ListFilter{Q: "DUNE", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, rows, 2)
	assert.Equal(t, "Dune", rows[0].Title)
	assert.Equal(t, "Dune Messiah", rows[1].Title)

	rows, _, err = repo.List(ctx, ListFilter{Q: "dune", Offset: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Children of Dune", rows[0].Title)

	_, total, err = repo.List(ctx, ListFilter{Category: "fiction"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
}

func TestMatchAnyAcrossColumns(t *testing.T) {
	repo := NewBookRepository(dbtest.Open(t))
	ctx := context.Background()

	seed(t, repo, "Dune", "Frank Herbert", strPtr("Fiction"), strPtr("General Collection"), SubRecords{})
	seed(t, repo, "Emma", "Jane Austen", nil, strPtr("Filipiniana Section"), SubRecords{})
	seed(t, repo, "Statics", "Hibbeler", nil, nil, SubRecords{
		CallNumber: &model.BookCallNumberModel{Classification: strPtr("TA351")},
	})
	seed(t, repo, "100%_Real", "Anon", nil, nil, SubRecords{})

	cases := []struct {
		terms []string
		want  []string
	}{
		{[]string{"herbert"}, []string{"Dune"}},
		{[]string{"filipiniana"}, []string{"Emma"}},
		{[]string{"ta351"}, []string{"Statics"}},
		{[]string{"fiction"}, []string{"Dune"}},
		{[]string{"zzz", "austen"}, []string{"Emma"}},
		{[]string{"%"}, []string{"100%_Real"}},
		{[]string{"nothing"}, nil},
	}
	for _, tc := range cases {
		rows, err := repo.MatchAny(ctx, tc.terms, 5)
		require.NoError(t, err)
		var got []string
		for _, r := range rows {
			got = append(got, r.Title)
		}
		assert.Equal(t, tc.want, got, "terms %v", tc.terms)
	}

	rows, err := repo.MatchAny(ctx, []string{"e"}, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Less(t, rows[0].ID, rows[1].ID)

	rows, err = repo.MatchAny(ctx, []string{"  "}, 5)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestListFirstOrdered(t *testing.T) {
	repo := NewBookRepository(dbtest.Open(t))
	for _, title := range []string{"C", "A", "B"} {
		seed(t, repo, title, "X", nil, nil, SubRecords{})
	}
	rows, err := repo.ListFirst(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "C", rows[0].Title)
	assert.Equal(t, "A", rows[1].Title)
}

func TestUpdateUpsertsSubRecordsAndUnsetsType(t *testing.T) {
	repo := NewBookRepository(dbtest.Open(t))
	ctx := context.Background()
	b := seed(t, repo, "Dune", "Herbert", strPtr("Fiction"), nil, SubRecords{
		Inventory: &model.BookInventoryModel{TotalCopies: 1, CopiesAvailable: 1, Status: model.BookStatusAvailable},
	})

	b.Title = "Dune (Deluxe)"
	require.NoError(t, repo.Update(ctx, b, strPtr(""), strPtr("Shelf Z"), SubRecords{
		Inventory: &model.BookInventoryModel{TotalCopies: 3, CopiesAvailable: 0, Status: model.BookStatusBorrowed},
	}))

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune (Deluxe)", got.Title)
	assert.Nil(t, got.TypeID)
	assert.Equal(t, "Shelf Z", got.LocationName())
	require.NotNil(t, got.Inventory)
	assert.Equal(t, 3, got.Inventory.TotalCopies)
	assert.Equal(t, 0, got.Inventory.CopiesAvailable)
	assert.Equal(t, model.BookStatusBorrowed, got.Inventory.Status)
}

func TestDeleteRemovesSubRecords(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewBookRepository(db)
	ctx := context.Background()
	b := seed(t, repo, "Dune", "Herbert", nil, nil, SubRecords{
		Inventory: &model.BookInventoryModel{TotalCopies: 1, CopiesAvailable: 1, Status: model.BookStatusAvailable},
	})

	require.NoError(t, repo.Delete(ctx, b.ID))
	_, err := repo.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var cnt int64
	require.NoError(t, db.Model(&model.BookInventoryModel{}).Count(&cnt).Error)
	assert.Zero(t, cnt)

	assert.ErrorIs(t, repo.Delete(ctx, b.ID), gorm.ErrRecordNotFound)
}

func TestExistsHelpers(t *testing.T) {
	repo := NewBookRepository(dbtest.Open(t))
	ctx := context.Background()
	b := &model.BookModel{Title: "Dune", Author: "Herbert", ISBN: strPtr("123")}
	require.NoError(t, repo.Create(ctx, b, nil, nil, SubRecords{}))

	ok, err := repo.ExistsByISBN(ctx, "123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsByTitleAuthor(ctx, "dune", "HERBERT")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.HasCirculation(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
