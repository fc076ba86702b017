package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evsu_library_backend/internals/databases/dbtest"
	"evsu_library_backend/internals/features/catalog/books/dto"
	"evsu_library_backend/internals/features/catalog/books/model"
	txModel "evsu_library_backend/internals/features/circulation/transactions/model"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestCreateBookDerivesStatusAndAddedAt(t *testing.T) {
	svc := NewBookService(dbtest.Open(t))
	req := dto.BookCreateRequest{
		Title:        "Dune",
		Author:       "Frank Herbert",
		ISBN:         strPtr("9780441172719"),
		BookType:     strPtr("Fiction"),
		BookLocation: strPtr("Shelf C"),
		Inventory:    &dto.InventoryRequest{TotalCopies: intPtr(2), CopiesAvailable: intPtr(0)},
		CallNumber:   &dto.CallNumberRequest{Classification: strPtr("PS3558"), Copy: strPtr("c.1")},
		Acquisition:  &dto.AcquisitionRequest{DateReceived: strPtr("2020-01-15"), PublishedYear: intPtr(1965)},
	}

	got, err := svc.CreateBook(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)
	assert.Equal(t, "Fiction", *got.BookType)
	assert.Equal(t, "PS3558 c.1", *got.CallNumbers)
	require.NotNil(t, got.Inventory)
	assert.Equal(t, model.BookStatusBorrowed, got.Inventory.Status)
	assert.NotNil(t, got.Inventory.AddedAt)
	require.NotNil(t, got.Acquisition)
	assert.Equal(t, "2020-01-15", *got.Acquisition.DateReceived)
}

func TestCreateBookRejectsBadInventory(t *testing.T) {
	svc := NewBookService(dbtest.Open(t))
	_, err := svc.CreateBook(context.Background(), dto.BookCreateRequest{
		Title:     "Dune",
		Author:    "Herbert",
		Inventory: &dto.InventoryRequest{TotalCopies: intPtr(1), CopiesAvailable: intPtr(2)},
	})
	assert.ErrorIs(t, err, ErrInvalidInventory)
}

func TestCreateBookDuplicateISBN(t *testing.T) {
	svc := NewBookService(dbtest.Open(t))
	ctx := context.Background()
	req := dto.BookCreateRequest{Title: "Dune", Author: "Herbert", ISBN: strPtr("111")}
	_, err := svc.CreateBook(ctx, req)
	require.NoError(t, err)

	req.Title = "Other"
	_, err = svc.CreateBook(ctx, req)
	assert.ErrorIs(t, err, ErrISBNTaken)
}

func TestUpdateBookPartial(t *testing.T) {
	svc := NewBookService(dbtest.Open(t))
	ctx := context.Background()
	created, err := svc.CreateBook(ctx, dto.BookCreateRequest{
		Title:     "Dune",
		Author:    "Herbert",
		Category:  strPtr("Sci-Fi"),
		Inventory: &dto.InventoryRequest{TotalCopies: intPtr(2), CopiesAvailable: intPtr(2)},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateBook(ctx, created.ID, dto.BookUpdateRequest{
		Author:    strPtr("Frank Herbert"),
		Inventory: &dto.InventoryRequest{CopiesAvailable: intPtr(0)},
	})
	require.NoError(t, err)
	assert.Equal(t, "Dune", updated.Title)
	assert.Equal(t, "Frank Herbert", updated.Author)
	assert.Equal(t, "Sci-Fi", *updated.Category)
	assert.Equal(t, 2, updated.Inventory.TotalCopies)
	assert.Equal(t, 0, updated.Inventory.CopiesAvailable)
	assert.Equal(t, model.BookStatusBorrowed, updated.Inventory.Status)

	_, err = svc.UpdateBook(ctx, created.ID, dto.BookUpdateRequest{
		Inventory: &dto.InventoryRequest{TotalCopies: intPtr(-1)},
	})
	assert.ErrorIs(t, err, ErrInvalidInventory)

	_, err = svc.UpdateBook(ctx, 9999, dto.BookUpdateRequest{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestDeleteBook(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewBookService(db)
	ctx := context.Background()

	free, err := svc.CreateBook(ctx, dto.BookCreateRequest{Title: "Emma", Author: "Austen"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteBook(ctx, free.ID))
	_, err = svc.GetBook(ctx, free.ID)
	assert.ErrorIs(t, err, ErrBookNotFound)
	assert.ErrorIs(t, svc.DeleteBook(ctx, free.ID), ErrBookNotFound)

	used, err := svc.CreateBook(ctx, dto.BookCreateRequest{Title: "Dune", Author: "Herbert"})
	require.NoError(t, err)
	require.NoError(t, db.Create(&txModel.TransactionModel{
		BookID: used.ID, UserID: 1, Type: "borrow", Status: "done", Timestamp: time.Now(),
	}).Error)
	assert.ErrorIs(t, svc.DeleteBook(ctx, used.ID), ErrBookInUse)
}
