package dto

import (
	"time"

	"evsu_library_backend/internals/features/circulation/transactions/model"
)

type CirculationRequest struct {
	UserID uint `json:"user_id" validate:"required,gt=0"`
	BookID uint `json:"book_id" validate:"required,gt=0"`
}

type TransactionResponse struct {
	ID        uint      `json:"id"`
	BookID    uint      `json:"book_id"`
	UserID    uint      `json:"user_id"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Hasil borrow/return: transaksi + sisa stok buku.
type CirculationResponse struct {
	Transaction     TransactionResponse `json:"transaction"`
	CopiesAvailable int                 `json:"copies_available"`
	BookStatus      string              `json:"book_status"`
}

func FromModel(m *model.TransactionModel) TransactionResponse {
	return TransactionResponse{
		ID:        m.ID,
		BookID:    m.BookID,
		UserID:    m.UserID,
		Type:      m.Type,
		Status:    m.Status,
		Timestamp: m.Timestamp,
	}
}

func FromModels(rows []model.TransactionModel) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
