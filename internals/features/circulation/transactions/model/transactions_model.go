package model

import "time"

type TransactionModel struct {
	ID        uint      `gorm:"primaryKey;column:id"                                     json:"id"`
	BookID    uint      `gorm:"not null;index:idx_transactions_book_user;column:book_id" json:"book_id"`
	UserID    uint      `gorm:"not null;index:idx_transactions_book_user;column:user_id" json:"user_id"`
	Type      string    `gorm:"type:varchar(10);not null;column:type"                    json:"type"`
	Status    string    `gorm:"type:varchar(10);not null;default:'pending';column:status" json:"status"`
	Timestamp time.Time `gorm:"column:timestamp"                                         json:"timestamp"`
}

func (TransactionModel) TableName() string { return "transactions" }
