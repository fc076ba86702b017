package model

import "time"

type LibrarianModel struct {
	ID               uint      `gorm:"primaryKey;column:id"                                json:"id"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null;column:email" json:"email"`
	Name             string    `gorm:"type:varchar(255);not null;column:name"              json:"full_name"`
	Password         string    `gorm:"type:varchar(255);not null;column:password"          json:"-"`
	Contact          *string   `gorm:"type:varchar(50);column:contact"                     json:"contact,omitempty"`
	LibrarianIDImage *string   `gorm:"type:varchar(255);column:librarian_id_image"         json:"librarian_id_image,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime;column:created_at"                    json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime;column:updated_at"                    json:"updated_at"`
}

func (LibrarianModel) TableName() string { return "librarians" }
