package model

import "time"

type UserModel struct {
	ID            uint      `gorm:"primaryKey;column:id"                                   json:"id"`
	Name          string    `gorm:"type:varchar(255);not null;column:name"                 json:"full_name"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null;column:email"    json:"email"`
	Password      string    `gorm:"type:varchar(255);not null;column:password"             json:"-"`
	StudentID     *string   `gorm:"type:varchar(50);uniqueIndex;column:student_id"         json:"student_id,omitempty"`
	Age           *int      `gorm:"column:age"                                             json:"age,omitempty"`
	Role          string    `gorm:"type:varchar(20);not null;default:'student';column:role" json:"role"`
	CourseYear    *string   `gorm:"type:varchar(100);column:course_year"                   json:"course_year,omitempty"`
	IsMale        *bool     `gorm:"column:is_male"                                         json:"is_male,omitempty"`
	SchoolIDImage *string   `gorm:"type:varchar(255);column:school_id_image"               json:"school_id_image,omitempty"`
	Contact       *string   `gorm:"type:varchar(50);column:contact"                        json:"contact,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime;column:created_at"                       json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime;column:updated_at"                       json:"updated_at"`
}

func (UserModel) TableName() string { return "users" }
