package dto

import (
	"strings"
	"time"

	"evsu_library_backend/internals/constants"
	"evsu_library_backend/internals/features/users/users/model"
)

/* ===================== REQUEST ===================== */

type UserCreateRequest struct {
	FullName      string  `json:"full_name"                 validate:"required,min=1,max=255"`
	Email         string  `json:"email"                     validate:"required,email,max=255"`
	Password      string  `json:"password"                  validate:"required,min=8,max=72"`
	StudentID     *string `json:"student_id,omitempty"      validate:"omitempty,max=50"`
	Age           *int    `json:"age,omitempty"             validate:"omitempty,gte=1,lte=150"`
	Role          string  `json:"role,omitempty"            validate:"omitempty,oneof=student faculty non-faculty"`
	CourseYear    *string `json:"course_year,omitempty"     validate:"omitempty,max=100"`
	IsMale        *bool   `json:"is_male,omitempty"`
	SchoolIDImage *string `json:"school_id_image,omitempty" validate:"omitempty,max=255"`
	Contact       *string `json:"contact,omitempty"         validate:"omitempty,max=50"`
}

type UserUpdateRequest struct {
	FullName      *string `json:"full_name,omitempty"       validate:"omitempty,min=1,max=255"`
	Email         *string `json:"email,omitempty"           validate:"omitempty,email,max=255"`
	Password      *string `json:"password,omitempty"        validate:"omitempty,min=8,max=72"`
	StudentID     *string `json:"student_id,omitempty"      validate:"omitempty,max=50"`
	Age           *int    `json:"age,omitempty"             validate:"omitempty,gte=1,lte=150"`
	Role          *string `json:"role,omitempty"            validate:"omitempty,oneof=student faculty non-faculty"`
	CourseYear    *string `json:"course_year,omitempty"     validate:"omitempty,max=100"`
	IsMale        *bool   `json:"is_male,omitempty"`
	SchoolIDImage *string `json:"school_id_image,omitempty" validate:"omitempty,max=255"`
	Contact       *string `json:"contact,omitempty"         validate:"omitempty,max=50"`
}

type UsersListQuery struct {
	Q    string `query:"q"`
	Role string `query:"role"`
}

/* ===================== RESPONSE ===================== */

type UserResponse struct {
	ID            uint      `json:"id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	StudentID     *string   `json:"student_id,omitempty"`
	Age           *int      `json:"age,omitempty"`
	Role          string    `json:"role"`
	CourseYear    *string   `json:"course_year,omitempty"`
	IsMale        *bool     `json:"is_male,omitempty"`
	SchoolIDImage *string   `json:"school_id_image,omitempty"`
	Contact       *string   `json:"contact,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

/* ===================== NORMALIZE ===================== */

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	return &s
}

func blankToNil(p *string) *string {
	p = trimPtr(p)
	if p == nil || *p == "" {
		return nil
	}
	return p
}

func NormalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func (r *UserCreateRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = NormalizeEmail(r.Email)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	if r.Role == "" {
		r.Role = constants.RoleStudent
	}
	r.StudentID = blankToNil(r.StudentID)
	r.CourseYear = blankToNil(r.CourseYear)
	r.SchoolIDImage = blankToNil(r.SchoolIDImage)
	r.Contact = blankToNil(r.Contact)
}

func (r *UserUpdateRequest) Normalize() {
	r.FullName = trimPtr(r.FullName)
	if r.Email != nil {
		e := NormalizeEmail(*r.Email)
		r.Email = &e
	}
	if r.Role != nil {
		role := strings.ToLower(strings.TrimSpace(*r.Role))
		r.Role = &role
	}
	r.StudentID = trimPtr(r.StudentID)
	r.CourseYear = trimPtr(r.CourseYear)
	r.SchoolIDImage = trimPtr(r.SchoolIDImage)
	r.Contact = trimPtr(r.Contact)
}

/* ===================== MAPPER ===================== */

// Password di-hash oleh service; di sini hanya field profil.
func (r *UserCreateRequest) ToModel() *model.UserModel {
	return &model.UserModel{
		Name:          r.FullName,
		Email:         r.Email,
		StudentID:     r.StudentID,
		Age:           r.Age,
		Role:          r.Role,
		CourseYear:    r.CourseYear,
		IsMale:        r.IsMale,
		SchoolIDImage: r.SchoolIDImage,
		Contact:       r.Contact,
	}
}

// "" pada field opsional = dikosongkan.
func (r *UserUpdateRequest) ApplyToModel(m *model.UserModel) {
	if r.FullName != nil {
		m.Name = *r.FullName
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.StudentID != nil {
		m.StudentID = blankToNil(r.StudentID)
	}
	if r.Age != nil {
		m.Age = r.Age
	}
	if r.Role != nil && *r.Role != "" {
		m.Role = *r.Role
	}
	if r.CourseYear != nil {
		m.CourseYear = blankToNil(r.CourseYear)
	}
	if r.IsMale != nil {
		m.IsMale = r.IsMale
	}
	if r.SchoolIDImage != nil {
		m.SchoolIDImage = blankToNil(r.SchoolIDImage)
	}
	if r.Contact != nil {
		m.Contact = blankToNil(r.Contact)
	}
}

func FromModel(m *model.UserModel) UserResponse {
	return UserResponse{
		ID:            m.ID,
		FullName:      m.Name,
		Email:         m.Email,
		StudentID:     m.StudentID,
		Age:           m.Age,
		Role:          m.Role,
		CourseYear:    m.CourseYear,
		IsMale:        m.IsMale,
		SchoolIDImage: m.SchoolIDImage,
		Contact:       m.Contact,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func FromModels(rows []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
