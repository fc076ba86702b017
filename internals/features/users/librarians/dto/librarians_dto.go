package dto

import (
	"strings"
	"time"

	"evsu_library_backend/internals/features/users/librarians/model"
)

type LibrarianCreateRequest struct {
	FullName         string  `json:"full_name"                    validate:"required,min=1,max=255"`
	Email            string  `json:"email"                        validate:"required,email,max=255"`
	Password         string  `json:"password"                     validate:"required,min=8,max=72"`
	Contact          *string `json:"contact,omitempty"            validate:"omitempty,max=50"`
	LibrarianIDImage *string `json:"librarian_id_image,omitempty" validate:"omitempty,max=255"`
}

type LibrarianUpdateRequest struct {
	FullName         *string `json:"full_name,omitempty"          validate:"omitempty,min=1,max=255"`
	Email            *string `json:"email,omitempty"              validate:"omitempty,email,max=255"`
	Password         *string `json:"password,omitempty"           validate:"omitempty,min=8,max=72"`
	Contact          *string `json:"contact,omitempty"            validate:"omitempty,max=50"`
	LibrarianIDImage *string `json:"librarian_id_image,omitempty" validate:"omitempty,max=255"`
}

type LibrarianResponse struct {
	ID               uint      `json:"id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	Contact          *string   `json:"contact,omitempty"`
	LibrarianIDImage *string   `json:"librarian_id_image,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func blankToNil(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}

func (r *LibrarianCreateRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Contact = blankToNil(r.Contact)
	r.LibrarianIDImage = blankToNil(r.LibrarianIDImage)
}

func (r *LibrarianUpdateRequest) Normalize() {
	if r.FullName != nil {
		s := strings.TrimSpace(*r.FullName)
		r.FullName = &s
	}
	if r.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &e
	}
}

func (r *LibrarianCreateRequest) ToModel() *model.LibrarianModel {
	return &model.LibrarianModel{
		Name:             r.FullName,
		Email:            r.Email,
		Contact:          r.Contact,
		LibrarianIDImage: r.LibrarianIDImage,
	}
}

func (r *LibrarianUpdateRequest) ApplyToModel(m *model.LibrarianModel) {
	if r.FullName != nil {
		m.Name = *r.FullName
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.Contact != nil {
		m.Contact = blankToNil(r.Contact)
	}
	if r.LibrarianIDImage != nil {
		m.LibrarianIDImage = blankToNil(r.LibrarianIDImage)
	}
}

func FromModel(m *model.LibrarianModel) LibrarianResponse {
	return LibrarianResponse{
		ID:               m.ID,
		FullName:         m.Name,
		Email:            m.Email,
		Contact:          m.Contact,
		LibrarianIDImage: m.LibrarianIDImage,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func FromModels(rows []model.LibrarianModel) []LibrarianResponse {
	out := make([]LibrarianResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
