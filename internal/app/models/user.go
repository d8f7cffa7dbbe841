package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID                   int64      `json:"id" db:"id" example:"1"`
	Email                string     `json:"email" db:"email" example:"member@bsffpi.org"`
	Password             string     `json:"-" db:"password"` // hashed, excluded from JSON
	FirstName            string     `json:"firstName" db:"first_name" example:"John"`
	LastName             string     `json:"lastName" db:"last_name" example:"Doe"`
	Phone                *string    `json:"phone,omitempty" db:"phone"`
	Birthday             *time.Time `json:"birthday,omitempty" db:"birthday"`
	AttendanceYears      *string    `json:"attendanceYears,omitempty" db:"attendance_years" example:"2019-2023"`
	ProfileImageURL      *string    `json:"profileImageUrl,omitempty" db:"profile_image_url" example:"uploads/profile.jpg"`
	Department           *string    `json:"department,omitempty" db:"department"`
	AcademicLevel        *string    `json:"academicLevel,omitempty" db:"academic_level"`
	Role                 Role       `json:"role" db:"role" example:"ALUMNI"`
	CanPostAnnouncements bool       `json:"canPostAnnouncements" db:"can_post_announcements"`
	CreatedAt            time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time  `json:"updatedAt" db:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// FullName returns the display name for the user
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
