package dto

import "time"

// UserCreateDTO is the account provisioning payload. Role flags are pointers
// so "absent" can be told apart from an explicit false; an absent student
// flag defaults to true.
type UserCreateDTO struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	IsStudent *bool  `json:"is_student"`
	IsTeacher *bool  `json:"is_teacher"`
	IsAdmin   *bool  `json:"is_admin"`
}

// UserCreatedDTO echoes the provisioning result.
type UserCreatedDTO struct {
	Message   string `json:"message"`
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	IsStudent bool   `json:"is_student"`
	IsTeacher bool   `json:"is_teacher"`
	IsAdmin   bool   `json:"is_admin"`
}

// UserUpdateDTO is a sparse patch: only non-nil fields reach the UPDATE.
type UserUpdateDTO struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Color    *string `json:"color"`
	PhotoURL *string `json:"photo_url"`
	Photo    *string `json:"photo"` // base64-encoded raw image bytes
}

type UserResponseDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsStudent bool      `json:"is_student"`
	IsTeacher bool      `json:"is_teacher"`
	IsAdmin   bool      `json:"is_admin"`
	Photo     string    `json:"photo,omitempty"` // data URI when a photo is stored
	PhotoURL  string    `json:"photo_url,omitempty"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponseDTO struct {
	Message string          `json:"message"`
	User    UserResponseDTO `json:"user"`
	Token   string          `json:"token"`
}

type PasswordCheckDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type PasswordRecoveryDTO struct {
	Email string `json:"email" binding:"required,email"`
}

type UserExistsDTO struct {
	Exists bool `json:"exists"`
}

type PasswordValidDTO struct {
	Valid bool `json:"valid"`
}

// UserTypeDTO answers the "which roles does this email hold" lookup.
type UserTypeDTO struct {
	Exists    bool   `json:"exists"`
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	IsStudent bool   `json:"is_student"`
	IsTeacher bool   `json:"is_teacher"`
	IsAdmin   bool   `json:"is_admin"`
}
