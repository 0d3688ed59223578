package model

import "time"

type User struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	IsAdmin      bool   `json:"is_admin" db:"is_admin"`
}

type Book struct {
	ID              int64  `json:"id" db:"id"`
	Title           string `json:"title" db:"title"`
	Author          string `json:"author" db:"author"`
	TotalCopies     int    `json:"total_copies" db:"total_copies"`
	AvailableCopies int    `json:"available_copies" db:"available_copies"`
}

type Loan struct {
	ID         int64     `json:"loan_id" db:"id"`
	UserID     int64     `json:"user_id" db:"user_id"`
	BookID     int64     `json:"book_id" db:"book_id"`
	LoanDate   time.Time `json:"loan_date" db:"loan_date"`
	DueDate    time.Time `json:"due_date" db:"due_date"`
	IsReturned bool      `json:"is_returned" db:"is_returned"`
}

// ClampCopies bounds available into [0, total].
func ClampCopies(available, total int) int {
	if available > total {
		return total
	}
	if available < 0 {
		return 0
	}
	return available
}

type RegisterRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type CreateUserRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
	IsAdmin  bool   `json:"is_admin" form:"is_admin"`
}

// UserUpdate is a partial update: nil means "leave unchanged".
type UserUpdate struct {
	Username *string `json:"username"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password"`
	IsAdmin  *bool   `json:"is_admin"`
}

type CreateBookRequest struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	TotalCopies *int   `json:"total_copies" validate:"required,min=0"`
}

// BookUpdate is a partial update: nil means "leave unchanged".
// available_copies is clamped into [0, total_copies] on apply.
type BookUpdate struct {
	Title           *string `json:"title"`
	Author          *string `json:"author"`
	TotalCopies     *int    `json:"total_copies" validate:"omitempty,min=0"`
	AvailableCopies *int    `json:"available_copies"`
}

// CreateLoanRequest keeps the original title-based lookup; book_id takes
// precedence when supplied since titles are not unique.
type CreateLoanRequest struct {
	Username  string `json:"username" form:"username" validate:"required"`
	BookTitle string `json:"book_title" form:"book_title" validate:"required_without=BookID"`
	BookID    *int64 `json:"book_id" form:"book_id"`
	LoanDate  string `json:"loan_date" form:"loan_date"`
	DueDate   string `json:"due_date" form:"due_date"`
}

type ReturnLoanRequest struct {
	LoanID int64 `json:"loan_id" form:"loan_id" validate:"required"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type TokenResponse struct {
	UserToken string `json:"user_token"`
}
