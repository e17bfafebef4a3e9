package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role names the two console audiences.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleAdmin   Role = "ADMIN"
)

// StudentSession is the student session object returned by the platform API
// at login and persisted in the durable browser cookie.
type StudentSession struct {
	StudentID  string    `json:"student_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	University string    `json:"university"`
	Program    string    `json:"program"`
	Batch      string    `json:"batch"`
	Token      string    `json:"token"`
	IssuedAt   time.Time `json:"issued_at"`
}

// AdminProfile mirrors the platform API's admin profile payload.
type AdminProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ConsoleClaims are the console-signed session token claims stored inside the
// browser cookies. UpstreamToken carries the platform API bearer token so the
// console can act on the user's behalf.
type ConsoleClaims struct {
	Role          Role   `json:"role"`
	UpstreamToken string `json:"upstream_token"`
	jwt.RegisteredClaims
}
