package domain

import "errors"

// Authentication and account lifecycle.
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAdminExists          = errors.New("admin user already exists")
	ErrAdminNotFound        = errors.New("admin user not found")
	ErrWrongCurrentPassword = errors.New("current password is incorrect")
	ErrPasswordMismatch     = errors.New("new password and confirm password do not match")
	ErrMissingToken         = errors.New("access token required")
	ErrInvalidToken         = errors.New("invalid or expired token")
)

// Content lookups.
var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrCertificateNotFound  = errors.New("certificate not found")
	ErrExperienceNotFound   = errors.New("experience not found")
	ErrSkillNotFound        = errors.New("skill not found")
	ErrSkillExists          = errors.New("skill already exists")
	ErrProfileSkillNotFound = errors.New("profile skill not found")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrContactNotFound      = errors.New("contact message not found")
)
