package domain

import "time"

// Profile is the single public user-info record shown on the landing page.
type Profile struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Summary      string            `json:"summary,omitempty"`
	Location     string            `json:"location,omitempty"`
	ProfileImage string            `json:"profileImage,omitempty"`
	CVURL        string            `json:"cvUrl,omitempty"`
	SocialLinks  map[string]string `json:"socialLinks,omitempty"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}
