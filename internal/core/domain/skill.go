package domain

import "time"

// Skill is a catalog entry shared by the public skills grid and the profile.
// Exactly one of LogoURL / LogoSVG is expected to be set.
type Skill struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logoUrl,omitempty"`
	LogoSVG   string    `json:"logoSvg,omitempty"`
	Category  string    `json:"category"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProfileSkill attaches a catalog skill to the profile with a proficiency
// level in [0,100]. Catalog fields are denormalised for responses.
type ProfileSkill struct {
	ID       string `json:"id"`
	SkillID  string `json:"skillId"`
	Name     string `json:"name"`
	LogoURL  string `json:"logoUrl,omitempty"`
	LogoSVG  string `json:"logoSvg,omitempty"`
	Category string `json:"category"`
	Level    int    `json:"level"`
}
