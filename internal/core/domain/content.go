package domain

import "time"

// Project is a portfolio project card.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	GithubURL    string    `json:"githubUrl,omitempty"`
	DemoURL      string    `json:"demoUrl,omitempty"`
	Technologies []string  `json:"technologies"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Certificate is a completed certification entry, newest first on the site.
type Certificate struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Organization   string    `json:"organization"`
	Date           time.Time `json:"date"`
	ImageURL       string    `json:"imageUrl,omitempty"`
	CertificateURL string    `json:"certificateUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Experience is a work-history entry. EndDate is nil while Current is true.
type Experience struct {
	ID           string     `json:"id"`
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
	Technologies []string   `json:"technologies"`
	Location     string     `json:"location,omitempty"`
	CompanyLogo  string     `json:"companyLogo,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}
