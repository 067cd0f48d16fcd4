package domain

// Team represents a racing team as served by the backend
type Team struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	LogoURL string `json:"teamLogoUrl"` // relative to the static teams path
}

// Driver represents a driver belonging to a team
type Driver struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}
