package models

type PortfolioProject struct {
	ID          int64    `yaml:"-" json:"id"`
	Slug        string   `yaml:"-" json:"slug"`
	Title       string   `yaml:"title" json:"title"`
	Category    string   `yaml:"category" json:"category"`
	Description string   `yaml:"description" json:"description"`
	ImageURL    string   `yaml:"imageUrl" json:"imageUrl"`
	Challenge   string   `yaml:"challenge" json:"challenge,omitempty"`
	Solution    string   `yaml:"solution" json:"solution,omitempty"`
	Tags        []string `yaml:"tags" json:"tags"`
}

type Testimonial struct {
	ID       int64   `yaml:"-" json:"id"`
	Name     string  `yaml:"name" json:"name"`
	Position string  `yaml:"position" json:"position"`
	Company  string  `yaml:"company" json:"company,omitempty"`
	Message  string  `yaml:"message" json:"message"`
	Rating   float64 `yaml:"rating" json:"rating"`
	ImageURL string  `yaml:"imageUrl" json:"imageUrl,omitempty"`
}
