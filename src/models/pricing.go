package models

type PricedItem struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Price       int    `yaml:"price" json:"price"`
}

// EstimateRequest ข้อมูลสำหรับคำนวณราคา
type EstimateRequest struct {
	Services []string `json:"services" validate:"unique,dive,required"`
	Addons   []string `json:"addons" validate:"unique,dive,required"`
	Pages    int      `json:"pages" validate:"min=1,max=20"`
	Weeks    int      `json:"weeks" validate:"min=2,max=12"`
	Urgent   bool     `json:"urgent"`
}

type EstimateLine struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

type Estimate struct {
	Subtotal   int            `json:"subtotal"`
	SizeFactor float64        `json:"sizeFactor"`
	Total      int            `json:"total"`
	Breakdown  []EstimateLine `json:"breakdown"`
}
