package models

// Fact is a read-only catalog entry with a growing tip for a plant type.
type Fact struct {
	ID        int    `json:"id"`
	PlantType string `json:"plantType"`
	Category  string `json:"category"`
	Fact      string `json:"fact"`
}

// Supplier is a read-only catalog entry for a seed/seedling vendor.
type Supplier struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	PlantTypes  string `json:"plantTypes"`
	Description string `json:"description"`
	Website     string `json:"website,omitempty"`
}
