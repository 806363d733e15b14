package models

import "time"

type Institution struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Tagline     string    `json:"tagline,omitempty"`
	Cuisine     string    `json:"cuisine,omitempty"`
	CoverImage  *string   `json:"coverImage,omitempty"`
	DeliveryFee float64   `json:"deliveryFee"`
	MinOrder    float64   `json:"minOrder"`
	IsOpen      bool      `json:"isOpen"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Branch struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Phone   *string `json:"phone,omitempty"`
}

type MenuCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ModificationOption struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type ModificationGroup struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Required  bool                 `json:"required"`
	MinSelect int                  `json:"minSelect"`
	MaxSelect int                  `json:"maxSelect"`
	Options   []ModificationOption `json:"options"`
}

// Option lookup within a group. Returns nil when the id is unknown.
func (g *ModificationGroup) FindOption(optionID string) *ModificationOption {
	for i := range g.Options {
		if g.Options[i].ID == optionID {
			return &g.Options[i]
		}
	}
	return nil
}

type MenuItem struct {
	ID                 string              `json:"id"`
	CategoryID         string              `json:"categoryId"`
	Category           string              `json:"category"`
	Name               string              `json:"name"`
	Description        string              `json:"description"`
	BasePrice          float64             `json:"price"`
	Image              *string             `json:"image,omitempty"`
	IsPopular          bool                `json:"isPopular,omitempty"`
	DietaryTags        []string            `json:"dietaryTags"`
	ModificationGroups []ModificationGroup `json:"modificationGroups,omitempty"`
}

func (m *MenuItem) FindGroup(groupID string) *ModificationGroup {
	for i := range m.ModificationGroups {
		if m.ModificationGroups[i].ID == groupID {
			return &m.ModificationGroups[i]
		}
	}
	return nil
}
