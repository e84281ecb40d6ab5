package domain

// RoomType is a catalog entry. Price is per night in the smallest currency unit.
type RoomType struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Price       int64  `json:"price" yaml:"price"`
	Description string `json:"desc" yaml:"description"`
	Image       string `json:"image,omitempty" yaml:"image"`
}

// RoomCatalog is the fixed set of bookable room types, kept in declaration order.
type RoomCatalog struct {
	rooms []RoomType
	byID  map[string]RoomType
}

func NewRoomCatalog(rooms []RoomType) RoomCatalog {
	c := RoomCatalog{
		rooms: make([]RoomType, 0, len(rooms)),
		byID:  make(map[string]RoomType, len(rooms)),
	}
	for _, r := range rooms {
		if _, dup := c.byID[r.ID]; dup {
			continue
		}
		c.rooms = append(c.rooms, r)
		c.byID[r.ID] = r
	}
	return c
}

func DefaultRoomTypes() []RoomType {
	return []RoomType{
		{
			ID:          "single",
			Name:        "Single Room",
			Price:       2000,
			Description: "Perfect for solo travelers. Cozy & comfortable.",
			Image:       "https://images.unsplash.com/photo-1505693416388-ac5ce068fe85",
		},
		{
			ID:          "deluxe",
			Name:        "Deluxe Room",
			Price:       3500,
			Description: "Spacious room with premium interiors.",
			Image:       "https://images.unsplash.com/photo-1566073771259-6a8506099945",
		},
		{
			ID:          "suite",
			Name:        "Suite",
			Price:       5500,
			Description: "Luxury suite with living area & best views.",
			Image:       "https://images.unsplash.com/photo-1542314831-068cd1dbfeeb",
		},
	}
}

func (c RoomCatalog) Lookup(id string) (RoomType, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// PriceOf returns the nightly price of id, or 0 for an unknown room type.
func (c RoomCatalog) PriceOf(id string) int64 {
	return c.byID[id].Price
}

func (c RoomCatalog) All() []RoomType {
	out := make([]RoomType, len(c.rooms))
	copy(out, c.rooms)
	return out
}

func (c RoomCatalog) Len() int {
	return len(c.rooms)
}
