package entities

// Resource represents a tradeable in-game commodity symbol
type Resource string

const (
	ResourceGold  Resource = "GOLD"
	ResourceOre   Resource = "ORE"
	ResourceWood  Resource = "WOOD"
	ResourceStone Resource = "STONE"
	ResourceFood  Resource = "FOOD"
	ResourceGem   Resource = "GEM"
)

// Resources lists every tradeable symbol in display order
var Resources = []Resource{
	ResourceGold,
	ResourceOre,
	ResourceWood,
	ResourceStone,
	ResourceFood,
	ResourceGem,
}

// IsValid reports whether r is one of the fixed tradeable symbols
func (r Resource) IsValid() bool {
	for _, res := range Resources {
		if r == res {
			return true
		}
	}
	return false
}
