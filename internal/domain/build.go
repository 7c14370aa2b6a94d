package domain

// Slot labels for the two ring positions, used wherever a build is
// flattened into (slot, item) pairs
const (
	SlotLabelRing1 = "ring1"
	SlotLabelRing2 = "ring2"
)

// SlotItem pairs an equipped item with the position it occupies
type SlotItem struct {
	Slot string `json:"slot"`
	Item *Item  `json:"item"`
}

// Build is one complete equipment combination for a class. Accessory
// pointers may be nil when the catalog offered no candidate for the slot.
type Build struct {
	Class      Class    `json:"class"`
	Weapon     *Item    `json:"weapon"`
	Helmet     *Item    `json:"helmet"`
	Chestplate *Item    `json:"chestplate"`
	Leggings   *Item    `json:"leggings"`
	Boots      *Item    `json:"boots"`
	Rings      [2]*Item `json:"rings"`
	Bracelet   *Item    `json:"bracelet"`
	Necklace   *Item    `json:"necklace"`
}

// Equipment returns the equipped items as (slot, item) pairs in canonical
// slot order, skipping empty positions
func (b *Build) Equipment() []SlotItem {
	pairs := []SlotItem{
		{Slot: string(SlotWeapon), Item: b.Weapon},
		{Slot: string(SlotHelmet), Item: b.Helmet},
		{Slot: string(SlotChestplate), Item: b.Chestplate},
		{Slot: string(SlotLeggings), Item: b.Leggings},
		{Slot: string(SlotBoots), Item: b.Boots},
		{Slot: SlotLabelRing1, Item: b.Rings[0]},
		{Slot: SlotLabelRing2, Item: b.Rings[1]},
		{Slot: string(SlotBracelet), Item: b.Bracelet},
		{Slot: string(SlotNecklace), Item: b.Necklace},
	}
	equipped := make([]SlotItem, 0, len(pairs))
	for _, p := range pairs {
		if p.Item != nil {
			equipped = append(equipped, p)
		}
	}
	return equipped
}

// Items returns every equipped item in canonical slot order
func (b *Build) Items() []*Item {
	pairs := b.Equipment()
	items := make([]*Item, 0, len(pairs))
	for _, p := range pairs {
		items = append(items, p.Item)
	}
	return items
}

// RingCount reports how many ring positions are filled
func (b *Build) RingCount() int {
	n := 0
	for _, r := range b.Rings {
		if r != nil {
			n++
		}
	}
	return n
}

// Complete reports whether every mandatory slot is filled
func (b *Build) Complete() bool {
	return b.Weapon != nil && b.Helmet != nil && b.Chestplate != nil &&
		b.Leggings != nil && b.Boots != nil
}
