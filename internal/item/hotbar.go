package item

// SlotCount is the number of hotbar slots.
const SlotCount = 9

// Hotbar holds a fixed row of item slots with one selected at a time.
// Slots may be nil; selecting an empty slot clears the holder's hands.
type Hotbar struct {
	slots    [SlotCount]*Item
	selected int
}

// NewHotbar creates an empty hotbar with the first slot selected.
func NewHotbar() *Hotbar {
	return &Hotbar{}
}

// SetSlot places an item in a slot. Out-of-range indices are ignored.
func (h *Hotbar) SetSlot(index int, it *Item) {
	if index < 0 || index >= SlotCount {
		return
	}
	h.slots[index] = it
}

// Slot returns the item in a slot, or nil.
func (h *Hotbar) Slot(index int) *Item {
	if index < 0 || index >= SlotCount {
		return nil
	}
	return h.slots[index]
}

// Selected returns the index of the selected slot.
func (h *Hotbar) Selected() int {
	return h.selected
}

// SelectedItem returns the item in the selected slot, or nil.
func (h *Hotbar) SelectedItem() *Item {
	return h.slots[h.selected]
}

// Select selects a slot by index. Out-of-range indices are ignored.
func (h *Hotbar) Select(index int) {
	if index < 0 || index >= SlotCount {
		return
	}
	h.selected = index
}

// SelectNext moves the selection one slot to the right, wrapping around.
func (h *Hotbar) SelectNext() {
	h.selected = (h.selected + 1) % SlotCount
}

// SelectPrev moves the selection one slot to the left, wrapping around.
func (h *Hotbar) SelectPrev() {
	h.selected = (h.selected + SlotCount - 1) % SlotCount
}
