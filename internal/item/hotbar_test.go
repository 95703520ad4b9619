package item

import "testing"

func TestHotbarSelect(t *testing.T) {
	h := NewHotbar()

	if h.Selected() != 0 {
		t.Errorf("initial selection = %d, want 0", h.Selected())
	}

	h.Select(4)
	if h.Selected() != 4 {
		t.Errorf("selection = %d, want 4", h.Selected())
	}

	h.Select(-1)
	h.Select(SlotCount)
	if h.Selected() != 4 {
		t.Errorf("out-of-range select changed the selection to %d", h.Selected())
	}
}

func TestHotbarCycle(t *testing.T) {
	h := NewHotbar()

	h.Select(SlotCount - 1)
	h.SelectNext()
	if h.Selected() != 0 {
		t.Errorf("next from the last slot = %d, want wrap to 0", h.Selected())
	}

	h.SelectPrev()
	if h.Selected() != SlotCount-1 {
		t.Errorf("prev from the first slot = %d, want wrap to %d", h.Selected(), SlotCount-1)
	}
}

func TestHotbarSlots(t *testing.T) {
	h := NewHotbar()
	key := New(KindKey, 0, 0)

	h.SetSlot(2, key)
	if h.Slot(2) != key {
		t.Error("slot 2 should hold the key")
	}
	if h.Slot(0) != nil {
		t.Error("slot 0 should be empty")
	}

	h.Select(2)
	if h.SelectedItem() != key {
		t.Error("selected item should be the key")
	}

	h.SetSlot(-1, key)
	h.SetSlot(SlotCount, key)
	if h.Slot(SlotCount-1) != nil {
		t.Error("out-of-range SetSlot should be ignored")
	}
	if h.Slot(-1) != nil || h.Slot(SlotCount) != nil {
		t.Error("out-of-range Slot should return nil")
	}
}
