package catalog

import (
	"strings"
	"testing"
)

func countItems(tmpl RoomTemplate) int {
	n := 0
	for _, c := range tmpl.Categories {
		for _, s := range c.Subcategories {
			n += len(s.Items)
		}
	}
	return n
}

func TestKitchenTemplateDepth(t *testing.T) {
	kitchen := ForRoom("kitchen")

	if len(kitchen.Categories) == 0 {
		t.Fatal("Expected kitchen template to have categories")
	}
	if n := countItems(kitchen); n < 50 {
		t.Errorf("Expected kitchen template to have at least 50 items, got %d", n)
	}
}

func TestForRoomCaseInsensitive(t *testing.T) {
	a := ForRoom("Kitchen")
	b := ForRoom("  kitchen ")

	if len(a.Categories) == 0 || len(a.Categories) != len(b.Categories) {
		t.Errorf("Expected same template for case/space variants, got %d vs %d categories",
			len(a.Categories), len(b.Categories))
	}
}

func TestForRoomContainsFallback(t *testing.T) {
	tmpl := ForRoom("Client Kitchen")
	if countItems(tmpl) == 0 {
		t.Error("Expected 'Client Kitchen' to resolve to the kitchen template")
	}

	tmpl = ForRoom("Primary Bedroom Suite")
	if countItems(tmpl) == 0 {
		t.Error("Expected 'Primary Bedroom Suite' to resolve to a bedroom template")
	}
}

func TestForRoomUnknown(t *testing.T) {
	tmpl := ForRoom("observatory")
	if len(tmpl.Categories) != 0 {
		t.Errorf("Expected empty template for unknown room, got %d categories", len(tmpl.Categories))
	}
}

func TestForRoomReturnsCopies(t *testing.T) {
	a := ForRoom("kitchen")
	a.Categories[0].Name = "mutated"
	a.Categories[0].Subcategories[0].Items[0].Name = "mutated item"

	b := ForRoom("kitchen")
	if b.Categories[0].Name == "mutated" {
		t.Error("Template category aliased between calls")
	}
	if b.Categories[0].Subcategories[0].Items[0].Name == "mutated item" {
		t.Error("Template item aliased between calls")
	}
}

func TestForCategory(t *testing.T) {
	names := AvailableCategories()
	if len(names) == 0 {
		t.Fatal("Expected available category names")
	}

	tmpl := ForCategory(strings.ToUpper(names[0]))
	if len(tmpl.Subcategories) == 0 {
		t.Errorf("Expected subcategories for known category %q", names[0])
	}

	unknown := ForCategory("Cryogenics")
	if len(unknown.Subcategories) != 0 {
		t.Error("Expected empty template for unknown category")
	}
	if unknown.Name != "Cryogenics" {
		t.Errorf("Expected unknown category to keep its name, got %q", unknown.Name)
	}
}

func TestAvailableRooms(t *testing.T) {
	rooms := AvailableRooms()
	if len(rooms) == 0 {
		t.Fatal("Expected available room types")
	}

	found := false
	for _, r := range rooms {
		if r == "kitchen" {
			found = true
		}
	}
	if !found {
		t.Error("Expected 'kitchen' in available rooms")
	}
}
