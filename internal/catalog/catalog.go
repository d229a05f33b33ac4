// Package catalog supplies the canonical room/category/subcategory/item
// templates used to auto-populate new rooms. The catalog is parsed once
// from the embedded JSON at startup and is read-only afterwards; every
// accessor returns a deep copy so concurrently created rooms never alias
// template instances.
package catalog

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/trovestudio/ffetrack/data"
)

// ItemTemplate is a catalog item seed. FinishColor is always "" for
// template items; it exists so populated items carry the blank default.
type ItemTemplate struct {
	Name        string `json:"name"`
	FinishColor string `json:"finish_color"`
}

// SubcategoryTemplate is a named group of item templates.
type SubcategoryTemplate struct {
	Name  string         `json:"name"`
	Items []ItemTemplate `json:"items"`
}

// CategoryTemplate is a named, colored group of subcategory templates.
type CategoryTemplate struct {
	Name          string                `json:"name"`
	Color         string                `json:"color"`
	Subcategories []SubcategoryTemplate `json:"subcategories"`
}

// RoomTemplate is the full template for one room type.
type RoomTemplate struct {
	Room       string             `json:"room"`
	Categories []CategoryTemplate `json:"categories"`
}

// rawRoom mirrors the embedded JSON, where items are plain name strings.
type rawRoom struct {
	Room       string `json:"room"`
	Categories []struct {
		Name          string `json:"name"`
		Color         string `json:"color"`
		Subcategories []struct {
			Name  string   `json:"name"`
			Items []string `json:"items"`
		} `json:"subcategories"`
	} `json:"categories"`
}

var (
	roomTemplates     map[string]RoomTemplate
	roomOrder         []string
	categoryTemplates map[string]CategoryTemplate
	categoryOrder     []string
)

func init() {
	if err := load(data.RoomTemplates); err != nil {
		log.Fatalf("Failed to load room catalog: %v", err)
	}
}

// load parses the embedded template JSON into the process-wide tables.
func load(raw []byte) error {
	var rooms []rawRoom
	if err := json.Unmarshal(raw, &rooms); err != nil {
		return err
	}

	roomTemplates = make(map[string]RoomTemplate, len(rooms))
	roomOrder = make([]string, 0, len(rooms))
	categoryTemplates = make(map[string]CategoryTemplate)
	categoryOrder = nil

	for _, r := range rooms {
		key := strings.ToLower(strings.TrimSpace(r.Room))
		tmpl := RoomTemplate{Room: key}
		for _, c := range r.Categories {
			cat := CategoryTemplate{Name: c.Name, Color: c.Color}
			for _, s := range c.Subcategories {
				sub := SubcategoryTemplate{Name: s.Name}
				for _, name := range s.Items {
					sub.Items = append(sub.Items, ItemTemplate{Name: name, FinishColor: ""})
				}
				cat.Subcategories = append(cat.Subcategories, sub)
			}
			tmpl.Categories = append(tmpl.Categories, cat)

			// The first room defining a category name supplies the
			// standalone category template used by "add category" flows.
			catKey := strings.ToLower(c.Name)
			if _, seen := categoryTemplates[catKey]; !seen {
				categoryTemplates[catKey] = cat
				categoryOrder = append(categoryOrder, c.Name)
			}
		}
		roomTemplates[key] = tmpl
		roomOrder = append(roomOrder, key)
	}

	return nil
}

// ForRoom returns a deep copy of the template whose key matches the
// room-name hint (case-insensitive, with a contains fallback so
// "Client Kitchen" resolves to the kitchen template). An unknown hint
// returns an empty template, not an error.
func ForRoom(name string) RoomTemplate {
	key := strings.ToLower(strings.TrimSpace(name))

	if tmpl, ok := roomTemplates[key]; ok {
		return copyRoom(tmpl)
	}

	// Fallback: longest template key contained in the hint.
	best := ""
	for _, k := range roomOrder {
		if strings.Contains(key, k) && len(k) > len(best) {
			best = k
		}
	}
	if best != "" {
		return copyRoom(roomTemplates[best])
	}

	return RoomTemplate{Room: key}
}

// ForCategory returns a deep copy of the standalone template for one
// category name, used by the comprehensive "add category" flow. An
// unknown name returns an empty category with zero subcategories.
func ForCategory(name string) CategoryTemplate {
	if tmpl, ok := categoryTemplates[strings.ToLower(strings.TrimSpace(name))]; ok {
		return copyCategory(tmpl)
	}
	return CategoryTemplate{Name: name}
}

// AvailableRooms returns the known room-type keys in catalog order.
func AvailableRooms() []string {
	out := make([]string, len(roomOrder))
	copy(out, roomOrder)
	return out
}

// AvailableCategories returns the known category names in catalog order.
func AvailableCategories() []string {
	out := make([]string, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

func copyRoom(src RoomTemplate) RoomTemplate {
	dst := RoomTemplate{Room: src.Room, Categories: make([]CategoryTemplate, len(src.Categories))}
	for i, c := range src.Categories {
		dst.Categories[i] = copyCategory(c)
	}
	return dst
}

func copyCategory(src CategoryTemplate) CategoryTemplate {
	dst := CategoryTemplate{Name: src.Name, Color: src.Color, Subcategories: make([]SubcategoryTemplate, len(src.Subcategories))}
	for i, s := range src.Subcategories {
		items := make([]ItemTemplate, len(s.Items))
		copy(items, s.Items)
		dst.Subcategories[i] = SubcategoryTemplate{Name: s.Name, Items: items}
	}
	return dst
}
