// Package model contains the outline items that are loaded from disk and
// turned into tree nodes.
package model

import "strconv"

// Item represents a single node in the outline tree
type Item struct {
	ID       string  `json:"id,omitempty"`
	Text     string  `json:"text"`
	Color    string  `json:"color,omitempty"`
	Children []*Item `json:"children,omitempty"`
	Parent   *Item   `json:"-"`
}

// Outline represents the entire outline document
type Outline struct {
	Items []*Item `json:"items"`
}

// NewItem creates an item without an ID. AssignIDs fills it in.
func NewItem(text string) *Item {
	return &Item{Text: text}
}

// NewOutline creates an outline with the given root items
func NewOutline(items ...*Item) *Outline {
	return &Outline{Items: items}
}

// AddChild adds a child item to this item
func (i *Item) AddChild(child *Item) {
	child.Parent = i
	i.Children = append(i.Children, child)
}

// GetAllItems returns all items in the outline (depth-first)
func (o *Outline) GetAllItems() []*Item {
	var items []*Item
	var walk func([]*Item)
	walk = func(level []*Item) {
		for _, item := range level {
			items = append(items, item)
			walk(item.Children)
		}
	}
	walk(o.Items)
	return items
}

// RestoreParents sets the Parent pointers, which are not serialized.
func (o *Outline) RestoreParents() {
	var restore func(parent *Item, level []*Item)
	restore = func(parent *Item, level []*Item) {
		for _, item := range level {
			item.Parent = parent
			restore(item, item.Children)
		}
	}
	restore(nil, o.Items)
}

// AssignIDs gives every item without an ID a sequential one ("1", "2", ...)
// in depth-first order. Numbers already used by siblings are skipped, so
// explicit IDs are kept as they are.
func (o *Outline) AssignIDs() {
	next := 1
	var assign func(level []*Item)
	assign = func(level []*Item) {
		taken := make(map[string]bool, len(level))
		for _, item := range level {
			if item.ID != "" {
				taken[item.ID] = true
			}
		}
		for _, item := range level {
			if item.ID == "" {
				for taken[strconv.Itoa(next)] {
					next++
				}
				item.ID = strconv.Itoa(next)
				taken[item.ID] = true
				next++
			}
			assign(item.Children)
		}
	}
	assign(o.Items)
}
