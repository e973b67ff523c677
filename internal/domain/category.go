package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Category is a named, colored grouping label used to classify tasks.
// Color is always derived from CustomColor through ApplyColor.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	CustomColor string `json:"customColor"`
}

// UnmarshalJSON accepts integral ids written as floats ("id": 1.0), which
// JavaScript writers may produce. Fractional, string and object ids are rejected.
func (c *Category) UnmarshalJSON(data []byte) error {
	type plain Category
	var aux struct {
		plain
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	id, err := parseCategoryID(aux.ID)
	if err != nil {
		return err
	}

	*c = Category(aux.plain)
	c.ID = id
	return nil
}

func parseCategoryID(raw json.RawMessage) (int64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, nil
	}

	s := string(raw)
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return id, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, fmt.Errorf("invalid category id %s", s)
	}
	return int64(f), nil
}

// NewCategory builds a category and derives its background class from colorValue.
func NewCategory(id int64, name, colorValue string) Category {
	c := Category{ID: id, Name: name}
	c.ApplyColor(colorValue)
	return c
}

// ApplyColor sets CustomColor and, when the palette knows the value, Color.
// An unknown value leaves Color untouched. Reports whether the palette matched.
func (c *Category) ApplyColor(colorValue string) bool {
	c.CustomColor = colorValue
	opt, ok := FindColorOption(colorValue)
	if ok {
		c.Color = opt.BgClass
	}
	return ok
}

// ColorOption returns the palette entry matching the category's custom color.
func (c Category) ColorOption() (ColorOption, bool) {
	return FindColorOption(c.CustomColor)
}

var ErrEmptyCategoryName = errors.New("category name cannot be empty")

func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCategoryName
	}
	return nil
}

// the four categories every fresh install starts with
func DefaultCategories() []Category {
	return []Category{
		{ID: 1, Name: "Work", Color: "bg-gray-600", CustomColor: "#4b5563"},
		{ID: 2, Name: "Personal", Color: "bg-gray-500", CustomColor: "#6b7280"},
		{ID: 3, Name: "Shopping", Color: "bg-gray-700", CustomColor: "#374151"},
		{ID: 4, Name: "Health", Color: "bg-gray-800", CustomColor: "#1f2937"},
	}
}

// CloneCategories returns a copy that shares no backing array with cats.
// A nil input yields an empty, non-nil slice.
func CloneCategories(cats []Category) []Category {
	out := make([]Category, len(cats))
	copy(out, cats)
	return out
}

// FindCategoryByName returns the first category whose name equals name exactly.
func FindCategoryByName(cats []Category, name string) (Category, bool) {
	for _, c := range cats {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// returns the slice index of the category with the given id, or -1
func IndexOfCategory(cats []Category, id int64) int {
	for i, c := range cats {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// NextCategoryID returns one past the largest id in cats.
func NextCategoryID(cats []Category) int64 {
	var max int64
	for _, c := range cats {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}
