package core

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func validItem() *CatalogItem {
	return &CatalogItem{
		Id:         IDFromContent("https://example.com/view/python-test"),
		Label:      "A0001",
		Name:       "Python Test",
		URL:        "https://example.com/view/python-test",
		Category:   CategorySkills,
		Skills:     []string{"python", "sql"},
		Text:       "Assessment of python and sql programming knowledge.",
		InsertedAt: time.Now().UTC(),
	}
}

func TestValidateCatalogItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		if err := ValidateCatalogItem(validItem()); err != nil {
			t.Errorf("ValidateCatalogItem() unexpected error: %v", err)
		}
	})

	t.Run("nil item", func(t *testing.T) {
		err := ValidateCatalogItem(nil)
		if !errors.Is(err, ErrInvalidCatalogItem) {
			t.Errorf("ValidateCatalogItem(nil) = %v, want ErrInvalidCatalogItem", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		item := validItem()
		item.Name = ""
		err := ValidateCatalogItem(item)
		if !errors.Is(err, ErrEmptyName) {
			t.Errorf("ValidateCatalogItem() = %v, want ErrEmptyName", err)
		}
	})

	t.Run("empty label", func(t *testing.T) {
		item := validItem()
		item.Label = ""
		err := ValidateCatalogItem(item)
		if !errors.Is(err, ErrEmptyLabel) {
			t.Errorf("ValidateCatalogItem() = %v, want ErrEmptyLabel", err)
		}
	})

	t.Run("invalid category", func(t *testing.T) {
		item := validItem()
		item.Category = Category("Z")
		err := ValidateCatalogItem(item)
		if !errors.Is(err, ErrInvalidCategory) {
			t.Errorf("ValidateCatalogItem() = %v, want ErrInvalidCategory", err)
		}
	})

	t.Run("duplicate skills", func(t *testing.T) {
		item := validItem()
		item.Skills = []string{"python", "sql", "python"}
		err := ValidateCatalogItem(item)
		if !errors.Is(err, ErrDuplicateSkill) {
			t.Errorf("ValidateCatalogItem() = %v, want ErrDuplicateSkill", err)
		}
	})

	t.Run("text over limit", func(t *testing.T) {
		item := validItem()
		item.Text = strings.Repeat("x", MaxCanonicalTextLen+1)
		err := ValidateCatalogItem(item)
		if !errors.Is(err, ErrTextTooLong) {
			t.Errorf("ValidateCatalogItem() = %v, want ErrTextTooLong", err)
		}
	})

	t.Run("missing vector is allowed", func(t *testing.T) {
		item := validItem()
		item.Vector = nil
		if err := ValidateCatalogItem(item); err != nil {
			t.Errorf("ValidateCatalogItem() unexpected error: %v", err)
		}
	})
}

func TestValidateCategory(t *testing.T) {
	for _, c := range Categories {
		if err := ValidateCategory(c); err != nil {
			t.Errorf("ValidateCategory(%q) unexpected error: %v", c, err)
		}
	}

	for _, bad := range []Category{"", "Z", "KP", "k"} {
		if err := ValidateCategory(bad); err == nil {
			t.Errorf("ValidateCategory(%q) expected error", bad)
		}
	}
}
