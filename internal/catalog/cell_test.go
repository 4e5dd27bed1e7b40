package catalog

import (
	"testing"

	"github.com/somi-im/somi/internal/domain"
)

func TestCellStartsEmpty(t *testing.T) {
	c := NewCell()
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if c.Version() != 0 {
		t.Errorf("Version() = %d, want 0", c.Version())
	}
}

func TestCellReplace(t *testing.T) {
	c := NewCell()
	c.Replace([]domain.Record{{ID: "1", Name: "a.com"}})

	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	if c.Version() != 1 {
		t.Errorf("Version() = %d, want 1", c.Version())
	}

	c.Replace([]domain.Record{{ID: "2"}, {ID: "3"}})
	if c.Len() != 2 || c.Version() != 2 {
		t.Errorf("Len() = %d, Version() = %d after second replace", c.Len(), c.Version())
	}
}

func TestCellSnapshotIsACopy(t *testing.T) {
	c := NewCell()
	c.Replace([]domain.Record{{ID: "1", Name: "a.com"}})

	snap := c.Snapshot()
	snap[0].Name = "mutated.com"

	if got := c.Snapshot()[0].Name; got != "a.com" {
		t.Errorf("snapshot mutation leaked into the cell: %q", got)
	}
}

func TestCellReplaceCopiesInput(t *testing.T) {
	c := NewCell()
	in := []domain.Record{{ID: "1", Name: "a.com"}}
	c.Replace(in)

	in[0].Name = "mutated.com"
	if got := c.Snapshot()[0].Name; got != "a.com" {
		t.Errorf("caller mutation leaked into the cell: %q", got)
	}
}
