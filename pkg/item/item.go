package item

import (
	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

var ErrBudget = errors.New("copy budget exhausted")

type Item struct {
	Id          int
	AccessCount *atomic.Int64
}

func New(id int) *Item {
	return &Item{Id: id, AccessCount: atomic.NewInt64(0)}
}

func (it *Item) Identity() uint64 {
	return uint64(it.Id)
}

// Touch records an access and returns the new count.
func (it *Item) Touch() int64 {
	return it.AccessCount.Inc()
}

// region Copier

// Copier deep copies items until its budget runs out, then fails every call.
// It stands in for an allocator that gives up part way through a copy.
type Copier struct {
	budget *atomic.Int64
	copies *atomic.Int64
}

func NewCopier(budget int64) *Copier {
	return &Copier{
		budget: atomic.NewInt64(budget),
		copies: atomic.NewInt64(0),
	}
}

func (c *Copier) Copy(it *Item) (*Item, error) {
	if c.budget.Dec() < 0 {
		return nil, errors.Wrapf(ErrBudget, "item %d", it.Id)
	}

	c.copies.Inc()
	return &Item{Id: it.Id, AccessCount: atomic.NewInt64(it.AccessCount.Load())}, nil
}

// Copies returns how many items were copied successfully.
func (c *Copier) Copies() int64 {
	return c.copies.Load()
}

// endregion
