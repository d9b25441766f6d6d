package menu

import (
	"fmt"
	"time"
)

// IDGenerator produces ids for user-added categories and items. This scheme
// is intentionally separate from the positional ids the reconciliation pass
// assigns: user-added entities are never renumbered afterwards, because
// reconciliation does not run again post-upload.
type IDGenerator interface {
	NextCategoryID() string
	NextItemID() string
}

// ClockIDGenerator derives ids from the wall clock at creation time.
// Collisions within the same millisecond are accepted as practically
// negligible for a single-user editing session.
type ClockIDGenerator struct {
	now func() time.Time
}

func NewClockIDGenerator() *ClockIDGenerator {
	return &ClockIDGenerator{now: time.Now}
}

func (g *ClockIDGenerator) NextCategoryID() string {
	return fmt.Sprintf("cat_%d", g.now().UnixMilli())
}

func (g *ClockIDGenerator) NextItemID() string {
	return fmt.Sprintf("item_%d", g.now().UnixMilli())
}
