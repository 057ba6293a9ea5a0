package dish

import (
	"fmt"
	"strings"
)

// Status represents the washing lifecycle of a dish.
type Status string

const (
	StatusDirty     Status = "dirty"
	StatusPreRinsed Status = "pre-rinsed"
	StatusWashed    Status = "washed"
	StatusDried     Status = "dried"
	StatusStored    Status = "stored"
)

var statusOrder = []Status{
	StatusDirty,
	StatusPreRinsed,
	StatusWashed,
	StatusDried,
	StatusStored,
}

var statusIndex = func() map[Status]int {
	idx := make(map[Status]int, len(statusOrder))
	for i, status := range statusOrder {
		idx[status] = i
	}
	return idx
}()

// AllStatuses returns the ordered list of known statuses.
func AllStatuses() []Status {
	cp := make([]Status, len(statusOrder))
	copy(cp, statusOrder)
	return cp
}

// ParseStatus converts a string into a known Status.
func ParseStatus(value string) (Status, bool) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := statusIndex[normalized]
	return normalized, ok
}

// Next returns the status that follows s in washing order. The second return
// is false for StatusStored (terminal) and for unknown statuses.
func (s Status) Next() (Status, bool) {
	idx, ok := statusIndex[s]
	if !ok || idx == len(statusOrder)-1 {
		return "", false
	}
	return statusOrder[idx+1], true
}

// Terminal reports whether s is the final status in the workflow.
func (s Status) Terminal() bool {
	return s == StatusStored
}

// Kind identifies the physical type of a dish. Kinds are cosmetic; they do
// not affect routing or processing.
type Kind string

const (
	KindPlate   Kind = "plate"
	KindBowl    Kind = "bowl"
	KindUtensil Kind = "utensil"
)

// AllKinds returns the known dish kinds.
func AllKinds() []Kind {
	return []Kind{KindPlate, KindBowl, KindUtensil}
}

// Dish represents a single dish moving through the washing workflow. A dish
// is owned by exactly one worker at a time; ownership transfers with queue
// hand-off, so no internal locking is needed.
type Dish struct {
	ID     int64
	Kind   Kind
	Status Status
}

// Advance moves the dish to the given status. The transition must be the
// immediate successor of the current status; anything else means the
// pipeline is miswired, and like misuse of a sync primitive it panics.
func (d *Dish) Advance(to Status) {
	next, ok := d.Status.Next()
	if !ok {
		panic(fmt.Sprintf("dish: advance from terminal or unknown status %q", d.Status))
	}
	if to != next {
		panic(fmt.Sprintf("dish: invalid transition %q -> %q (expected %q)", d.Status, to, next))
	}
	d.Status = to
}

func (d *Dish) String() string {
	return fmt.Sprintf("Dish(%d, %s, %s)", d.ID, d.Kind, d.Status)
}
