package objects

import (
	"fmt"
	"sort"
)

// SortedZIndexObject is a GameObject that maintains a sorted list of child objects by z-index.
// Children with equal z-index keep their insertion order.
type SortedZIndexObject struct {
	*BaseObject

	// sorted is a list of child objects sorted by z-index.
	sorted []GameObject
}

var _ GameObject = &SortedZIndexObject{}

func NewSortedZIndexObject(id string, opts *NewBaseObjectOpts) *SortedZIndexObject {
	return &SortedZIndexObject{
		BaseObject: NewBaseObject(id, opts),
		sorted:     make([]GameObject, 0),
	}
}

func (o *SortedZIndexObject) AddChild(id string, child GameObject) error {
	if _, ok := o.children.idxIDObjects[id]; ok {
		return fmt.Errorf("child object with id already exists")
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)
	o.insertSorted(child)
	return nil
}

func (o *SortedZIndexObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id does not exist")
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	if !o.removeSorted(child) {
		return fmt.Errorf("child not found in sorted list")
	}
	return nil
}

// RemoveFromParent detaches the object from its parent.
func (o *SortedZIndexObject) RemoveFromParent() error {
	if o.parent == nil {
		return fmt.Errorf("object %s has no parent", o.id)
	}
	return o.parent.RemoveChild(o.id)
}

// SetChildZIndex moves a child to a new z-index.
func (o *SortedZIndexObject) SetChildZIndex(id string, zIndex int) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id does not exist")
	}
	if child.GetZIndex() == zIndex {
		return nil
	}
	o.removeSorted(child)
	child.SetZIndex(zIndex)
	o.insertSorted(child)
	return nil
}

func (o *SortedZIndexObject) GetChildren() []GameObject {
	return o.sorted
}

func (o *SortedZIndexObject) insertSorted(child GameObject) {
	i := sort.Search(len(o.sorted), func(i int) bool {
		return o.sorted[i].GetZIndex() > child.GetZIndex()
	})
	o.sorted = append(o.sorted, nil)
	copy(o.sorted[i+1:], o.sorted[i:])
	o.sorted[i] = child
}

func (o *SortedZIndexObject) removeSorted(child GameObject) bool {
	for i, obj := range o.sorted {
		if obj == child {
			o.sorted = append(o.sorted[:i], o.sorted[i+1:]...)
			return true
		}
	}
	return false
}
