package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the resolv object holding an entity's spatial extent.
// Objects are top-left anchored; circular entities use W = H = 2*radius.
type ObjectData struct {
	*resolv.Object
}

// CenterX returns the x coordinate of the object's center.
func (o *ObjectData) CenterX() float64 {
	return o.X + o.W/2
}

// CenterY returns the y coordinate of the object's center.
func (o *ObjectData) CenterY() float64 {
	return o.Y + o.H/2
}

// SetCenter moves the object so its center sits at (x, y).
func (o *ObjectData) SetCenter(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()
