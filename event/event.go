// Package event names the event types exchanged between the sandbox's input,
// tick and render stages.
package event

// Kind pairs an event type with the name of the handler that receives it.
type Kind struct {
	Type string
	Name string
}

func (k Kind) String() string {
	return k.Type
}

var (
	KeyDown   = Kind{Type: "keydown", Name: "onKeydown"}
	KeyUp     = Kind{Type: "keyup", Name: "onKeyup"}
	MouseDown = Kind{Type: "mousedown", Name: "onMousedown"}
	MouseUp   = Kind{Type: "mouseup", Name: "onMouseup"}
	MouseMove = Kind{Type: "mousemove", Name: "onMousemove"}
	Tick      = Kind{Type: "tick", Name: "onTick"}
	Update    = Kind{Type: "update", Name: "onUpdate"}
	Render    = Kind{Type: "render", Name: "onRender"}
	Wave      = Kind{Type: "wave", Name: "onWave"}
	Fire      = Kind{Type: "fire", Name: "onFire"}
	Call      = Kind{Type: "call", Name: "onCall"}
	Raise     = Kind{Type: "raise", Name: "onRaise"}
	Fold      = Kind{Type: "fold", Name: "onFold"}
)

var all = []Kind{
	KeyDown, KeyUp, MouseDown, MouseUp, MouseMove,
	Tick, Update, Render,
	Wave, Fire, Call, Raise, Fold,
}

var byType = func() map[string]Kind {
	m := make(map[string]Kind, len(all))
	for _, k := range all {
		m[k.Type] = k
	}
	return m
}()

// Lookup returns the kind registered for the given type.
func Lookup(eventType string) (Kind, bool) {
	k, ok := byType[eventType]
	return k, ok
}

// All returns every known kind in declaration order.
func All() []Kind {
	kinds := make([]Kind, len(all))
	copy(kinds, all)
	return kinds
}
