package zenith

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// maxTweenFields is the number of float64 fields one TweenGroup can drive.
const maxTweenFields = 4

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one with the constructors below and either call Update(dt) each
// frame or hand it to Scene.AddTween, which advances it with the game clock
// and drops it when done. If the target node is disposed, the group stops
// immediately.
type TweenGroup struct {
	tweens [maxTweenFields]*gween.Tween
	count  int
	fields [maxTweenFields]*float64
	target *Node
	Done   bool

	// OnComplete, if set, runs once when every tween has finished.
	OnComplete func()
}

func newTweenGroup(node *Node) *TweenGroup {
	return &TweenGroup{target: node}
}

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	if fn == nil {
		fn = ease.Linear
	}
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target node has been disposed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	if g.Done && g.OnComplete != nil {
		g.OnComplete()
	}
}

// Stop marks the group done without writing final values.
func (g *TweenGroup) Stop() {
	g.Done = true
}

// TweenPosition animates node.X and node.Y. Durations are in seconds.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node)
	g.add(&node.X, toX, duration, fn)
	g.add(&node.Y, toY, duration, fn)
	return g
}

// TweenScale animates node.ScaleX and node.ScaleY.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node)
	g.add(&node.ScaleX, toSX, duration, fn)
	g.add(&node.ScaleY, toSY, duration, fn)
	return g
}

// TweenColor animates all four components of node.Color.
func TweenColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node)
	g.add(&node.Color.R, to.R, duration, fn)
	g.add(&node.Color.G, to.G, duration, fn)
	g.add(&node.Color.B, to.B, duration, fn)
	g.add(&node.Color.A, to.A, duration, fn)
	return g
}

// TweenAlpha animates node.Alpha.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node)
	g.add(&node.Alpha, to, duration, fn)
	return g
}

// TweenRotation animates node.Rotation (radians).
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node)
	g.add(&node.Rotation, to, duration, fn)
	return g
}

// TweenSize animates node.Width and node.Height.
func TweenSize(node *Node, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node)
	g.add(&node.Width, toW, duration, fn)
	g.add(&node.Height, toH, duration, fn)
	return g
}
