package zenith

// Camera event names.
const (
	EventDestroy      = "destroy"
	EventFollowUpdate = "follow-update"
	EventPreRender    = "pre-render"
	EventPostRender   = "post-render"

	EventFadeInStart     = "fade-in-start"
	EventFadeInComplete  = "fade-in-complete"
	EventFadeOutStart    = "fade-out-start"
	EventFadeOutComplete = "fade-out-complete"
	EventFlashStart      = "flash-start"
	EventFlashComplete   = "flash-complete"
	EventShakeStart      = "shake-start"
	EventShakeComplete   = "shake-complete"
	EventPanStart        = "pan-start"
	EventPanComplete     = "pan-complete"
	EventRotateStart     = "rotate-start"
	EventRotateComplete  = "rotate-complete"
	EventZoomStart       = "zoom-start"
	EventZoomComplete    = "zoom-complete"
)

// CameraEvent is a named camera notification. It is delivered to listeners
// registered on the camera and forwarded to the scene's EntityStore.
type CameraEvent struct {
	Name   string
	Camera *Camera
}

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, camera events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event CameraEvent)
}

// EventHandler receives a camera event.
type EventHandler func(cam *Camera)

type listener struct {
	id   int
	fn   EventHandler
	once bool
}

// emitter is a small synchronous publish/subscribe table keyed by event name.
// Handlers run in registration order on the calling goroutine.
type emitter struct {
	listeners map[string][]listener
	nextID    int
}

// On registers fn for the named event and returns an id for Off.
func (e *emitter) On(name string, fn EventHandler) int {
	return e.add(name, fn, false)
}

// Once registers fn to run on the next emission of the named event only.
func (e *emitter) Once(name string, fn EventHandler) int {
	return e.add(name, fn, true)
}

func (e *emitter) add(name string, fn EventHandler, once bool) int {
	if e.listeners == nil {
		e.listeners = make(map[string][]listener)
	}
	e.nextID++
	e.listeners[name] = append(e.listeners[name], listener{id: e.nextID, fn: fn, once: once})
	return e.nextID
}

// Off removes the listener with the given id from the named event.
func (e *emitter) Off(name string, id int) {
	ls := e.listeners[name]
	for i, l := range ls {
		if l.id == id {
			e.listeners[name] = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of listeners registered for name.
func (e *emitter) ListenerCount(name string) int {
	return len(e.listeners[name])
}

// RemoveAllListeners drops every registered listener.
func (e *emitter) RemoveAllListeners() {
	e.listeners = nil
}

func (e *emitter) dispatch(name string, cam *Camera) {
	ls := e.listeners[name]
	if len(ls) == 0 {
		return
	}
	// Snapshot so handlers may register or remove listeners while running.
	snapshot := make([]listener, len(ls))
	copy(snapshot, ls)
	for _, l := range snapshot {
		if l.once {
			e.Off(name, l.id)
		}
		l.fn(cam)
	}
}
