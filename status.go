package riot

// RenderStatus is the lifecycle state of an Engine.
type RenderStatus int

const (
	// StatusUninitialized is the state before Initialize and after Shutdown.
	StatusUninitialized RenderStatus = iota
	// StatusOK means the engine has a working device.
	StatusOK
	// StatusError means the last device operation failed. The engine stays
	// in this state until a CreateDevice call succeeds or it is shut down.
	StatusError
)

func (s RenderStatus) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusOK:
		return "ok"
	case StatusError:
		return "error"
	}
	return "unknown"
}
