// internal/app/phase.go
package app

// Phase — фаза уровня. Победа не хранится: она сразу переводит игру
// в ожидание следующего уровня или в Complete.
type Phase int

const (
	AwaitingStart Phase = iota
	Running
	Lost
	Complete
)

func (p Phase) String() string {
	switch p {
	case AwaitingStart:
		return "awaiting-start"
	case Running:
		return "running"
	case Lost:
		return "lost"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}
