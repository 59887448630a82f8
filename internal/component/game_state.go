// internal/component/game_state.go
package component

// Outcome — результат одного шага симуляции
type Outcome int

const (
	Continue Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}
