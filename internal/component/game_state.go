// internal/component/game_state.go
package component

// GamePhase фаза игры
type GamePhase int

const (
	PlayingPhase GamePhase = iota
	OverPhase
)

// GameState компонент для хранения состояния игры
type GameState struct {
	Phase GamePhase
	Time  float64 // секунды с начала забега
}
