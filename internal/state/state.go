// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State экран игры
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine держит текущее состояние и стек приостановленных.
// Приостановленное состояние не получает Exit, пока его не снимут со стека.
type StateMachine struct {
	current   State
	suspended []State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState заменяет текущее состояние и сбрасывает стек
func (sm *StateMachine) SetState(newState State) {
	for i := len(sm.suspended) - 1; i >= 0; i-- {
		sm.suspended[i].Exit()
	}
	sm.suspended = nil
	sm.switchTo(newState)
}

// Push приостанавливает текущее состояние и входит в newState
func (sm *StateMachine) Push(newState State) {
	if sm.current != nil {
		sm.suspended = append(sm.suspended, sm.current)
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Pop выходит из текущего состояния и возвращает приостановленное.
// Без стека ничего не делает.
func (sm *StateMachine) Pop() {
	n := len(sm.suspended)
	if n == 0 {
		return
	}
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = sm.suspended[n-1]
	sm.suspended = sm.suspended[:n-1]
}

// Current текущее состояние, nil до первого SetState
func (sm *StateMachine) Current() State {
	return sm.current
}

// Depth число приостановленных состояний
func (sm *StateMachine) Depth() int {
	return len(sm.suspended)
}

func (sm *StateMachine) switchTo(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
