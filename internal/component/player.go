// internal/component/player.go
package component

// PlayerStateComponent хранит здоровье и очки игрока.
type PlayerStateComponent struct {
	HP            int
	MaxHP         int
	Score         int
	Invincible    float64 // сколько секунд ещё игнорируются удары
	ZonesSecured  int
	Captures      int // успешные захваты территории
	CapturedCells int
}

func (p *PlayerStateComponent) IsInvincible() bool {
	return p.Invincible > 0
}
