// internal/component/visual.go
package component

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // Сколько времени эффект уже активен
	Duration float64 // Общая продолжительность эффекта
}

// Progress доля прошедшего времени эффекта 0..1
func (d *DamageFlash) Progress() float64 {
	if d.Duration <= 0 {
		return 1
	}
	p := d.Timer / d.Duration
	if p > 1 {
		return 1
	}
	return p
}
