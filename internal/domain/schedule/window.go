// Package schedule decide la vigencia temporal de un registro y calcula
// cuentas regresivas. Ningún componente aquí lee el reloj del sistema: el
// instante "now" siempre llega como parámetro explícito.
package schedule

import "time"

// Milisegundos por unidad, para la descomposición entera exacta.
const (
	msPerDay    = 86_400_000
	msPerHour   = 3_600_000
	msPerMinute = 60_000
	msPerSecond = 1_000
)

// Countdown descomposición del tiempo restante hasta un objetivo.
type Countdown struct {
	Expired bool
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// IsActive decide si una ventana [start, end] está vigente en now. Ambos
// límites son inclusivos y nil significa no acotado por ese lado. Si
// start > end (ambos presentes) la ventana nunca está vigente: límites
// invertidos son política defensiva, no un crash.
func IsActive(now time.Time, start, end *time.Time) bool {
	if start != nil && end != nil && start.After(*end) {
		return false
	}
	if start != nil && now.Before(*start) {
		return false
	}
	if end != nil && now.After(*end) {
		return false
	}
	return true
}

// Remaining calcula el tiempo restante hasta target como descomposición
// entera del delta en milisegundos (división sucesiva con piso, sin
// redondeo). target <= now produce Expired.
func Remaining(now, target time.Time) Countdown {
	delta := target.Sub(now).Milliseconds()
	if delta <= 0 {
		return Countdown{Expired: true}
	}
	days := delta / msPerDay
	rem := delta % msPerDay
	hours := rem / msPerHour
	rem %= msPerHour
	minutes := rem / msPerMinute
	rem %= msPerMinute
	seconds := rem / msPerSecond
	return Countdown{
		Days:    days,
		Hours:   hours,
		Minutes: minutes,
		Seconds: seconds,
	}
}
