package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Ahmethulusi/QRMenu-App-sub001/internal/domain/schedule"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la ventana temporal. La vigencia es inclusiva en ambos límites y
// la cuenta regresiva es una descomposición entera exacta del delta en
// milisegundos; cualquier cambio accidental en esos contratos rompe los
// countdowns que el cliente QR muestra en pantalla.
// ──────────────────────────────────────────────────────────────────────────────

var (
	base  = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	start = base
	end   = base.Add(48 * time.Hour)
)

func TestIsActive_LimitesInclusivos(t *testing.T) {
	assert.True(t, schedule.IsActive(start, &start, &end),
		"now == start debe estar vigente (límite inferior inclusivo)")
	assert.True(t, schedule.IsActive(end, &start, &end),
		"now == end debe estar vigente (límite superior inclusivo)")
	assert.False(t, schedule.IsActive(end.Add(time.Millisecond), &start, &end),
		"now == end+1ms ya no debe estar vigente")
	assert.False(t, schedule.IsActive(start.Add(-time.Millisecond), &start, &end),
		"now == start-1ms todavía no debe estar vigente")
}

func TestIsActive_LimitesNulos(t *testing.T) {
	assert.True(t, schedule.IsActive(base, nil, nil), "sin límites siempre vigente")
	assert.True(t, schedule.IsActive(base, &start, nil), "solo start, now >= start")
	assert.True(t, schedule.IsActive(base, nil, &end), "solo end, now <= end")
	assert.False(t, schedule.IsActive(end.Add(time.Hour), nil, &end), "solo end, now > end")
}

// Ventana invertida (start > end): permanentemente inactiva para cualquier
// now, incluso uno dentro de ambos límites por separado.
func TestIsActive_VentanaInvertida(t *testing.T) {
	invStart := base.Add(24 * time.Hour)
	invEnd := base

	for _, now := range []time.Time{base.Add(-time.Hour), base, base.Add(12 * time.Hour), base.Add(48 * time.Hour)} {
		assert.False(t, schedule.IsActive(now, &invStart, &invEnd),
			"ventana invertida nunca debe estar vigente, now=%s", now)
	}
}

// Vector exacto: 90_061_000 ms = 1 día, 1 hora, 1 minuto, 1 segundo.
func TestRemaining_VectorExacto(t *testing.T) {
	got := schedule.Remaining(base, base.Add(90_061_000*time.Millisecond))

	assert.False(t, got.Expired)
	assert.Equal(t, int64(1), got.Days)
	assert.Equal(t, int64(1), got.Hours)
	assert.Equal(t, int64(1), got.Minutes)
	assert.Equal(t, int64(1), got.Seconds)
}

func TestRemaining_Expirado(t *testing.T) {
	got := schedule.Remaining(base, base.Add(-time.Millisecond))
	assert.True(t, got.Expired, "target < now debe reportar expirado")

	got = schedule.Remaining(base, base)
	assert.True(t, got.Expired, "target == now debe reportar expirado")
}

// Los milisegundos sobrantes se truncan (piso), nunca se redondean hacia arriba.
func TestRemaining_TruncaMilisegundos(t *testing.T) {
	got := schedule.Remaining(base, base.Add(1999*time.Millisecond))

	assert.False(t, got.Expired)
	assert.Equal(t, int64(0), got.Days)
	assert.Equal(t, int64(0), got.Hours)
	assert.Equal(t, int64(0), got.Minutes)
	assert.Equal(t, int64(1), got.Seconds, "1999ms son 1s, no 2s")
}
