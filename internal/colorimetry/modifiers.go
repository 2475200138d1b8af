package colorimetry

import (
	"math"
	"time"
)

// Modifier biases swatch ranking toward an event and a season of the year.
// It only reorders swatches that already tie on season tag and warmth.
type Modifier struct {
	Event        Event
	SeasonOfYear YearSeason
}

// Score returns the modifier bonus for s, rounded to three decimals so
// float noise never reorders the ranking.
func (m Modifier) Score(s Swatch) float64 {
	_, sat, l := s.HSL()

	var score float64
	switch m.Event {
	case Fiesta:
		score += sat
	case Cita:
		score += 0.5 * sat
	case Deporte:
		score += 0.5*sat + 0.25*l
	case Formal:
		score += 0.5 * (1 - l)
	case Trabajo:
		score += 0.5 * (1 - sat)
	case Viaje:
		score += 0.25 * (1 - sat)
	}

	switch m.SeasonOfYear {
	case Invierno:
		score += 1 - l
	case Verano:
		score += l
	case Primavera:
		score += 0.5 * sat
	case Otono:
		score += 0.25*(1-l) + 0.25*(1-sat)
	}

	return math.Round(score*1000) / 1000
}

// YearSeasonFor derives the northern-hemisphere season from a date.
func YearSeasonFor(t time.Time) YearSeason {
	switch t.Month() {
	case time.March, time.April, time.May:
		return Primavera
	case time.June, time.July, time.August:
		return Verano
	case time.September, time.October, time.November:
		return Otono
	default:
		return Invierno
	}
}
