package render

import (
	"fmt"
	"time"

	"github.com/finsolar/investordash/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Placeholder is shown wherever a value is missing.
const Placeholder = "—"

var (
	locale  = language.MustParse("es-MX")
	printer = message.NewPrinter(locale)
)

var shortMonths = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}

// FormatNumber groups thousands and keeps up to three decimals, es-MX style.
func FormatNumber(v float64) string {
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

func FormatInt(v int) string {
	return printer.Sprint(number.Decimal(v))
}

// FormatTime renders a calendar day as "02 ene 2025".
func FormatTime(t time.Time) string {
	return fmt.Sprintf("%02d %s %d", t.Day(), shortMonths[t.Month()-1], t.Year())
}

// FormatDate renders a document date, or Placeholder when it is absent or
// unparseable.
func FormatDate(d domain.Date) string {
	t, ok := d.Time()
	if !ok {
		return Placeholder
	}
	return FormatTime(t)
}

var statusLabels = map[domain.ProjectStatus]string{
	domain.StatusActive:     "Activo",
	domain.StatusInProgress: "En Progreso",
	domain.StatusPending:    "Pendiente",
	domain.StatusPlanning:   "Planeación",
}

// TranslateStatus returns the Spanish label, or the raw status when unknown.
func TranslateStatus(s domain.ProjectStatus) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}
