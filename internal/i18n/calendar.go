package i18n

import (
	"fmt"
	"time"
)

var weekdays = map[Language][7]string{
	Portuguese: {"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"},
	English:    {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	Spanish:    {"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
}

var months = map[Language][12]string{
	Portuguese: {"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
	English:    {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	Spanish:    {"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
}

var shortMonths = map[Language][12]string{
	Portuguese: {"jan.", "fev.", "mar.", "abr.", "mai.", "jun.", "jul.", "ago.", "set.", "out.", "nov.", "dez."},
	English:    {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	Spanish:    {"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
}

// fallback returns lang when it has calendar names, English otherwise.
func fallback(lang Language) Language {
	if _, ok := weekdays[lang]; ok {
		return lang
	}
	return English
}

// WeekdayName returns the full weekday name in lang.
func WeekdayName(lang Language, day time.Weekday) string {
	return weekdays[fallback(lang)][day]
}

// ShortDate formats a day and month the way each language abbreviates
// them: "20 de jun." in Portuguese, "20 jun" in Spanish and "Jun 20" in
// English.
func ShortDate(lang Language, t time.Time) string {
	lang = fallback(lang)
	month := shortMonths[lang][t.Month()-1]
	switch lang {
	case Portuguese:
		return fmt.Sprintf("%02d de %s", t.Day(), month)
	case Spanish:
		return fmt.Sprintf("%02d %s", t.Day(), month)
	default:
		return fmt.Sprintf("%s %02d", month, t.Day())
	}
}

// LongDate formats a full date with the month spelled out.
func LongDate(lang Language, t time.Time) string {
	lang = fallback(lang)
	month := months[lang][t.Month()-1]
	switch lang {
	case Portuguese, Spanish:
		return fmt.Sprintf("%02d de %s de %d", t.Day(), month, t.Year())
	default:
		return fmt.Sprintf("%s %02d, %d", month, t.Day(), t.Year())
	}
}
