package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		locale   string
		expected Language
	}{
		{"pt-BR", Portuguese},
		{"pt_PT.UTF-8", Portuguese},
		{"PT", Portuguese},
		{"es-ES", Spanish},
		{"es_MX.UTF-8", Spanish},
		{"en-US", English},
		{"fr-FR", English},
		{"", English},
	}

	for _, tc := range testCases {
		t.Run(tc.locale, func(t *testing.T) {
			assert.Equal(t, tc.expected, Detect(tc.locale))
		})
	}
}

func TestTranslatorFallsBackToKey(t *testing.T) {
	t.Parallel()

	tr := New(English)
	assert.Equal(t, "Breastfeeding", tr.T("breastfeeding"))
	assert.Equal(t, "missing.key", tr.T("missing.key"))

	unresolved := New("")
	assert.Equal(t, "breastfeeding", unresolved.T("breastfeeding"))
}

func TestTablesShareKeys(t *testing.T) {
	t.Parallel()

	for key := range tables[English] {
		for _, lang := range Languages {
			_, ok := tables[lang][key]
			assert.True(t, ok, "key %q missing from %s table", key, lang)
		}
	}
}

func TestCalendarNames(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Thursday", WeekdayName(English, day.Weekday()))
	assert.Equal(t, "quinta-feira", WeekdayName(Portuguese, day.Weekday()))
	assert.Equal(t, "jueves", WeekdayName(Spanish, day.Weekday()))
	assert.Equal(t, "Thursday", WeekdayName("de", day.Weekday()))

	assert.Equal(t, "Jun 20", ShortDate(English, day))
	assert.Equal(t, "20 de jun.", ShortDate(Portuguese, day))
	assert.Equal(t, "20 jun", ShortDate(Spanish, day))

	assert.Equal(t, "June 20, 2024", LongDate(English, day))
	assert.Equal(t, "20 de junho de 2024", LongDate(Portuguese, day))
	assert.Equal(t, "20 de junio de 2024", LongDate(Spanish, day))
}
