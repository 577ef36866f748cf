package i18n

var tables = map[Language]map[string]string{
	Portuguese: {
		"age":       "Idade",
		"week":      "Semana",
		"today":     "Hoje",
		"yesterday": "Ontem",
		"settings":  "Configurações",

		"activities":   "Atividades",
		"noActivities": "Nenhuma atividade registrada",

		"breastfeeding": "Amamentação",
		"diaper":        "Fralda",
		"sleep":         "Berço",
		"pumping":       "Pumping",
		"bottle":        "Mamadeira",

		"breastSide":  "Lado do Seio",
		"leftBreast":  "Esquerdo",
		"rightBreast": "Direito",

		"quantity": "Quantidade (opcional)",
		"duration": "Duração (opcional)",

		"lightMode":        "Claro",
		"darkMode":         "Escuro",
		"highContrastMode": "Alto Contraste",

		"neutral": "Neutro",
		"pastel":  "Pastel",
		"bold":    "Vibrante",
		"mono":    "Monocromático",

		"stats":          "Estatísticas",
		"timesRecorded":  "vezes registradas",
		"totalTime":      "Tempo Total",
		"averageTime":    "Tempo Médio",
		"noDurationData": "Nenhuma atividade com duração registrada",
		"noDurationHint": "Use o cronômetro ao registrar atividades para ver estatísticas de duração",

		"exportReport":    "Exportar Relatório",
		"summary":         "Resumo",
		"totalActivities": "Total de Atividades",
		"activityTypes":   "Tipos de Atividades",
		"period":          "Período",
		"days":            "dias",
		"record":          "registro",
		"records":         "registros",
		"generatedBy":     "Gerado por",
	},
	English: {
		"age":       "Age",
		"week":      "Week",
		"today":     "Today",
		"yesterday": "Yesterday",
		"settings":  "Settings",

		"activities":   "Activities",
		"noActivities": "No activities recorded",

		"breastfeeding": "Breastfeeding",
		"diaper":        "Diaper",
		"sleep":         "Crib",
		"pumping":       "Pumping",
		"bottle":        "Bottle",

		"breastSide":  "Breast Side",
		"leftBreast":  "Left",
		"rightBreast": "Right",

		"quantity": "Quantity (optional)",
		"duration": "Duration (optional)",

		"lightMode":        "Light",
		"darkMode":         "Dark",
		"highContrastMode": "High Contrast",

		"neutral": "Neutral",
		"pastel":  "Pastel",
		"bold":    "Bold",
		"mono":    "Monochrome",

		"stats":          "Statistics",
		"timesRecorded":  "times recorded",
		"totalTime":      "Total Time",
		"averageTime":    "Average Time",
		"noDurationData": "No activities with recorded duration",
		"noDurationHint": "Use the timer when logging activities to see duration statistics",

		"exportReport":    "Export Report",
		"summary":         "Summary",
		"totalActivities": "Total Activities",
		"activityTypes":   "Activity Types",
		"period":          "Period",
		"days":            "days",
		"record":          "record",
		"records":         "records",
		"generatedBy":     "Generated by",
	},
	Spanish: {
		"age":       "Edad",
		"week":      "Semana",
		"today":     "Hoy",
		"yesterday": "Ayer",
		"settings":  "Configuración",

		"activities":   "Actividades",
		"noActivities": "Ninguna actividad registrada",

		"breastfeeding": "Lactancia",
		"diaper":        "Pañal",
		"sleep":         "Cuna",
		"pumping":       "Extracción",
		"bottle":        "Biberón",

		"breastSide":  "Lado del Pecho",
		"leftBreast":  "Izquierdo",
		"rightBreast": "Derecho",

		"quantity": "Cantidad (opcional)",
		"duration": "Duración (opcional)",

		"lightMode":        "Claro",
		"darkMode":         "Oscuro",
		"highContrastMode": "Alto Contraste",

		"neutral": "Neutro",
		"pastel":  "Pastel",
		"bold":    "Intenso",
		"mono":    "Monocromático",

		"stats":          "Estadísticas",
		"timesRecorded":  "veces registradas",
		"totalTime":      "Tiempo Total",
		"averageTime":    "Tiempo Promedio",
		"noDurationData": "Ninguna actividad con duración registrada",
		"noDurationHint": "Usa el cronómetro al registrar actividades para ver estadísticas de duración",

		"exportReport":    "Exportar Informe",
		"summary":         "Resumen",
		"totalActivities": "Total de Actividades",
		"activityTypes":   "Tipos de Actividades",
		"period":          "Período",
		"days":            "días",
		"record":          "registro",
		"records":         "registros",
		"generatedBy":     "Generado por",
	},
}
