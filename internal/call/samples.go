package call

import "time"

// SampleCalls returns the bundled sample dataset. Times are relative to the
// current day so the today/yesterday aggregations stay meaningful.
func SampleCalls() []Call {
	return []Call{
		{
			ID:                1,
			Name:              "Maria Huber",
			Phone:             "+43 660 1234567",
			Urgency:           UrgencyHigh,
			Time:              sampleTime(0, 9, 15),
			Duration:          "00:04:32",
			Summary:           "Patientin berichtet über starke Brustschmerzen seit heute Morgen, Ausstrahlung in den linken Arm. Keine Vorgeschichte von Herzproblemen. Empfehlung: Sofortige ärztliche Untersuchung.",
			Status:            StatusUnread,
			Symptoms:          []string{"Brustschmerzen", "Armschmerzen", "Atemnot"},
			CallbackRequested: true,
			CreatedAt:         sampleTime(0, 9, 15),
			UpdatedAt:         sampleTime(0, 9, 15),
		},
		{
			ID:                2,
			Name:              "Thomas Gruber",
			Phone:             "+43 664 9876543",
			Urgency:           UrgencyMedium,
			Time:              sampleTime(0, 10, 30),
			Duration:          "00:03:15",
			Summary:           "Patient hat seit drei Tagen anhaltenden Husten mit gelblichem Auswurf und leichtem Fieber (38.2°C). Kein Kontakt mit COVID-positiven Personen bekannt.",
			Status:            StatusUnread,
			Symptoms:          []string{"Husten", "Fieber", "Auswurf"},
			Notes:             notes("Termin für morgen vereinbaren"),
			CreatedAt:         sampleTime(0, 10, 30),
			UpdatedAt:         sampleTime(0, 10, 30),
		},
		{
			ID:       3,
			Name:     "Anna Steiner",
			Phone:    "+43 676 5551234",
			Urgency:  UrgencyLow,
			Time:     sampleTime(0, 11, 0),
			Duration: "00:02:45",
			Summary:  "Patientin benötigt Verlängerung ihres Blutdruckmedikaments. Letzte Kontrolle vor 4 Monaten, Werte waren stabil. Bittet um Rezepterneuerung.",
			Status:   StatusRead,
			Symptoms: []string{"Rezeptanfrage", "Bluthochdruck"},
			Notes:    notes("Rezept für Amlodipin 5mg ausgestellt"),
			CreatedAt: sampleTime(0, 11, 0),
			UpdatedAt: sampleTime(0, 11, 0),
		},
		{
			ID:                  4,
			Name:                "Klaus Berger",
			Phone:               "+43 699 3334455",
			Urgency:             UrgencyHigh,
			Time:                sampleTime(0, 8, 45),
			Duration:            "00:05:10",
			Summary:             "Patient berichtet über plötzlich auftretenden starken Schwindel und Übelkeit. Kann kaum aufstehen. Blutdruck laut eigenem Messgerät 180/100. Vorgeschichte: Hypertonie.",
			Status:              StatusUnread,
			Symptoms:            []string{"Schwindel", "Übelkeit", "Hoher Blutdruck"},
			CallbackRequested:   true,
			CallbackCompleted:   true,
			CallbackCompletedAt: timePtr(sampleTime(0, 9, 30)),
			Notes:               notes("Hausbesuch durchgeführt. Blutdruck stabilisiert."),
			CreatedAt:           sampleTime(0, 8, 45),
			UpdatedAt:           sampleTime(0, 9, 30),
		},
		{
			ID:       5,
			Name:     "Elisabeth Pichler",
			Phone:    "+43 650 7778899",
			Urgency:  UrgencyMedium,
			Time:     sampleTime(1, 16, 20),
			Duration: "00:03:50",
			Summary:  "Patientin hat seit einer Woche wiederkehrende Kopfschmerzen, besonders am Nachmittag. Paracetamol hilft nur kurzfristig. Kein Trauma, keine Sehstörungen.",
			Status:   StatusRead,
			Symptoms: []string{"Kopfschmerzen", "Müdigkeit"},
			CreatedAt: sampleTime(1, 16, 20),
			UpdatedAt: sampleTime(1, 16, 20),
		},
		{
			ID:       6,
			Name:     "Franz Wimmer",
			Phone:    "+43 660 2223344",
			Urgency:  UrgencyLow,
			Time:     sampleTime(1, 14, 0),
			Duration: "00:01:55",
			Summary:  "Patient fragt nach Ergebnissen seiner Blutuntersuchung von letzter Woche. Alle Werte im Normalbereich.",
			Status:   StatusRead,
			Symptoms: []string{"Laborbefund"},
			Notes:    notes("Befund per Post zugeschickt"),
			CreatedAt: sampleTime(1, 14, 0),
			UpdatedAt: sampleTime(1, 14, 0),
		},
		{
			ID:                7,
			Name:              "Sophie Lechner",
			Phone:             "+43 676 1112233",
			Urgency:           UrgencyMedium,
			Time:              sampleTime(1, 11, 30),
			Duration:          "00:04:00",
			Summary:           "Patientin berichtet über Halsschmerzen und Schluckbeschwerden seit zwei Tagen. Leichtes Fieber (37.8°C). Keine Atembeschwerden.",
			Status:            StatusUnread,
			Symptoms:          []string{"Halsschmerzen", "Schluckbeschwerden", "Fieber"},
			CallbackRequested: true,
			CreatedAt:         sampleTime(1, 11, 30),
			UpdatedAt:         sampleTime(1, 11, 30),
		},
		{
			ID:       8,
			Name:     "Michael Hofer",
			Phone:    "+43 664 4445566",
			Urgency:  UrgencyLow,
			Time:     sampleTime(1, 9, 0),
			Duration: "00:02:20",
			Summary:  "Patient möchte einen Termin für die jährliche Vorsorgeuntersuchung vereinbaren. Keine aktuellen Beschwerden.",
			Status:   StatusRead,
			Symptoms: []string{"Vorsorgeuntersuchung"},
			Notes:    notes("Termin am 25.02. um 10:00 eingetragen"),
			CreatedAt: sampleTime(1, 9, 0),
			UpdatedAt: sampleTime(1, 9, 0),
		},
		{
			ID:                  9,
			Name:                "Julia Wagner",
			Phone:               "+43 699 8889900",
			Urgency:             UrgencyHigh,
			Time:                sampleTime(2, 15, 45),
			Duration:            "00:06:20",
			Summary:             "Patientin berichtet über starke allergische Reaktion nach Einnahme eines neuen Medikaments. Hautausschlag am ganzen Körper, leichte Schwellung im Gesicht.",
			Status:              StatusRead,
			Symptoms:            []string{"Allergische Reaktion", "Hautausschlag", "Schwellung"},
			CallbackRequested:   true,
			CallbackCompleted:   true,
			CallbackCompletedAt: timePtr(sampleTime(2, 16, 30)),
			Notes:               notes("Medikament abgesetzt. Antihistaminikum verschrieben. Kontrolle in 3 Tagen."),
			CreatedAt:           sampleTime(2, 15, 45),
			UpdatedAt:           sampleTime(2, 16, 30),
		},
		{
			ID:       10,
			Name:     "Peter Maier",
			Phone:    "+43 650 6667788",
			Urgency:  UrgencyMedium,
			Time:     sampleTime(2, 10, 15),
			Duration: "00:03:30",
			Summary:  "Patient hat Rückenschmerzen im Lendenbereich seit dem Wochenende. Keine Ausstrahlung in die Beine. Kann sich eingeschränkt bewegen.",
			Status:   StatusRead,
			Symptoms: []string{"Rückenschmerzen", "Bewegungseinschränkung"},
			CreatedAt: sampleTime(2, 10, 15),
			UpdatedAt: sampleTime(2, 10, 15),
		},
		{
			ID:       11,
			Name:     "Katharina Fuchs",
			Phone:    "+43 660 3332211",
			Urgency:  UrgencyLow,
			Time:     sampleTime(3, 13, 0),
			Duration: "00:02:10",
			Summary:  "Patientin erkundigt sich nach Impfmöglichkeiten für die kommende Grippesaison. Keine Allergien bekannt.",
			Status:   StatusRead,
			Symptoms: []string{"Impfberatung"},
			Notes:    notes("Impftermin vereinbart"),
			CreatedAt: sampleTime(3, 13, 0),
			UpdatedAt: sampleTime(3, 13, 0),
		},
		{
			ID:                12,
			Name:              "Georg Schwarz",
			Phone:             "+43 676 9998877",
			Urgency:           UrgencyMedium,
			Time:              sampleTime(3, 8, 30),
			Duration:          "00:04:15",
			Summary:           "Patient berichtet über wiederkehrende Magenschmerzen nach dem Essen. Verdacht auf Gastritis. Empfehlung: Magenspiegelung.",
			Status:            StatusRead,
			Symptoms:          []string{"Magenschmerzen", "Verdauungsbeschwerden"},
			CallbackRequested: true,
			CreatedAt:         sampleTime(3, 8, 30),
			UpdatedAt:         sampleTime(3, 8, 30),
		},
	}
}

func sampleTime(daysAgo, hour, minute int) time.Time {
	now := time.Now().UTC()
	day := now.AddDate(0, 0, -daysAgo)

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
}

func notes(text string) *string {
	return &text
}

func timePtr(t time.Time) *time.Time {
	return &t
}
