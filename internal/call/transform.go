package call

// FromRaw maps a wire-format record to its domain shape. Pure renaming,
// no validation: a missing wire field propagates as the zero value.
func FromRaw(raw CallRaw) Call {
	return Call{
		ID:                  raw.ID,
		Name:                raw.Name,
		Phone:               raw.Phone,
		Urgency:             raw.Urgency,
		Time:                raw.Time,
		Duration:            raw.Duration,
		Summary:             raw.Summary,
		Status:              raw.Status,
		Symptoms:            raw.Symptoms,
		CallbackRequested:   raw.CallbackRequested,
		CallbackCompleted:   raw.CallbackCompleted,
		CallbackCompletedAt: raw.CallbackCompletedAt,
		Notes:               raw.Notes,
		CreatedAt:           raw.CreatedAt,
		UpdatedAt:           raw.UpdatedAt,
	}
}

// ToRaw is the inverse mapping, used when a wire-shaped record has to be
// produced from a domain one.
func ToRaw(record Call) CallRaw {
	return CallRaw{
		ID:                  record.ID,
		Name:                record.Name,
		Phone:               record.Phone,
		Urgency:             record.Urgency,
		Time:                record.Time,
		Duration:            record.Duration,
		Summary:             record.Summary,
		Status:              record.Status,
		Symptoms:            record.Symptoms,
		CallbackRequested:   record.CallbackRequested,
		CallbackCompleted:   record.CallbackCompleted,
		CallbackCompletedAt: record.CallbackCompletedAt,
		Notes:               record.Notes,
		CreatedAt:           record.CreatedAt,
		UpdatedAt:           record.UpdatedAt,
	}
}
