// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package status

// PreviewLine is one rendered format field.
type PreviewLine struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// SampleRecord is the record format previews render against: a user last
// seen an hour ago who last watched The Matrix.
func SampleRecord(clock Clock) Record {
	f := NewFormatter(clock)
	user := UserRecord{
		UserID:           "12345",
		Username:         "johndoe",
		FriendlyName:     "John Doe",
		Email:            "john@example.com",
		IsActive:         1,
		TotalPlays:       150,
		TotalTimeWatched: 90,
		LastSeen:         f.Now().Unix() - 3600,
		LastPlayed:       "the matrix",
		MediaType:        "movie",
	}
	return NewMerger(f).Merge(&user, Idle{})
}

// Preview renders fields in order against a fresh SampleRecord.
func Preview(clock Clock, fields []FormatField) []PreviewLine {
	record := SampleRecord(clock)
	lines := make([]PreviewLine, 0, len(fields))
	for _, f := range fields {
		value := Render(f.Template, record)
		record[f.ID] = value
		lines = append(lines, PreviewLine{ID: f.ID, Value: value})
	}
	return lines
}
