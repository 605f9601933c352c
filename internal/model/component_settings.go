package model

// ComponentSettings holds the rendering options a PDF generator reads for an app.
// The zero value is valid and excludes nothing.
//
// ExcludeFromPdf keeps three distinct states through JSON: nil encodes as null,
// an empty slice as [] and a populated slice in caller order.
// @Description Pages settings
type ComponentSettings struct {
	ExcludeFromPdf []string `json:"excludeFromPdf" example:"summary-page,attachment-list"`
}

// GetExcludeFromPdf returns the component IDs to omit from the PDF. It is safe
// to call on a nil receiver.
func (s *ComponentSettings) GetExcludeFromPdf() []string {
	if s == nil {
		return nil
	}
	return s.ExcludeFromPdf
}

// SetExcludeFromPdf replaces the exclusion list. The slice is stored as given.
func (s *ComponentSettings) SetExcludeFromPdf(ids []string) {
	s.ExcludeFromPdf = ids
}

// Excludes reports whether id is listed. Matching is exact and case-sensitive.
func (s *ComponentSettings) Excludes(id string) bool {
	for _, ex := range s.GetExcludeFromPdf() {
		if ex == id {
			return true
		}
	}
	return false
}

// Filter returns ids without the excluded entries, preserving input order.
// With nothing excluded the input slice itself is returned.
func (s *ComponentSettings) Filter(ids []string) []string {
	excluded := s.GetExcludeFromPdf()
	if len(excluded) == 0 {
		return ids
	}

	set := make(map[string]struct{}, len(excluded))
	for _, ex := range excluded {
		set[ex] = struct{}{}
	}

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, skip := set[id]; skip {
			continue
		}
		out = append(out, id)
	}
	return out
}
