package college

// ViewFilter is the college a viewer has selected for browsing. It is
// per-request state, never persisted, and independent of the viewer's own
// signup college. The zero value means All Colleges.
type ViewFilter struct {
	Selected string
}

// FilterFromQuery builds a ViewFilter from a raw ?college= query value.
func FilterFromQuery(raw string) ViewFilter {
	return ViewFilter{Selected: Prettify(raw)}
}

// IsAll reports whether the filter matches every college.
func (f ViewFilter) IsAll() bool {
	return f.Selected == "" || f.Selected == AllColleges
}

// Key returns the grouping key of the selected college, or "" when the
// filter is All Colleges or the selection normalizes to nothing.
func (f ViewFilter) Key() string {
	if f.IsAll() {
		return ""
	}
	return KeyOf(f.Selected)
}
