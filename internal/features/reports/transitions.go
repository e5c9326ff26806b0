package reports

// Action is something the admin table offers for a report.
type Action string

const (
	ActionVerify  Action = "verify"
	ActionArchive Action = "archive"
	ActionDelete  Action = "delete"
)

// SetStatus replaces the report's status and stamps updatedAt. Any status can
// follow any other, and repeating the current status still refreshes
// updatedAt. Unknown ids and invalid statuses are no-ops reported as false.
func SetStatus(store *Store, id string, status Status) (Report, bool) {
	if !status.Valid() {
		return Report{}, false
	}
	return store.UpdateByID(id, Patch{Status: &status})
}

func Archive(store *Store, id string) (Report, bool) {
	return SetStatus(store, id, StatusArchived)
}

func Verify(store *Store, id string) (Report, bool) {
	return SetStatus(store, id, StatusVerified)
}

// AllowedActions lists the actions the admin table shows for a status.
func AllowedActions(status Status) []Action {
	actions := make([]Action, 0, 3)
	if status != StatusVerified {
		actions = append(actions, ActionVerify)
	}
	if status != StatusArchived {
		actions = append(actions, ActionArchive)
	}
	return append(actions, ActionDelete)
}

// AdminRow is a report as the admin table lists it.
type AdminRow struct {
	Report
	Actions []Action `json:"actions"`
}

func AdminRows(reports []Report) []AdminRow {
	rows := make([]AdminRow, len(reports))
	for i, r := range reports {
		rows[i] = AdminRow{Report: r, Actions: AllowedActions(r.Status)}
	}
	return rows
}
