package components

import "time"

// DateChangedMsg is emitted when the displayed month of a picker changes.
type DateChangedMsg struct {
	ID   string
	Date time.Time
}

// SelectedDateChangedMsg is emitted when the user selects a day.
type SelectedDateChangedMsg struct {
	ID   string
	Date time.Time
}

// settleMsg commits a deferred page change once the paging delay elapsed.
type settleMsg struct {
	id    string
	token uint64
}
