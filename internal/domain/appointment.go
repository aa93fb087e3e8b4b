package domain

// Appointment statuses as reported by the platform API. The calendar does
// not interpret them beyond exact-match filtering.
const (
	StatusScheduled = "SCHEDULED"
	StatusConfirmed = "CONFIRMED"
	StatusCompleted = "COMPLETED"
	StatusCanceled  = "CANCELED"
	StatusNoShow    = "NO_SHOW"
)

// Statuses lists the known appointment statuses in display order.
var Statuses = []string{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
	StatusCanceled,
	StatusNoShow,
}

// Appointment is a single appointment record as returned by the platform
// API. Date is date-only ("2006-01-02"); StartTime and EndTime are wall-clock
// "HH:MM" strings with no timezone, assumed to fall on Date. EndTime may be
// empty. Service is the category tag used to pick a display color.
type Appointment struct {
	ID         string
	ClientID   string
	ClientName string
	Service    string
	Date       string
	StartTime  string
	EndTime    string
	Status     string
}

// DisplayTitle returns the client name, falling back to the client ID when
// the API sent no name.
func (a Appointment) DisplayTitle() string {
	if a.ClientName != "" {
		return a.ClientName
	}
	return a.ClientID
}
