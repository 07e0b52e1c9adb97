package project

const (
	StatusPlanning   = "PLANNING"
	StatusInProgress = "IN_PROGRESS"
	StatusOnHold     = "ON_HOLD"
	StatusCompleted  = "COMPLETED"
	StatusCancelled  = "CANCELLED"
)

// transitions: PLANNING -> IN_PROGRESS; IN_PROGRESS <-> ON_HOLD;
// IN_PROGRESS -> COMPLETED/CANCELLED. COMPLETED dan CANCELLED terminal.
var transitions = map[string][]string{
	StatusPlanning:   {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusOnHold, StatusCompleted, StatusCancelled},
	StatusOnHold:     {StatusInProgress, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

func IsValidStatus(status string) bool {
	_, ok := transitions[status]
	return ok
}

func IsAllowedStatusTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func IsTerminalStatus(status string) bool {
	return status == StatusCompleted || status == StatusCancelled
}
