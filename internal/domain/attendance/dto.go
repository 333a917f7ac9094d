package attendance

import "time"

// SessionResponse is the JSON shape of a session on the ops API.
type SessionResponse struct {
	ID            string     `json:"id"`
	EmployeeID    string     `json:"employee_id"`
	Date          string     `json:"date"`
	Shift         string     `json:"shift"`
	CheckIn       time.Time  `json:"check_in"`
	CheckOut      *time.Time `json:"check_out,omitempty"`
	OvertimeHours float64    `json:"overtime_hours,omitempty"`
	Status        string     `json:"status"`
	TotalHours    float64    `json:"total_hours"`
}

func (s Session) ToResponse() SessionResponse {
	return SessionResponse{
		ID:            s.ID,
		EmployeeID:    s.EmployeeID,
		Date:          s.Date.Format("2006-01-02"),
		Shift:         string(s.Shift),
		CheckIn:       s.CheckIn,
		CheckOut:      s.CheckOut,
		OvertimeHours: s.OvertimeHours,
		Status:        s.Status,
		TotalHours:    s.TotalHours,
	}
}
