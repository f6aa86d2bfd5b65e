package models

import "time"

// WorkEntry is one logged unit of labor. Rows are never updated or deleted.
type WorkEntry struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ProjectNumber string    `json:"project_number" gorm:"not null;index"`
	WorkerName    string    `json:"worker_name" gorm:"not null"`
	WorkDetails   *string   `json:"work_details,omitempty"`
	WorkTimeHours float64   `json:"work_time_hours" gorm:"not null"`
	Timestamp     time.Time `json:"timestamp" gorm:"column:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

func (WorkEntry) TableName() string {
	return "work_entries"
}

// WorkEntryInput carries the client-supplied fields of a WorkEntry.
type WorkEntryInput struct {
	ProjectNumber string  `json:"project_number" example:"P-1001"`
	WorkerName    string  `json:"worker_name" example:"Alice"`
	WorkDetails   *string `json:"work_details,omitempty" example:"Wiring on level 2"`
	WorkTimeHours float64 `json:"work_time_hours" example:"3.5"`
}

// Entry builds the row to insert. ID and Timestamp are left for the store.
func (in WorkEntryInput) Entry() *WorkEntry {
	return &WorkEntry{
		ProjectNumber: in.ProjectNumber,
		WorkerName:    in.WorkerName,
		WorkDetails:   in.WorkDetails,
		WorkTimeHours: in.WorkTimeHours,
	}
}
