package fetchlog

import (
	"time"
)

// FetchLog records the outcome of one fetch cycle for diagnostics.
type FetchLog struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CycleID      string    `json:"cycle_id" gorm:"column:cycle_id;size:36;uniqueIndex:idx_cycle_id"`
	QueryKind    string    `json:"query_kind" gorm:"column:query_kind;size:16"`
	Query        string    `json:"query" gorm:"index:idx_query;index:idx_query_created_at"`
	Outcome      string    `json:"outcome" gorm:"column:outcome;size:32;index:idx_outcome"`
	StatusCode   int       `json:"status_code" gorm:"column:status_code"`
	Temperature  *float64  `json:"temperature,omitempty" gorm:"column:temperature"`
	ErrorMessage string    `json:"error_message,omitempty" gorm:"column:error_message"`
	CreatedAt    time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_query_created_at"`
}

func (FetchLog) TableName() string {
	return "fetch_logs"
}
