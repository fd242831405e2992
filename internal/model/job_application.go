// Package model contain gorm model for recording data to database
package model

import "encoding/json"

// CreatableJobInfo is part of job application that can be set on creation
type CreatableJobInfo struct {
	CompanyName *string `gorm:"type:text" json:"company_name"`
	JobRole     *string `gorm:"type:text" json:"job_role"`
	JobLink     *string `gorm:"type:text" json:"job_link"`
	JobSalary   Salary  `gorm:"type:text" json:"job_salary"`
	DateApplied Date    `gorm:"type:date" json:"date_applied"`
	AppStatus   *string `gorm:"type:text" json:"app_status"`
}

// JobStatusFlags are the progress flags of a job application.
// They stay null until the first update writes them.
type JobStatusFlags struct {
	StatusRejected    *bool `gorm:"type:boolean" json:"status_rejected"`
	StatusInterviewed *bool `gorm:"type:boolean" json:"status_interviewed"`
	StatusTechnical   *bool `gorm:"type:boolean" json:"status_technical"`
	StatusOffer       *bool `gorm:"type:boolean" json:"status_offer"`
}

// JobApplication is gorm model for store job application data in DB.
// Rows live in the "companies" table.
type JobApplication struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatableJobInfo
	JobStatusFlags
}

// TableName keeps the historical table name used by existing deployments
func (JobApplication) TableName() string {
	return "companies"
}

// CreatableColumns lists the columns written by a create request, in insert order
var CreatableColumns = []string{
	"company_name",
	"job_role",
	"job_link",
	"job_salary",
	"date_applied",
	"app_status",
}

// EditableJobInfo is the full set of fields written by an update request.
// Every field is replaced; absent flags are written as false.
type EditableJobInfo struct {
	CreatableJobInfo
	StatusRejected    Truthy `json:"status_rejected"`
	StatusInterviewed Truthy `json:"status_interviewed"`
	StatusTechnical   Truthy `json:"status_technical"`
	StatusOffer       Truthy `json:"status_offer"`
}

// Assignments returns column/value pairs for a full-replace update
func (e EditableJobInfo) Assignments() map[string]interface{} {
	return map[string]interface{}{
		"company_name":       e.CompanyName,
		"job_role":           e.JobRole,
		"date_applied":       e.DateApplied,
		"app_status":         e.AppStatus,
		"status_rejected":    bool(e.StatusRejected),
		"status_interviewed": bool(e.StatusInterviewed),
		"status_technical":   bool(e.StatusTechnical),
		"status_offer":       bool(e.StatusOffer),
		"job_link":           e.JobLink,
		"job_salary":         e.JobSalary,
	}
}

// creatableJSON is the wire form of CreatableJobInfo. Text columns are kept
// raw so non-string scalars can be stored as their text.
type creatableJSON struct {
	CompanyName json.RawMessage `json:"company_name"`
	JobRole     json.RawMessage `json:"job_role"`
	JobLink     json.RawMessage `json:"job_link"`
	JobSalary   Salary          `json:"job_salary"`
	DateApplied Date            `json:"date_applied"`
	AppStatus   json.RawMessage `json:"app_status"`
}

// UnmarshalJSON accepts strings, numbers and booleans for the text columns
func (c *CreatableJobInfo) UnmarshalJSON(b []byte) error {
	var raw creatableJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var info CreatableJobInfo
	var err error
	if info.CompanyName, err = textValue("company_name", raw.CompanyName); err != nil {
		return err
	}
	if info.JobRole, err = textValue("job_role", raw.JobRole); err != nil {
		return err
	}
	if info.JobLink, err = textValue("job_link", raw.JobLink); err != nil {
		return err
	}
	if info.AppStatus, err = textValue("app_status", raw.AppStatus); err != nil {
		return err
	}
	info.JobSalary = raw.JobSalary
	info.DateApplied = raw.DateApplied

	*c = info
	return nil
}

// UnmarshalJSON decodes the id and flags next to the creatable fields
func (j *JobApplication) UnmarshalJSON(b []byte) error {
	var rest struct {
		ID int64 `json:"id"`
		JobStatusFlags
	}
	if err := json.Unmarshal(b, &rest); err != nil {
		return err
	}
	if err := j.CreatableJobInfo.UnmarshalJSON(b); err != nil {
		return err
	}
	j.ID = rest.ID
	j.JobStatusFlags = rest.JobStatusFlags
	return nil
}

// UnmarshalJSON decodes the flags next to the creatable fields
func (e *EditableJobInfo) UnmarshalJSON(b []byte) error {
	var flags struct {
		StatusRejected    Truthy `json:"status_rejected"`
		StatusInterviewed Truthy `json:"status_interviewed"`
		StatusTechnical   Truthy `json:"status_technical"`
		StatusOffer       Truthy `json:"status_offer"`
	}
	if err := json.Unmarshal(b, &flags); err != nil {
		return err
	}
	if err := e.CreatableJobInfo.UnmarshalJSON(b); err != nil {
		return err
	}
	e.StatusRejected = flags.StatusRejected
	e.StatusInterviewed = flags.StatusInterviewed
	e.StatusTechnical = flags.StatusTechnical
	e.StatusOffer = flags.StatusOffer
	return nil
}
