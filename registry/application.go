package registry

type Application struct {
	ID            string `json:"id"`
	ApplicantName string `json:"applicantName"`
	NIC           string `json:"nic"`
	Type          string `json:"type"`
	District      string `json:"district"`
	Status        string `json:"status"`
	SubmittedDate string `json:"submittedDate"`
	AIScore       int    `json:"aiScore"`
	Priority      string `json:"priority"`
}

func (a Application) RecordID() string {
	return a.ID
}

func (a Application) Fields() map[string]any {
	return map[string]any{
		"id":            a.ID,
		"applicantName": a.ApplicantName,
		"nic":           a.NIC,
		"type":          a.Type,
		"district":      a.District,
		"status":        a.Status,
		"submittedDate": a.SubmittedDate,
		"aiScore":       a.AIScore,
		"priority":      a.Priority,
	}
}

func (a Application) Validate() error {
	if err := requireID(a.ID); err != nil {
		return err
	}
	return requireOneOf("status", a.Status, "pending", "approved", "rejected", "under_review")
}

type Issue struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type Document struct {
	ID            string  `json:"id"`
	ApplicationID string  `json:"applicationId"`
	ApplicantName string  `json:"applicantName"`
	DocumentType  string  `json:"documentType"`
	UploadDate    string  `json:"uploadDate"`
	AIScore       int     `json:"aiScore"`
	Status        string  `json:"status"`
	Issues        []Issue `json:"issues"`
	ImageURL      string  `json:"imageUrl"`
}

func (d Document) RecordID() string {
	return d.ID
}

// Fields flattens the issues into their count.
func (d Document) Fields() map[string]any {
	return map[string]any{
		"id":            d.ID,
		"applicationId": d.ApplicationID,
		"applicantName": d.ApplicantName,
		"documentType":  d.DocumentType,
		"uploadDate":    d.UploadDate,
		"aiScore":       d.AIScore,
		"status":        d.Status,
		"issues":        len(d.Issues),
		"imageUrl":      d.ImageURL,
	}
}

func (d Document) Validate() error {
	if err := requireID(d.ID); err != nil {
		return err
	}
	return requireOneOf("status", d.Status, "pending", "verified", "rejected")
}

type Appointment struct {
	ID            string `json:"id"`
	ApplicantName string `json:"applicantName"`
	ApplicationID string `json:"applicationId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Duration      int    `json:"duration"` // minutes
	Type          string `json:"type"`
	Status        string `json:"status"`
	Office        string `json:"office"`
	Notes         string `json:"notes"`
}

func (a Appointment) RecordID() string {
	return a.ID
}

func (a Appointment) Fields() map[string]any {
	return map[string]any{
		"id":            a.ID,
		"applicantName": a.ApplicantName,
		"applicationId": a.ApplicationID,
		"date":          a.Date,
		"time":          a.Time,
		"duration":      a.Duration,
		"type":          a.Type,
		"status":        a.Status,
		"office":        a.Office,
		"notes":         a.Notes,
	}
}

func (a Appointment) Validate() error {
	if err := requireID(a.ID); err != nil {
		return err
	}
	return requireOneOf("status", a.Status, "pending", "confirmed", "completed", "cancelled")
}
