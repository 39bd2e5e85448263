package registry

import "fmt"

type AuditLogEntry struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	User      string `json:"user"`
	Action    string `json:"action"`
	Resource  string `json:"resource"`
	Details   string `json:"details"`
	IPAddress string `json:"ipAddress"`
	UserAgent string `json:"userAgent"`
	Severity  string `json:"severity"`
	Category  string `json:"category"`
}

func (e AuditLogEntry) RecordID() string {
	return e.ID
}

func (e AuditLogEntry) Fields() map[string]any {
	return map[string]any{
		"id":        e.ID,
		"timestamp": e.Timestamp,
		"user":      e.User,
		"action":    e.Action,
		"resource":  e.Resource,
		"details":   e.Details,
		"ipAddress": e.IPAddress,
		"userAgent": e.UserAgent,
		"severity":  e.Severity,
		"category":  e.Category,
	}
}

func (e AuditLogEntry) Validate() error {
	if err := requireID(e.ID); err != nil {
		return err
	}
	return requireOneOf("severity", e.Severity, "info", "warning", "error", "success")
}

type Notification struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	Type           string `json:"type"`
	Priority       string `json:"priority"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
	ExpiresAt      string `json:"expiresAt"`
	TargetAudience string `json:"targetAudience"`
	CreatedBy      string `json:"createdBy"`
	ReadCount      int    `json:"readCount"`
	TotalUsers     int    `json:"totalUsers"`
}

func (n Notification) RecordID() string {
	return n.ID
}

func (n Notification) Fields() map[string]any {
	return map[string]any{
		"id":             n.ID,
		"title":          n.Title,
		"message":        n.Message,
		"type":           n.Type,
		"priority":       n.Priority,
		"status":         n.Status,
		"createdAt":      n.CreatedAt,
		"expiresAt":      n.ExpiresAt,
		"targetAudience": n.TargetAudience,
		"createdBy":      n.CreatedBy,
		"readCount":      n.ReadCount,
		"totalUsers":     n.TotalUsers,
	}
}

func (n Notification) Validate() error {
	if err := requireID(n.ID); err != nil {
		return err
	}
	if n.ReadCount > n.TotalUsers {
		return fmt.Errorf("%w: read count %d above total users %d", ErrInvalidRecord, n.ReadCount, n.TotalUsers)
	}
	return requireOneOf("status", n.Status, "active", "expired")
}
