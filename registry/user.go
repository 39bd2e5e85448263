package registry

import (
	"fmt"
	"strconv"
)

type User struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

func (u User) RecordID() string {
	return strconv.Itoa(u.ID)
}

func (u User) Fields() map[string]any {
	return map[string]any{
		"id":     u.RecordID(),
		"name":   u.Name,
		"email":  u.Email,
		"role":   u.Role,
		"status": u.Status,
	}
}

func (u User) Validate() error {
	if u.ID <= 0 {
		return fmt.Errorf("%w: user id %d", ErrInvalidRecord, u.ID)
	}
	return requireOneOf("status", u.Status, "Active", "Inactive")
}

// Activity is an entry of the signed-in administrator's activity log.
type Activity struct {
	ID          int    `json:"id"`
	Action      string `json:"action"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
	IPAddress   string `json:"ipAddress"`
	Device      string `json:"device"`
	Location    string `json:"location"`
	Status      string `json:"status"`
}

func (a Activity) RecordID() string {
	return strconv.Itoa(a.ID)
}

func (a Activity) Fields() map[string]any {
	return map[string]any{
		"id":          a.RecordID(),
		"action":      a.Action,
		"description": a.Description,
		"timestamp":   a.Timestamp,
		"ipAddress":   a.IPAddress,
		"device":      a.Device,
		"location":    a.Location,
		"status":      a.Status,
	}
}

func (a Activity) Validate() error {
	if a.ID <= 0 {
		return fmt.Errorf("%w: activity id %d", ErrInvalidRecord, a.ID)
	}
	return requireOneOf("status", a.Status, "success", "warning", "error")
}
