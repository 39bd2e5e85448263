// Package registry holds the land registry records listed by the admin views,
// their seed data and the reviewer that applies bulk actions to them.
package registry

import (
	"embed"
	"errors"
	"fmt"

	"github.com/fulldump/landregistry/listview"
)

// Seeds contains one JSON-lines file per collection.
//
//go:embed seeds/*.jsonl
var Seeds embed.FS

// Record kinds, as named in the view configuration.
const (
	KindApplication  = "application"
	KindDocument     = "document"
	KindAppointment  = "appointment"
	KindAudit        = "audit"
	KindNotification = "notification"
	KindUser         = "user"
	KindActivity     = "activity"
)

// AuditCollection receives one entry per dispatched bulk action.
const AuditCollection = "audit"

var ErrInvalidRecord = errors.New("invalid record")

// Entity is a record that can check its own consistency after decoding.
type Entity interface {
	listview.Record
	Validate() error
}

func requireID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidRecord)
	}
	return nil
}

func requireOneOf(field, value string, options ...string) error {
	for _, option := range options {
		if value == option {
			return nil
		}
	}
	return fmt.Errorf("%w: %s '%s' not in %v", ErrInvalidRecord, field, value, options)
}
