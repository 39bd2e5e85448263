package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fulldump/landregistry/collection"
	"github.com/fulldump/landregistry/listview"
)

const TimestampLayout = "2006-01-02 15:04:05"

var ErrNoTransition = errors.New("no transition for action")

// Transition is what a bulk action does to each selected row.
type Transition struct {
	Field  string
	Value  string
	Remove bool
	Event  string // audit action suffix, APPROVED, REJECTED...
}

// Transitions by record kind and action.
var Transitions = map[string]map[string]Transition{
	KindApplication: {
		"approve":      {Field: "status", Value: "approved", Event: "APPROVED"},
		"reject":       {Field: "status", Value: "rejected", Event: "REJECTED"},
		"request_info": {Field: "status", Value: "under_review", Event: "INFO_REQUESTED"},
	},
	KindDocument: {
		"verify": {Field: "status", Value: "verified", Event: "VERIFIED"},
		"reject": {Field: "status", Value: "rejected", Event: "REJECTED"},
	},
	KindAppointment: {
		"confirm":  {Field: "status", Value: "confirmed", Event: "CONFIRMED"},
		"cancel":   {Field: "status", Value: "cancelled", Event: "CANCELLED"},
		"complete": {Field: "status", Value: "completed", Event: "COMPLETED"},
	},
	KindNotification: {
		"expire":   {Field: "status", Value: "expired", Event: "EXPIRED"},
		"activate": {Field: "status", Value: "active", Event: "ACTIVATED"},
		"delete":   {Remove: true, Event: "DELETED"},
	},
	KindUser: {
		"activate":   {Field: "status", Value: "Active", Event: "ACTIVATED"},
		"deactivate": {Field: "status", Value: "Inactive", Event: "DEACTIVATED"},
	},
}

var auditCategories = map[string]string{
	KindApplication:  "application",
	KindDocument:     "document",
	KindAppointment:  "application",
	KindNotification: "system",
	KindUser:         "user",
}

type Collections interface {
	GetCollection(name string) (*collection.Collection, error)
}

// Reviewer applies bulk actions to the stored records and keeps the audit
// trail.
type Reviewer struct {
	Collections Collections
	Actor       string
	UserAgent   string
	Now         func() time.Time
}

func NewReviewer(collections Collections, actor string) *Reviewer {
	return &Reviewer{
		Collections: collections,
		Actor:       actor,
		UserAgent:   "landregistry",
		Now:         time.Now,
	}
}

// Sink returns the listview sink for the records of kind stored in
// collectionName.
func (r *Reviewer) Sink(kind, collectionName string) listview.Sink {
	return listview.SinkFunc(func(ctx context.Context, action string, ids []string) error {
		return r.Apply(ctx, kind, collectionName, action, ids)
	})
}

func (r *Reviewer) Apply(ctx context.Context, kind, collectionName, action string, ids []string) error {

	transition, exists := Transitions[kind][action]
	if !exists {
		return fmt.Errorf("%w '%s' on %s", ErrNoTransition, action, kind)
	}

	c, err := r.Collections.GetCollection(collectionName)
	if err != nil {
		return err
	}

	applied := []string{}
	errs := []error{}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		row, err := c.FindByRow("id", id)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if transition.Remove {
			err = c.Remove(row)
		} else {
			err = c.Patch(row, map[string]interface{}{transition.Field: transition.Value})
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s '%s': %w", kind, id, err))
			continue
		}
		applied = append(applied, id)
	}

	if len(applied) > 0 {
		err := r.audit(kind, action, transition, applied, len(errs) > 0)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (r *Reviewer) audit(kind, action string, transition Transition, ids []string, partial bool) error {

	c, err := r.Collections.GetCollection(AuditCollection)
	if err != nil {
		return fmt.Errorf("audit: %w", err)
	}

	severity := "info"
	if partial {
		severity = "warning"
	}

	title := cases.Title(language.English).String(kind)

	entry := AuditLogEntry{
		ID:        "AUD-" + uuid.NewString(),
		Timestamp: r.Now().Format(TimestampLayout),
		User:      r.Actor,
		Action:    strings.ToUpper(kind) + "_" + transition.Event,
		Resource:  title + " " + strings.Join(ids, ", "),
		Details:   fmt.Sprintf("Bulk %s of %d %s record(s)", strings.ReplaceAll(action, "_", " "), len(ids), kind),
		UserAgent: r.UserAgent,
		Severity:  severity,
		Category:  auditCategories[kind],
	}

	_, err = c.Insert(entry)
	if err != nil {
		return fmt.Errorf("audit: %w", err)
	}

	return nil
}
