package apiviewv1

import (
	"context"

	"github.com/fulldump/landregistry/listview"
)

type searchInput struct {
	Text string `json:"text"`
}

// search replaces the free text query. It goes back to page 1 and clears the
// selection.
func search(ctx context.Context, input *searchInput) (*listview.Snapshot, error) {
	return GetServicer(ctx).Search(viewName(ctx), input.Text)
}
