package apiviewv1

import (
	"context"

	"github.com/fulldump/landregistry/listview"
)

type gotoPageInput struct {
	Page int `json:"page"`
}

// gotoPage accepts any page number, out of range values are clamped.
func gotoPage(ctx context.Context, input *gotoPageInput) (*listview.Snapshot, error) {
	return GetServicer(ctx).GotoPage(viewName(ctx), input.Page)
}

func nextPage(ctx context.Context) (*listview.Snapshot, error) {
	return GetServicer(ctx).NextPage(viewName(ctx))
}

func previousPage(ctx context.Context) (*listview.Snapshot, error) {
	return GetServicer(ctx).PreviousPage(viewName(ctx))
}
