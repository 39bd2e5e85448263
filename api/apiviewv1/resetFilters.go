package apiviewv1

import (
	"context"

	"github.com/fulldump/landregistry/listview"
)

func resetFilters(ctx context.Context) (*listview.Snapshot, error) {
	return GetServicer(ctx).ResetFilters(viewName(ctx))
}
