package apiviewv1

import (
	"context"

	"github.com/fulldump/landregistry/listview"
)

func getView(ctx context.Context) (*listview.Snapshot, error) {
	return GetServicer(ctx).GetView(viewName(ctx))
}
