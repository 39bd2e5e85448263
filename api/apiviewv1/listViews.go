package apiviewv1

import (
	"context"

	"github.com/fulldump/landregistry/service"
)

func listViews(ctx context.Context) ([]*service.View, error) {
	return GetServicer(ctx).ListViews()
}
