package apiviewv1

import (
	"context"
	"strings"

	"github.com/fulldump/box"

	"github.com/fulldump/landregistry/listview"
)

func getRecord(ctx context.Context) (listview.Record, error) {

	recordID := strings.TrimSpace(box.GetUrlParameter(ctx, "recordId"))

	return GetServicer(ctx).GetRecord(viewName(ctx), recordID)
}
