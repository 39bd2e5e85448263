package apiviewv1

import (
	"context"
	"fmt"

	"github.com/fulldump/landregistry/listview"
)

type filterInput struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func filter(ctx context.Context, input *filterInput) (*listview.Snapshot, error) {

	if input.Field == "" {
		return nil, fmt.Errorf("%w: field is required", ErrBadRequest)
	}

	value := input.Value
	if value == "" {
		value = listview.All
	}

	return GetServicer(ctx).Filter(viewName(ctx), input.Field, value)
}
