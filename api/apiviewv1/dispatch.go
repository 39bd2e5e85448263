package apiviewv1

import (
	"context"
	"fmt"

	"github.com/fulldump/landregistry/service"
)

type dispatchInput struct {
	Action string `json:"action"`
}

func dispatch(ctx context.Context, input *dispatchInput) (*service.Dispatched, error) {

	if input.Action == "" {
		return nil, fmt.Errorf("%w: action is required", ErrBadRequest)
	}

	return GetServicer(ctx).Dispatch(ctx, viewName(ctx), input.Action)
}
