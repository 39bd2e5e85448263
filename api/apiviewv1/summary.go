package apiviewv1

import (
	"context"
	"fmt"
)

type summaryInput struct {
	Field string `json:"field"`
}

func summary(ctx context.Context, input *summaryInput) (map[string]int, error) {

	if input.Field == "" {
		return nil, fmt.Errorf("%w: field is required", ErrBadRequest)
	}

	return GetServicer(ctx).Summary(viewName(ctx), input.Field)
}
