package apiviewv1

import (
	"context"

	"github.com/fulldump/landregistry/listview"
)

type countOutput struct {
	Name  string `json:"name,omitempty"`
	Value int    `json:"value"`
}

func count(ctx context.Context, input *listview.Counter) (*countOutput, error) {

	value, err := GetServicer(ctx).Count(viewName(ctx), *input)
	if err != nil {
		return nil, err
	}

	return &countOutput{
		Name:  input.Name,
		Value: value,
	}, nil
}

func counters(ctx context.Context) (map[string]int, error) {
	return GetServicer(ctx).Counters(viewName(ctx))
}
