package apiviewv1

import (
	"context"
	"fmt"

	"github.com/fulldump/landregistry/listview"
)

type selectAllInput struct {
	Checked bool `json:"checked"`
}

func selectAll(ctx context.Context, input *selectAllInput) (*listview.Snapshot, error) {
	return GetServicer(ctx).SelectAll(viewName(ctx), input.Checked)
}

type toggleInput struct {
	ID      string `json:"id"`
	Checked bool   `json:"checked"`
}

func toggle(ctx context.Context, input *toggleInput) (*listview.Snapshot, error) {

	if input.ID == "" {
		return nil, fmt.Errorf("%w: id is required", ErrBadRequest)
	}

	return GetServicer(ctx).Toggle(viewName(ctx), input.ID, input.Checked)
}
