package apiviewv1

import (
	"context"
	"errors"

	"github.com/fulldump/box"

	"github.com/fulldump/landregistry/service"
)

// ErrBadRequest marks errors caused by the request input.
var ErrBadRequest = errors.New("bad request")

type contextKey string

const ContextServicerKey contextKey = "landregistry-servicer"

func SetServicer(ctx context.Context, s service.Servicer) context.Context {
	return context.WithValue(ctx, ContextServicerKey, s)
}

func GetServicer(ctx context.Context) service.Servicer {
	return ctx.Value(ContextServicerKey).(service.Servicer)
}

func viewName(ctx context.Context) string {
	return box.GetUrlParameter(ctx, "viewName")
}
