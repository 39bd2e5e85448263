package api

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
	"github.com/fulldump/box/boxopenapi"

	"github.com/fulldump/landregistry/api/apiviewv1"
	"github.com/fulldump/landregistry/service"
	"github.com/fulldump/landregistry/statics"
)

func Build(s service.Servicer, staticsDir, version string) *box.B {

	b := box.NewBox()

	v1 := b.Resource("/v1")
	v1.WithInterceptors(
		box.SetResponseHeader("Content-Type", "application/json"),
		injectServicer(s),
	)

	apiviewv1.BuildV1Views(v1, s)

	b.Resource("/release").
		WithActions(box.Get(func() string {
			return version
		}))

	spec := boxopenapi.Spec(b)
	spec.Info.Title = "Land Registry"
	spec.Info.Description = "Administration list views of the land registry: search, filter, paginate, select and apply bulk actions."
	spec.Info.Version = version
	b.Resource("/openapi.json").
		WithActions(box.Get(func(r *http.Request) any {
			hosted := spec
			hosted.Servers = []boxopenapi.Server{
				{Url: "https://" + r.Host},
				{Url: "http://" + r.Host},
			}
			return hosted
		}).WithName("openapi"))

	// Mount statics
	b.Resource("/*").
		WithActions(
			box.Get(statics.ServeStatics(staticsDir)).WithName("serveStatics"),
		)

	return b
}

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(apiviewv1.SetServicer(ctx, s))
		}
	}
}
