package apiviewv1

import (
	"github.com/fulldump/box"

	"github.com/fulldump/landregistry/service"
)

func BuildV1Views(v1 *box.R, s service.Servicer) *box.R {

	views := v1.Resource("/views").
		WithActions(
			box.Get(listViews),
		)

	v1.Resource("/views/{viewName}").
		WithActions(
			box.Get(getView),
			box.ActionPost(search),
			box.ActionPost(filter),
			box.ActionPost(resetFilters),
			box.ActionPost(gotoPage),
			box.ActionPost(nextPage),
			box.ActionPost(previousPage),
			box.ActionPost(selectAll),
			box.ActionPost(toggle),
			box.ActionPost(dispatch),
			box.ActionPost(export),
			box.ActionPost(summary),
			box.ActionPost(count),
			box.ActionPost(counters),
		)

	v1.Resource("/views/{viewName}/records/{recordId}").
		WithActions(
			box.Get(getRecord),
		)

	return views
}
