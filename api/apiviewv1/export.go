package apiviewv1

import (
	"bytes"
	"context"
	"net/http"
)

// export writes every page of the filtered list as CSV.
func export(ctx context.Context, w http.ResponseWriter) error {

	name := viewName(ctx)

	buf := &bytes.Buffer{}
	err := GetServicer(ctx).Export(name, buf)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`.csv"`)
	_, err = buf.WriteTo(w)
	return err
}
