package api

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
	"github.com/fulldump/box"

	"github.com/fulldump/landregistry/configuration"
	"github.com/fulldump/landregistry/database"
	"github.com/fulldump/landregistry/registry"
	"github.com/fulldump/landregistry/service"
)

func TestAcceptance(t *testing.T) {

	views, err := configuration.LoadViews("")
	biff.AssertNil(err)

	biff.Alternative("Setup", func(a *biff.A) {

		db := database.NewDatabase(&database.Config{
			Seeds: registry.Seeds,
			Dir:   "seeds",
		})

		biff.AssertNil(db.Load())
		biff.AssertEqual(db.GetStatus(), database.StatusOperating)

		s := service.NewService(db, views, registry.NewReviewer(db, "admin@landregistry.gov.lk"))

		b := Build(s, "", "test")
		b.WithInterceptors(
			PrettyErrorInterceptor,
			RecoverFromPanic,
			InterceptorUnavailable(db),
		)

		api := apitest.NewWithHandler(b)

		service.Acceptance(a, func(method, path string) *apitest.Request {
			return api.Request(method, "/v1"+path)
		})

		a.Alternative("Release", func(a *biff.A) {
			resp := api.Request("GET", "/release").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqual(resp.BodyJson(), "test")
		})

		a.Alternative("OpenAPI", func(a *biff.A) {
			resp := api.Request("GET", "/openapi.json").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			info := resp.BodyJsonMap()["info"].(map[string]interface{})
			biff.AssertEqual(info["title"], "Land Registry")
		})

		a.Alternative("Malformed JSON", func(a *biff.A) {
			resp := api.Request("POST", "/v1/views/applications:search").
				WithBodyString(`{"text": nope}`).Do()
			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})

		a.Alternative("Missing input", func(a *biff.A) {
			resp := api.Request("POST", "/v1/views/applications:toggle").
				WithBodyJson(map[string]any{"checked": true}).Do()
			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})

		a.Alternative("Database closing", func(a *biff.A) {
			db.Stop()
			resp := api.Request("GET", "/v1/views").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusServiceUnavailable)
		})
	})
}

func TestUnavailableWhileOpening(t *testing.T) {

	db := database.NewDatabase(&database.Config{Seeds: registry.Seeds, Dir: "seeds"})

	b := Build(service.NewService(db, nil, nil), "", "test")
	b.WithInterceptors(
		PrettyErrorInterceptor,
		InterceptorUnavailable(db),
	)

	resp := apitest.NewWithHandler(b).Request("GET", "/v1/views").Do()
	biff.AssertEqual(resp.StatusCode, http.StatusServiceUnavailable)
	biff.AssertEqualJson(resp.BodyJson(), map[string]any{
		"error": map[string]any{
			"message":     "temporary unavailable: opening",
			"description": "database is not ready, try again later",
		},
	})
}

func TestCompression(t *testing.T) {

	db := database.NewDatabase(&database.Config{Seeds: registry.Seeds, Dir: "seeds"})
	biff.AssertNil(db.Load())

	views, err := configuration.LoadViews("")
	biff.AssertNil(err)

	b := Build(service.NewService(db, views, nil), "", "test")
	b.Resource("/logo.png").WithActions(box.Get(func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("not really a png"))
	}))
	b.WithInterceptors(Compression)

	api := apitest.NewWithHandler(b)

	biff.Alternative("Compression", func(a *biff.A) {

		a.Alternative("Gzip when accepted", func(a *biff.A) {
			resp := api.Request("GET", "/release").
				WithHeader("Accept-Encoding", "gzip").Do()
			biff.AssertEqual(resp.Header.Get("Content-Encoding"), "gzip")
			biff.AssertEqual(resp.Header.Get("Vary"), "Accept-Encoding")

			gz, err := gzip.NewReader(resp.Body)
			biff.AssertNil(err)
			body, err := io.ReadAll(gz)
			biff.AssertNil(err)
			biff.AssertEqual(string(body), "\"test\"\n")
		})

		a.Alternative("CSV export is compressed", func(a *biff.A) {
			resp := api.Request("POST", "/v1/views/applications:export").
				WithHeader("Accept-Encoding", "deflate, gzip;q=0.8").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqual(resp.Header.Get("Content-Encoding"), "gzip")

			gz, err := gzip.NewReader(resp.Body)
			biff.AssertNil(err)
			body, err := io.ReadAll(gz)
			biff.AssertNil(err)
			biff.AssertTrue(strings.HasPrefix(string(body), "id,applicantName,"))
		})

		a.Alternative("Plain when not accepted", func(a *biff.A) {
			resp := api.Request("GET", "/release").Do()
			biff.AssertEqual(resp.Header.Get("Content-Encoding"), "")
			biff.AssertEqual(resp.BodyString(), "\"test\"\n")
		})

		a.Alternative("Plain when refused", func(a *biff.A) {
			resp := api.Request("GET", "/release").
				WithHeader("Accept-Encoding", "gzip;q=0").Do()
			biff.AssertEqual(resp.Header.Get("Content-Encoding"), "")
		})

		a.Alternative("Images are not compressed", func(a *biff.A) {
			resp := api.Request("GET", "/logo.png").
				WithHeader("Accept-Encoding", "gzip").Do()
			biff.AssertEqual(resp.Header.Get("Content-Encoding"), "")
			biff.AssertEqual(resp.BodyString(), "not really a png")
		})
	})
}

func TestAcceptsGzip(t *testing.T) {
	biff.AssertTrue(acceptsGzip("gzip"))
	biff.AssertTrue(acceptsGzip("br, GZIP"))
	biff.AssertTrue(acceptsGzip("gzip;q=0.5"))
	biff.AssertFalse(acceptsGzip("gzip;q=0"))
	biff.AssertFalse(acceptsGzip("deflate, br"))
	biff.AssertFalse(acceptsGzip(""))
}

func TestRecoverFromPanic(t *testing.T) {

	db := database.NewDatabase(&database.Config{Seeds: registry.Seeds, Dir: "seeds"})
	biff.AssertNil(db.Load())

	b := Build(service.NewService(db, nil, nil), "", "test")
	b.Resource("/explode").WithActions(box.Get(func() string {
		panic("boom")
	}))
	b.WithInterceptors(
		PrettyErrorInterceptor,
		RecoverFromPanic,
		InterceptorUnavailable(db),
	)

	resp := apitest.NewWithHandler(b).Request("GET", "/explode").Do()
	biff.AssertEqual(resp.StatusCode, http.StatusInternalServerError)
	biff.AssertEqualJson(resp.BodyJson(), map[string]any{
		"error": map[string]any{
			"message":     "panic: boom",
			"description": "Unexpected error",
		},
	})
}
