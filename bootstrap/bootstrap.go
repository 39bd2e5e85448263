package bootstrap

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fulldump/box"

	"github.com/fulldump/landregistry/api"
	"github.com/fulldump/landregistry/configuration"
	"github.com/fulldump/landregistry/database"
	"github.com/fulldump/landregistry/registry"
	"github.com/fulldump/landregistry/service"
)

var VERSION = "dev"

// NewDatabase opens the seeds of c: SeedsDir when set, the embedded ones
// otherwise.
func NewDatabase(c *configuration.Configuration) *database.Database {

	var seeds fs.FS = registry.Seeds
	dir := "seeds"
	if c.SeedsDir != "" {
		seeds = os.DirFS(c.SeedsDir)
		dir = "."
	}

	return database.NewDatabase(&database.Config{
		Seeds: seeds,
		Dir:   dir,
	})
}

func Bootstrap(c *configuration.Configuration) (start, stop func(), err error) {

	views, err := configuration.LoadViews(c.ViewsFile)
	if err != nil {
		return nil, nil, err
	}

	db := NewDatabase(c)
	s := service.NewService(db, views, registry.NewReviewer(db, c.Actor))

	b := api.Build(s, c.Statics, VERSION)
	if c.EnableCompression {
		b.WithInterceptors(api.Compression)
	}
	b.WithInterceptors(
		api.AccessLog(log.New(os.Stdout, "ACCESS: ", log.Lshortfile)),
		api.PrettyErrorInterceptor,
		api.RecoverFromPanic,
		api.InterceptorUnavailable(db),
	)

	server := &http.Server{
		Addr:    c.HttpAddr,
		Handler: box.Box2Http(b),
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("listen: %w", err)
	}
	log.Println("listening on", c.HttpAddr)

	stop = func() {
		db.Stop()
		server.Shutdown(context.Background())
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		for {
			sig := <-signalChan
			fmt.Println("Signal received", sig.String())
			stop()
		}
	}()

	start = func() {

		wg := &sync.WaitGroup{}

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := db.Start()
			if err != nil {
				fmt.Println(err.Error())
			}
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := server.Serve(ln)
			if err != nil && err != http.ErrServerClosed {
				fmt.Println(err.Error())
			}
		}()

		wg.Wait()
	}

	return
}
