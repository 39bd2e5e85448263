package main

import (
	"fmt"
	"strings"

	cli "github.com/urfave/cli/v3"

	"github.com/fulldump/landregistry/bootstrap"
	"github.com/fulldump/landregistry/configuration"
	"github.com/fulldump/landregistry/registry"
	"github.com/fulldump/landregistry/service"
)

func openService(cmd *cli.Command) (*service.Service, error) {

	c := configuration.Default()
	c.SeedsDir = cmd.String("seeds-dir")
	c.ViewsFile = cmd.String("views-file")

	views, err := configuration.LoadViews(c.ViewsFile)
	if err != nil {
		return nil, err
	}

	db := bootstrap.NewDatabase(&c)
	err = db.Load()
	if err != nil {
		return nil, err
	}

	return service.NewService(db, views, registry.NewReviewer(db, c.Actor)), nil
}

// openView applies the search and filter flags to the view.
func openView(cmd *cli.Command) (*service.Service, string, error) {

	s, err := openService(cmd)
	if err != nil {
		return nil, "", err
	}

	name := cmd.String("view")

	filters, err := parseFilters(cmd.StringSlice("filter"))
	if err != nil {
		return nil, "", err
	}
	for _, f := range filters {
		_, err := s.Filter(name, f[0], f[1])
		if err != nil {
			return nil, "", err
		}
	}

	if search := cmd.String("search"); search != "" {
		_, err := s.Search(name, search)
		if err != nil {
			return nil, "", err
		}
	}

	return s, name, nil
}

func parseFilters(values []string) ([][2]string, error) {
	result := [][2]string{}
	for _, value := range values {
		field, v, found := strings.Cut(value, "=")
		if !found || field == "" {
			return nil, fmt.Errorf("filter '%s' must be field=value", value)
		}
		result = append(result, [2]string{field, v})
	}
	return result, nil
}

func findView(s *service.Service, name string) (*service.View, error) {
	views, err := s.ListViews()
	if err != nil {
		return nil, err
	}
	for _, view := range views {
		if view.Name == name {
			return view, nil
		}
	}
	return nil, fmt.Errorf("%w: '%s'", service.ErrViewNotFound, name)
}
