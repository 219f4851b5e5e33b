package platform

import (
	"context"

	"github.com/aretw0/taskflow/pkg/core"
	"github.com/aretw0/taskflow/pkg/parse"
	"github.com/aretw0/taskflow/pkg/research"
)

// New wires a ready-to-use service: store, rule-based parser, research
// lookup, and the task list already loaded.
//
//	svc, err := taskflow.New("~/.taskflow", taskflow.WithReadOnly(true))
func New(uri string, opts ...Option) (*core.Service, error) {
	store, err := Init(uri, opts...)
	if err != nil {
		return nil, err
	}

	o := buildOptions(opts)

	svcOpts := []core.ServiceOption{
		core.WithFactory(core.Factory{
			NewID:    o.newID,
			Now:      o.clock,
			Research: research.Lookup,
		}),
		core.WithEventBuffer(o.eventBuffer),
	}
	if o.logger != nil {
		svcOpts = append(svcOpts, core.WithLogger(o.logger))
	}

	service := core.NewService(store, parse.Parse, svcOpts...)
	if err := service.Open(context.Background()); err != nil {
		return nil, err
	}

	return service, nil
}
