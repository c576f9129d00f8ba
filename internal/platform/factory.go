package platform

import (
	"github.com/aretw0/arty/pkg/core"
)

// New wires a domain service on top of the storage adapter selected by opts.
//
//	svc, err := arty.New(arty.WithFormat("yaml"), arty.WithLocking(true))
//	c, err := svc.Load(ctx, "./paintings")
func New(opts ...Option) (*core.Service, error) {
	repo, err := Init(opts...)
	if err != nil {
		return nil, err
	}

	return core.NewService(repo), nil
}
