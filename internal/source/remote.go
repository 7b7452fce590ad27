package source

import (
	"context"

	"github.com/vk/firmgen/internal/ctxlog"
	"github.com/vk/firmgen/internal/docstore"
	"github.com/vk/firmgen/internal/loader"
	"github.com/vk/firmgen/internal/model"
)

// RemoteTypes loads module type definitions from the document store.
type RemoteTypes struct {
	Client *docstore.Client
}

// Name implements TypeSource.
func (s *RemoteTypes) Name() string {
	return "docstore:" + docstore.ModuleTypeDB
}

// EachType implements TypeSource.
func (s *RemoteTypes) EachType(ctx context.Context, fn func(t *model.ModuleType) error) error {
	logger := ctxlog.FromContext(ctx)

	ids, err := s.Client.AllDocIDs(ctx, docstore.ModuleTypeDB)
	if err != nil {
		return err
	}
	for _, id := range ids {
		logger.Info("Parsing firmware module type from server.", "id", id)
		doc, err := s.Client.GetDoc(ctx, docstore.ModuleTypeDB, id)
		if err != nil {
			return err
		}
		t, err := loader.ParseTypeJSON(id, doc)
		if err != nil {
			return err
		}
		if err := fn(t); err != nil {
			return err
		}
	}
	return nil
}

// RemoteInstances loads module instances from the document store.
type RemoteInstances struct {
	Client *docstore.Client
}

// Name implements InstanceSource.
func (s *RemoteInstances) Name() string {
	return "docstore:" + docstore.ModuleDB
}

// Instances implements InstanceSource.
func (s *RemoteInstances) Instances(ctx context.Context) (*model.InstanceSet, error) {
	logger := ctxlog.FromContext(ctx)

	ids, err := s.Client.AllDocIDs(ctx, docstore.ModuleDB)
	if err != nil {
		return nil, err
	}

	set := model.NewInstanceSet()
	for _, id := range ids {
		logger.Info("Parsing firmware module from server.", "id", id)
		doc, err := s.Client.GetDoc(ctx, docstore.ModuleDB, id)
		if err != nil {
			return nil, err
		}
		inst, err := loader.ParseInstanceJSON(id, doc)
		if err != nil {
			return nil, err
		}
		set.Put(inst)
	}
	return set, nil
}
