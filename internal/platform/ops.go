package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/taskflow/pkg/adapters/fs"
	"github.com/aretw0/taskflow/pkg/adapters/memory"
	"github.com/aretw0/taskflow/pkg/core"
)

// Init builds and initializes the store selected by the options.
// The uri argument is adapter-specific: the store root for "fs", ignored by "memory".
func Init(uri string, opts ...Option) (core.Store, error) {
	o := buildOptions(opts)

	if o.store != nil {
		if err := o.store.Initialize(context.Background()); err != nil {
			return nil, err
		}
		return o.store, nil
	}

	var store core.Store
	var err error

	switch o.adapter {
	case "fs":
		store, err = initFS(uri, o)
	case "memory":
		if o.readOnly {
			store = memory.NewReadOnly()
		} else {
			store = memory.New()
		}
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}

	if err != nil {
		return nil, err
	}

	if err := store.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return store, nil
}

// initFS handles path resolution and configuration for the filesystem adapter.
func initFS(path string, o *options) (core.Store, error) {
	// read-only is inherently safe
	bypassSafety := o.readOnly || !o.devSafety
	useTemp := o.forceTemp || (IsDevRun() && !bypassSafety)
	resolved := ResolveStorePath(path, useTemp)

	if IsDevRun() && o.logger != nil {
		if bypassSafety {
			if o.readOnly {
				o.logger.Debug("running in READ-ONLY mode (bypassing dev sandbox)", "path", resolved)
			} else {
				o.logger.Warn("running in UNSAFE mode (bypassing dev sandbox)", "path", resolved)
			}
		} else {
			o.logger.Debug("running in SAFE mode (dev sandbox enabled)", "path", resolved)
		}
	}

	if o.logger != nil && useTemp && resolved != path {
		o.logger.Warn("store re-rooted for dev safety", "original_path", path, "resolved_path", resolved)
	}

	store := fs.NewStore(fs.Config{
		Path:         resolved,
		File:         o.file,
		MustExist:    o.mustExist || (!o.autoInit && !useTemp),
		ReadOnly:     o.readOnly,
		EventBuffer:  o.eventBuffer,
		Logger:       o.logger,
		ErrorHandler: o.errorHandler,
	})

	for ext, s := range o.serializers {
		if s == nil {
			return nil, fmt.Errorf("serializer for %s is nil", ext)
		}
		store.RegisterSerializer(ext, s)
	}

	return store, nil
}
