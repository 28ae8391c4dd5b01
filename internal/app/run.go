// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/nmltree/internal/ctxlog"
	"github.com/vk/nmltree/internal/metrics"
	"github.com/vk/nmltree/internal/node"
	"github.com/vk/nmltree/internal/nodeid"
	"github.com/vk/nmltree/internal/render"
	"github.com/vk/nmltree/internal/session"
)

// TreeID is the display id of the rendered tree root.
const TreeID = "model"

// Run loads the documents, builds and renders the model tree, then resolves
// every requested component. Resolution failures are reported together
// after all requests have been tried.
func (a *App) Run(ctx context.Context) (err error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	format, err := render.ParseFormat(a.config.Settings.OutputFormat)
	if err != nil {
		return err
	}
	mode, err := a.config.Settings.Mode()
	if err != nil {
		return err
	}

	doc, err := a.loader.Load(ctx, a.config.DocPaths...)
	if err != nil {
		return fmt.Errorf("failed to load documents: %w", err)
	}
	a.logger.Info("Documents loaded.", "components", doc.Len(), "cells", len(doc.Cells))

	sess, err := a.sessions.NewSession(ctx, doc, session.Options{Mode: mode, Registry: a.registry})
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	a.logger.Debug("Session opened.", "session", sess.ID(), "mode", mode.String())
	defer func() {
		if closeErr := sess.Close(ctx); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	root := node.NewTree(TreeID)
	populated, err := sess.PopulateModelTree(ctx, root)
	if err != nil {
		return fmt.Errorf("failed to populate model tree: %w", err)
	}
	if !populated {
		a.logger.Warn("No biophysical properties found, the model tree is empty.")
	}

	target := root
	if a.config.Select != nil {
		found, ok := root.Find(a.config.Select)
		if !ok {
			return selectError(root, a.config.Select)
		}
		target = found
	}

	if err := render.Render(a.outW, target, format); err != nil {
		return fmt.Errorf("failed to render model tree: %w", err)
	}

	var resolveErrs []error
	for _, req := range a.config.Requests {
		c, err := sess.Resolve(ctx, req.ID, req.Resource)
		if err != nil {
			a.logger.Error("Component resolution failed.", "request", req.String(), "error", err)
			resolveErrs = append(resolveErrs, fmt.Errorf("resolve %s: %w", req, err))
			continue
		}
		a.logger.Info("Component resolved.",
			"request", req.String(),
			"kind", c.Kind(),
			"id", c.ComponentID(),
			"source", c.Source().String(),
		)
	}

	summary, err := metrics.Summarize(sess.Metrics())
	if err != nil {
		a.logger.Warn("Could not collect resolver metrics.", "error", err)
	}
	a.logger.Info("Run finished.", "populated", populated, "nodes", root.Count(), "metrics", summary)

	a.logger.Debug("App.Run method finished.")
	return errors.Join(resolveErrs...)
}

// selectError reports a missing path together with its longest prefix that
// does exist in the tree.
func selectError(root *node.Node, addr *nodeid.Address) error {
	for prefix := addr.Parent(); prefix.Len() > 0; prefix = prefix.Parent() {
		if _, ok := root.Find(prefix); ok {
			return fmt.Errorf("no node at path %q, deepest existing path is %q", addr.String(), prefix.String())
		}
	}
	return fmt.Errorf("no node at path %q", addr.String())
}
