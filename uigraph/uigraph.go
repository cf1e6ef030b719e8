// SPDX-License-Identifier: MIT

package uigraph

import (
	"fmt"

	"github.com/katalvlaran/linkalike/core"
	"github.com/katalvlaran/linkalike/edgelist"
	"github.com/katalvlaran/linkalike/table"
	"go.uber.org/zap"
)

// Canonical column names.
const (
	DefaultUserCol = "USER_ID"
	DefaultItemCol = "ITEM_ID"

	// FromCol, ToCol and SimilarityCol name the columns of a similarity table.
	FromCol       = "FROM"
	ToCol         = "TO"
	SimilarityCol = "SIMILARITY"
)

// Config describes the interaction schema.
type Config struct {
	// UserCol and ItemCol name the user and item id columns.
	UserCol string
	ItemCol string

	// WeightCol names the interaction weight (rating) column; "" means unweighted.
	WeightCol string

	// UserMeta and ItemMeta select node metadata columns for AddNodes.
	UserMeta []string
	ItemMeta []string

	// OnlyRecommend restricts recommendable items.
	OnlyRecommend Filter
}

// DefaultConfig returns USER_ID/ITEM_ID, unweighted, no metadata, no filter.
func DefaultConfig() Config {
	return Config{UserCol: DefaultUserCol, ItemCol: DefaultItemCol}
}

// Option configures a UIGraph.
type Option func(*UIGraph)

// WithLogger sets the logger used for ingestion diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(u *UIGraph) {
		if l != nil {
			u.log = l
		}
	}
}

// UIGraph is a user–item graph under construction. AddEdges and AddNodes
// must not run concurrently; the returned Graph itself is safe to share.
type UIGraph struct {
	cfg   Config
	graph *core.Graph
	log   *zap.Logger

	items     map[table.Value]struct{}
	itemOrder []table.Value
}

// New returns an empty UIGraph. Empty UserCol/ItemCol take their defaults.
// Errors: ErrInvalidConfig when UserCol == ItemCol.
func New(cfg Config, opts ...Option) (*UIGraph, error) {
	if cfg.UserCol == "" {
		cfg.UserCol = DefaultUserCol
	}
	if cfg.ItemCol == "" {
		cfg.ItemCol = DefaultItemCol
	}
	if cfg.UserCol == cfg.ItemCol {
		return nil, fmt.Errorf("New: user and item column are both %q: %w", cfg.UserCol, ErrInvalidConfig)
	}
	cfg.UserMeta = append([]string(nil), cfg.UserMeta...)
	cfg.ItemMeta = append([]string(nil), cfg.ItemMeta...)

	u := &UIGraph{
		cfg:   cfg,
		graph: core.NewGraph(),
		log:   zap.NewNop(),
		items: make(map[table.Value]struct{}),
	}
	for _, opt := range opts {
		opt(u)
	}

	return u, nil
}

// Config returns the effective configuration.
func (u *UIGraph) Config() Config { return u.cfg }

// Graph returns the underlying graph container.
func (u *UIGraph) Graph() *core.Graph { return u.graph }

// AddEdges inserts interaction edges from interactions and, for each non-nil
// similarity table, similarity edges FROM → TO weighted by SIMILARITY.
// All edge lists are built and every endpoint is validated before anything
// is inserted, so a failed call leaves the graph unchanged.
//
// Errors: ErrNilTable, any edgelist error, core.ErrNilNodeID and
// core.ErrInvalidNodeID.
func (u *UIGraph) AddEdges(interactions, userSim, itemSim *table.Table) error {
	if interactions == nil {
		return fmt.Errorf("AddEdges: %w", ErrNilTable)
	}

	var opts []edgelist.Option
	if u.cfg.WeightCol != "" {
		opts = append(opts, edgelist.WithWeight(u.cfg.WeightCol))
	}
	inter, err := edgelist.MakeEdgeList(interactions, u.cfg.UserCol, u.cfg.ItemCol, opts...)
	if err != nil {
		return fmt.Errorf("AddEdges: interactions: %w", err)
	}

	var userEdges, itemEdges []edgelist.Edge
	if userSim != nil {
		if userEdges, err = similarityEdges(userSim); err != nil {
			return fmt.Errorf("AddEdges: user similarity: %w", err)
		}
	}
	if itemSim != nil {
		if itemEdges, err = similarityEdges(itemSim); err != nil {
			return fmt.Errorf("AddEdges: item similarity: %w", err)
		}
	}

	for _, batch := range []struct {
		name  string
		edges []edgelist.Edge
	}{
		{"interactions", inter},
		{"user similarity", userEdges},
		{"item similarity", itemEdges},
	} {
		if err = core.CheckEdges(batch.edges); err != nil {
			return fmt.Errorf("AddEdges: %s: %w", batch.name, err)
		}
	}

	if err = u.graph.AddEdgesFrom(inter); err != nil {
		return fmt.Errorf("AddEdges: interactions: %w", err)
	}
	for _, e := range inter {
		u.trackItem(e.To)
	}
	if err = u.graph.AddEdgesFrom(userEdges); err != nil {
		return fmt.Errorf("AddEdges: user similarity: %w", err)
	}
	if err = u.graph.AddEdgesFrom(itemEdges); err != nil {
		return fmt.Errorf("AddEdges: item similarity: %w", err)
	}
	for _, e := range itemEdges {
		u.trackItem(e.From)
		u.trackItem(e.To)
	}

	u.log.Debug("edges added",
		zap.Int("interactions", len(inter)),
		zap.Int("user_similarity", len(userEdges)),
		zap.Int("item_similarity", len(itemEdges)),
		zap.Int("nodes", u.graph.NodeCount()),
		zap.Int("edges", u.graph.EdgeCount()),
	)

	return nil
}

// AddNodes inserts user nodes (UserCol + UserMeta) and item nodes
// (ItemCol + ItemMeta) from each non-nil table, merging attributes into
// vertices that already exist. Both lists are validated before either is
// inserted.
func (u *UIGraph) AddNodes(users, items *table.Table) error {
	var userNodes, itemNodes []edgelist.Node
	var err error
	if users != nil {
		if userNodes, err = edgelist.MakeNodeList(users, u.cfg.UserCol, u.cfg.UserMeta); err != nil {
			return fmt.Errorf("AddNodes: users: %w", err)
		}
	}
	if items != nil {
		if itemNodes, err = edgelist.MakeNodeList(items, u.cfg.ItemCol, u.cfg.ItemMeta); err != nil {
			return fmt.Errorf("AddNodes: items: %w", err)
		}
	}

	if err = core.CheckNodes(userNodes); err != nil {
		return fmt.Errorf("AddNodes: users: %w", err)
	}
	if err = core.CheckNodes(itemNodes); err != nil {
		return fmt.Errorf("AddNodes: items: %w", err)
	}

	if err = u.graph.AddNodesFrom(userNodes); err != nil {
		return fmt.Errorf("AddNodes: users: %w", err)
	}
	if err = u.graph.AddNodesFrom(itemNodes); err != nil {
		return fmt.Errorf("AddNodes: items: %w", err)
	}
	for _, n := range itemNodes {
		u.trackItem(n.ID)
	}

	u.log.Debug("nodes added",
		zap.Int("users", len(userNodes)),
		zap.Int("items", len(itemNodes)),
	)

	return nil
}

// Recommendable reports whether item passes OnlyRecommend.
func (u *UIGraph) Recommendable(item table.Value) bool {
	return u.cfg.OnlyRecommend.Allows(item)
}

// Items returns every item id seen so far, in first-seen order.
func (u *UIGraph) Items() []table.Value {
	return append([]table.Value(nil), u.itemOrder...)
}

// RecommendableItems returns the items that pass OnlyRecommend, in
// first-seen order.
func (u *UIGraph) RecommendableItems() []table.Value {
	var out []table.Value
	for _, it := range u.itemOrder {
		if u.Recommendable(it) {
			out = append(out, it)
		}
	}

	return out
}

// trackItem records id as an item once. id is already a valid vertex id.
func (u *UIGraph) trackItem(id table.Value) {
	if _, ok := u.items[id]; ok {
		return
	}
	u.items[id] = struct{}{}
	u.itemOrder = append(u.itemOrder, id)
}

// similarityEdges reads a FROM/TO/SIMILARITY table.
func similarityEdges(t *table.Table) ([]edgelist.Edge, error) {
	return edgelist.MakeEdgeList(t, FromCol, ToCol, edgelist.WithWeight(SimilarityCol))
}
