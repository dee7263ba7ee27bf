package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/vgau/boteditor/internal/database"
	"github.com/vgau/boteditor/internal/menugraph"
)

const metaTitle = "title"

// GraphRepo stores the menu graph as node and connection rows.
type GraphRepo struct {
	db *sql.DB
}

func NewGraphRepo(db *sql.DB) *GraphRepo { return &GraphRepo{db: db} }

// Load reads the stored graph back in insertion order. An empty database
// yields an empty graph.
func (r *GraphRepo) Load(ctx context.Context) (*menugraph.Graph, error) {
	g := menugraph.New()

	var title sql.NullString
	err := r.db.QueryRowContext(ctx, `SELECT value FROM graph_meta WHERE key = ?`, metaTitle).Scan(&title)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("load title: %w", err)
	}
	g.Title = title.String

	rows, err := r.db.QueryContext(ctx, `
	SELECT id, kind, title, params, x, y FROM graph_nodes ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("load nodes: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			n      menugraph.Node
			kind   string
			params string
		)
		if err := rows.Scan(&n.ID, &kind, &n.Title, &params, &n.X, &n.Y); err != nil {
			return nil, err
		}
		n.Kind = menugraph.NodeKind(kind)
		if params != "" {
			if err := json.Unmarshal([]byte(params), &n.Params); err != nil {
				return nil, fmt.Errorf("node %s params: %w", n.ID, err)
			}
		}
		if err := g.Insert(&n); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	crows, err := r.db.QueryContext(ctx, `
	SELECT from_node, from_port, to_node, to_port FROM graph_connections ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("load connections: %w", err)
	}
	defer crows.Close()
	for crows.Next() {
		var c menugraph.Connection
		if err := crows.Scan(&c.FromNode, &c.FromPort, &c.ToNode, &c.ToPort); err != nil {
			return nil, err
		}
		if err := g.Connect(c.FromNode, c.FromPort, c.ToNode, c.ToPort); err != nil {
			return nil, err
		}
	}
	return g, crows.Err()
}

// Replace swaps the stored graph for g in one transaction.
func (r *GraphRepo) Replace(ctx context.Context, g *menugraph.Graph) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, stmt := range []string{
			`DELETE FROM graph_connections`,
			`DELETE FROM graph_nodes`,
			`DELETE FROM graph_meta`,
		} {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO graph_meta(key, value) VALUES (?, ?)`, metaTitle, g.Title); err != nil {
			return err
		}

		for i, n := range g.Nodes() {
			params, err := json.Marshal(n.Params)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO graph_nodes(id, seq, kind, title, params, x, y)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
				n.ID, i, string(n.Kind), n.Title, string(params), n.X, n.Y); err != nil {
				return fmt.Errorf("insert node %s: %w", n.ID, err)
			}
		}
		for i, c := range g.Connections() {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO graph_connections(seq, from_node, from_port, to_node, to_port)
			VALUES (?, ?, ?, ?, ?)`,
				i, c.FromNode, c.FromPort, c.ToNode, c.ToPort); err != nil {
				return fmt.Errorf("insert connection %s.%s: %w", c.ToNode, c.ToPort, err)
			}
		}
		return nil
	})
}

// Count returns the number of stored nodes.
func (r *GraphRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM graph_nodes`).Scan(&n)
	return n, err
}

var _ menugraph.Store = (*GraphRepo)(nil)
