package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alephlabs/aleph/internal/factored"
)

// Materialization is one cached value.
type Materialization struct {
	// Digest is the content-addressed identity of the materialized value.
	Digest string
	// Factors renders the factor product that produced the value.
	Factors string
	// Value is the decimal rendering of the integer.
	Value string
	// Session identifies the session that first materialized the value.
	Session string
	// Seq is the logical clock position of the write.
	Seq int64
}

// NewSessionToken returns a fresh session token for cache attribution.
func NewSessionToken() string {
	return "session-" + uuid.NewString()
}

// Put records a materialization. Idempotent: a digest already present is
// left untouched, including its original session and seq.
func (s *Store) Put(ctx context.Context, m Materialization) error {
	if m.Digest == "" {
		return fmt.Errorf("materialization digest must not be empty")
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO materializations (digest, factors, value, session, seq)
		VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM materializations))
	`, m.Digest, m.Factors, m.Value, m.Session)
	if err != nil {
		return fmt.Errorf("put materialization: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		s.log.Debug("materialization already cached", zap.String("digest", m.Digest))
	}
	return nil
}

// Get returns the cached materialization for a digest, if present.
func (s *Store) Get(ctx context.Context, digest string) (*Materialization, bool, error) {
	var m Materialization
	err := s.db.QueryRowContext(ctx, `
		SELECT digest, factors, value, session, seq
		FROM materializations
		WHERE digest = ?
	`, digest).Scan(&m.Digest, &m.Factors, &m.Value, &m.Session, &m.Seq)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get materialization: %w", err)
	}
	return &m, true, nil
}

// List returns all cached materializations in deterministic order.
func (s *Store) List(ctx context.Context) ([]Materialization, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT digest, factors, value, session, seq
		FROM materializations
		ORDER BY seq ASC, digest ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list materializations: %w", err)
	}
	defer rows.Close()

	var out []Materialization
	for rows.Next() {
		var m Materialization
		if err := rows.Scan(&m.Digest, &m.Factors, &m.Value, &m.Session, &m.Seq); err != nil {
			return nil, fmt.Errorf("scan materialization: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Materialize returns the value of a factored integer, consulting the
// cache first and recording a miss after computing.
//
// The factored value is already materialized in memory (construction is
// eager); what the cache saves is re-deriving towers in later sessions,
// where only the factor description would otherwise be available.
func (s *Store) Materialize(ctx context.Context, n *factored.N, session string) (*big.Int, error) {
	if n == nil {
		return nil, fmt.Errorf("factored integer must not be nil")
	}

	if m, ok, err := s.Get(ctx, n.Digest()); err != nil {
		return nil, err
	} else if ok {
		s.log.Debug("cache hit", zap.String("digest", n.Digest()))
		v, valid := new(big.Int).SetString(m.Value, 10)
		if !valid {
			return nil, fmt.Errorf("corrupt cached value for digest %s", m.Digest)
		}
		return v, nil
	}

	s.log.Debug("cache miss", zap.String("digest", n.Digest()))
	v := n.Value()
	err := s.Put(ctx, Materialization{
		Digest:  n.Digest(),
		Factors: n.String(),
		Value:   n.Canonical(),
		Session: session,
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}
