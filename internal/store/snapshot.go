package store

import (
	"database/sql"
	"fmt"
)

// --- Snapshot operations ---

func (s *Store) InsertSnapshot(snap *Snapshot) error {
	_, err := s.q.Exec(
		"INSERT INTO snapshots (id, namespace, created_at, total) VALUES (?, ?, ?, ?)",
		snap.ID, snap.Namespace, snap.CreatedAt, snap.Total,
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

func (s *Store) SnapshotByID(id string) (*Snapshot, error) {
	snap := &Snapshot{}
	err := s.q.QueryRow(
		"SELECT id, namespace, created_at, total FROM snapshots WHERE id = ?", id,
	).Scan(&snap.ID, &snap.Namespace, &snap.CreatedAt, &snap.Total)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot by id: %w", err)
	}
	return snap, nil
}

func (s *Store) Snapshots() ([]*Snapshot, error) {
	rows, err := s.q.Query(
		"SELECT id, namespace, created_at, total FROM snapshots ORDER BY created_at",
	)
	if err != nil {
		return nil, fmt.Errorf("snapshots: %w", err)
	}
	defer rows.Close()
	var snaps []*Snapshot
	for rows.Next() {
		snap := &Snapshot{}
		if err := rows.Scan(&snap.ID, &snap.Namespace, &snap.CreatedAt, &snap.Total); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// --- Entry operations ---

func (s *Store) InsertEntry(e *Entry) (int64, error) {
	res, err := s.q.Exec(
		`INSERT INTO entries (snapshot_id, name, category, type_name, module, callable,
			doc, protocol_method, repr, note, public_count, special_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.SnapshotID, e.Name, e.Category, e.TypeName, e.Module, e.Callable,
		e.Doc, e.ProtocolMethod, e.Repr, e.Note, e.PublicCount, e.SpecialCount,
	)
	if err != nil {
		return 0, fmt.Errorf("insert entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	e.ID = id
	return id, nil
}

func (s *Store) EntriesBySnapshot(snapshotID string) ([]*Entry, error) {
	rows, err := s.q.Query(
		`SELECT id, snapshot_id, name, category, type_name, module, callable,
			doc, protocol_method, repr, note, public_count, special_count
		 FROM entries WHERE snapshot_id = ? ORDER BY category, name`, snapshotID,
	)
	if err != nil {
		return nil, fmt.Errorf("entries by snapshot: %w", err)
	}
	defer rows.Close()
	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		if err := rows.Scan(&e.ID, &e.SnapshotID, &e.Name, &e.Category, &e.TypeName,
			&e.Module, &e.Callable, &e.Doc, &e.ProtocolMethod, &e.Repr, &e.Note,
			&e.PublicCount, &e.SpecialCount); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// --- Method and supertype operations ---

func (s *Store) InsertMethod(m *Method) (int64, error) {
	res, err := s.q.Exec(
		"INSERT INTO entry_methods (entry_id, name, kind) VALUES (?, ?, ?)",
		m.EntryID, m.Name, m.Kind,
	)
	if err != nil {
		return 0, fmt.Errorf("insert method: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	m.ID = id
	return id, nil
}

func (s *Store) MethodsByEntry(entryID int64) ([]*Method, error) {
	rows, err := s.q.Query(
		"SELECT id, entry_id, name, kind FROM entry_methods WHERE entry_id = ? ORDER BY kind, name",
		entryID,
	)
	if err != nil {
		return nil, fmt.Errorf("methods by entry: %w", err)
	}
	defer rows.Close()
	var methods []*Method
	for rows.Next() {
		m := &Method{}
		if err := rows.Scan(&m.ID, &m.EntryID, &m.Name, &m.Kind); err != nil {
			return nil, fmt.Errorf("scan method: %w", err)
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}

func (s *Store) InsertSupertype(st *Supertype) (int64, error) {
	res, err := s.q.Exec(
		"INSERT INTO entry_supertypes (entry_id, position, name) VALUES (?, ?, ?)",
		st.EntryID, st.Position, st.Name,
	)
	if err != nil {
		return 0, fmt.Errorf("insert supertype: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	st.ID = id
	return id, nil
}

func (s *Store) SupertypesByEntry(entryID int64) ([]*Supertype, error) {
	rows, err := s.q.Query(
		"SELECT id, entry_id, position, name FROM entry_supertypes WHERE entry_id = ? ORDER BY position",
		entryID,
	)
	if err != nil {
		return nil, fmt.Errorf("supertypes by entry: %w", err)
	}
	defer rows.Close()
	var supers []*Supertype
	for rows.Next() {
		st := &Supertype{}
		if err := rows.Scan(&st.ID, &st.EntryID, &st.Position, &st.Name); err != nil {
			return nil, fmt.Errorf("scan supertype: %w", err)
		}
		supers = append(supers, st)
	}
	return supers, rows.Err()
}
