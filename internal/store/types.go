package store

import "time"

// Snapshot is one persisted inspection run.
type Snapshot struct {
	ID        string
	Namespace string
	CreatedAt time.Time
	Total     int
}

// Entry is one persisted description within a snapshot.
type Entry struct {
	ID             int64
	SnapshotID     string
	Name           string
	Category       string
	TypeName       string
	Module         string
	Callable       bool
	Doc            string
	ProtocolMethod string
	Repr           string
	Note           string
	PublicCount    int
	SpecialCount   int
}

// Method is one partitioned method name belonging to an entry.
// Kind is "public" or "special".
type Method struct {
	ID      int64
	EntryID int64
	Name    string
	Kind    string
}

// Supertype is one position in an entry's linearized supertype chain.
type Supertype struct {
	ID       int64
	EntryID  int64
	Position int
	Name     string
}
