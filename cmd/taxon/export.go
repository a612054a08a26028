package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jward/taxon"
	"github.com/jward/taxon/internal/store"
	"github.com/spf13/cobra"
)

var flagDB string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Persist the current classification run as a snapshot",
	Long:  "Runs a full inspection and writes the summary, every description, method partitions, and supertype chains to the SQLite snapshot database, so runs can be diffed across toolchain versions.",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List persisted snapshots",
	Args:  cobra.NoArgs,
	RunE:  runSnapshots,
}

func init() {
	exportCmd.Flags().StringVar(&flagDB, "db", "", "snapshot database path (default from config)")
	snapshotsCmd.Flags().StringVar(&flagDB, "db", "", "snapshot database path (default from config)")
}

// resolveDBPath returns the snapshot database path from the --db flag or the
// configured default.
func resolveDBPath(configured string) string {
	if flagDB != "" {
		return flagDB
	}
	return configured
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return outputError("export", flagFormat, err)
	}
	format := outputFormat(cfg)

	engine := newEngine(cfg)
	idx := engine.Inspect()
	descs := engine.DescribeAll(idx)
	sum := idx.Summary()

	dbPath := resolveDBPath(cfg.Export.Path)
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return outputError("export", format, fmt.Errorf("creating %s: %w", dir, err))
		}
	}

	s, err := store.NewStore(dbPath)
	if err != nil {
		return outputError("export", format, err)
	}
	defer s.Close()
	if err := s.Migrate(); err != nil {
		return outputError("export", format, err)
	}

	snap := &store.Snapshot{
		ID:        uuid.NewString(),
		Namespace: sum.Namespace,
		CreatedAt: time.Now().UTC(),
		Total:     sum.Total,
	}
	// One transaction for the whole snapshot: a mid-export failure leaves
	// no partial snapshot behind.
	err = s.WithTx(func(tx *store.Store) error {
		if err := tx.InsertSnapshot(snap); err != nil {
			return err
		}
		for _, d := range descs {
			if err := exportDescription(tx, snap.ID, d); err != nil {
				return fmt.Errorf("exporting %s: %w", d.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return outputError("export", format, err)
	}

	count := len(descs)
	return outputResult(format, CLIResult{
		Command: "export",
		Results: CLIExport{
			SnapshotID: snap.ID,
			Database:   dbPath,
			Entries:    count,
		},
		TotalCount: &count,
	})
}

// exportDescription writes one description plus its method partition and
// supertype chain.
func exportDescription(s *store.Store, snapshotID string, d *taxon.Description) error {
	entryID, err := s.InsertEntry(&store.Entry{
		SnapshotID:     snapshotID,
		Name:           d.Name,
		Category:       string(d.Category),
		TypeName:       d.TypeName,
		Module:         d.Module,
		Callable:       d.Callable,
		Doc:            d.Doc,
		ProtocolMethod: d.ProtocolMethod,
		Repr:           d.Repr,
		Note:           d.Note,
		PublicCount:    d.PublicMethodCount,
		SpecialCount:   d.SpecialMethodCount,
	})
	if err != nil {
		return err
	}
	for _, name := range d.PublicMethods {
		if _, err := s.InsertMethod(&store.Method{EntryID: entryID, Name: name, Kind: "public"}); err != nil {
			return err
		}
	}
	for _, name := range d.SpecialMethods {
		if _, err := s.InsertMethod(&store.Method{EntryID: entryID, Name: name, Kind: "special"}); err != nil {
			return err
		}
	}
	for i, name := range d.Supertypes {
		if _, err := s.InsertSupertype(&store.Supertype{EntryID: entryID, Position: i, Name: name}); err != nil {
			return err
		}
	}
	return nil
}

func runSnapshots(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return outputError("snapshots", flagFormat, err)
	}
	format := outputFormat(cfg)

	dbPath := resolveDBPath(cfg.Export.Path)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return outputError("snapshots", format,
			fmt.Errorf("snapshot database not found: %s (run 'taxon export' first)", dbPath))
	}

	s, err := store.NewStore(dbPath)
	if err != nil {
		return outputError("snapshots", format, err)
	}
	defer s.Close()

	snaps, err := s.Snapshots()
	if err != nil {
		return outputError("snapshots", format, err)
	}

	cliSnaps := make([]CLISnapshot, len(snaps))
	for i, snap := range snaps {
		cliSnaps[i] = CLISnapshot{
			ID:        snap.ID,
			Namespace: snap.Namespace,
			CreatedAt: snap.CreatedAt,
			Total:     snap.Total,
		}
	}

	count := len(cliSnaps)
	return outputResult(format, CLIResult{
		Command:    "snapshots",
		Results:    cliSnaps,
		TotalCount: &count,
	})
}
