package core

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/tyaso777/monthly-file-diff/schema"
)

// CollectFiles walks one resolved period folder and builds a record per
// discovered file. Files directly inside root sit at depth 1; maxDepth 2
// therefore covers root-level files plus one level of subfolders, and
// maxDepth 0 discovers nothing. Per-file stat failures and unreadable
// subfolders degrade to warnings; only the records that resolved cleanly
// are returned. Traversal is lexical, so output order is deterministic.
func CollectFiles(root string, p schema.Period, ph Placeholders, maxDepth int) ([]schema.FileRecord, []schema.Warning) {
	if maxDepth <= 0 {
		return nil, nil
	}

	var records []schema.FileRecord
	var warnings []schema.Warning

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				// Root itself failed to open; surfaced as a single per-period warning below.
				return err
			}
			warnings = append(warnings, schema.Warning{
				Kind:    schema.WarnFolderUnreadable,
				Message: fmt.Sprintf("skipping unreadable entry %s: %v", path, err),
			})
			return nil
		}
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		depth := strings.Count(rel, "/") + 1

		if d.IsDir() {
			// A folder at depth n holds files at depth n+1.
			if depth >= maxDepth {
				return fs.SkipDir
			}
			return nil
		}
		if depth > maxDepth {
			return nil
		}
		// Only regular files become records; symlinks, fifos and sockets
		// are skipped. WalkDir does not follow links.
		if !d.Type().IsRegular() {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			warnings = append(warnings, schema.Warning{
				Kind:    schema.WarnFileUnreadable,
				Message: fmt.Sprintf("skipping %s: %v", path, infoErr),
			})
			return nil
		}

		created, _ := birthTime(path, info)
		records = append(records, schema.FileRecord{
			NormalizedRelPath: NormalizeRelPath(rel, p, ph),
			Period:            p,
			ActualName:        d.Name(),
			RelPath:           rel,
			SizeBytes:         info.Size(),
			Created:           RoundTimestamp(created),
			Modified:          RoundTimestamp(info.ModTime()),
		})
		return nil
	})
	if err != nil {
		warnings = append(warnings, schema.Warning{
			Kind:    schema.WarnFolderUnreadable,
			Message: fmt.Sprintf("cannot walk %s: %v", root, err),
		})
	}

	return records, warnings
}
