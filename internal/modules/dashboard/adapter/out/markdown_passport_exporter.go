package out

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"worksphere/internal/modules/dashboard/domain"
	dashboardout "worksphere/internal/modules/dashboard/port/out"
	"worksphere/internal/platform/markdown"
)

const passportBlock = "worksphere:passport"

// MarkdownPassportExporter writes passport cards as markdown notes with YAML
// frontmatter. Re-exporting into an existing note only replaces the
// generated block, so anything the user wrote around it survives.
type MarkdownPassportExporter struct{}

func NewMarkdownPassportExporter() dashboardout.PassportExporter {
	return MarkdownPassportExporter{}
}

func (MarkdownPassportExporter) Export(_ context.Context, path string, card domain.PassportCard) (string, error) {
	if path == "" {
		path = card.FileName()
	} else if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, card.FileName())
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	note := markdown.Note{Meta: map[string]any{}}
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		note, err = markdown.ParseNote(string(raw))
		if err != nil {
			return "", fmt.Errorf("parse existing export %s: %w", path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("read existing export: %w", err)
	}

	note.Meta["schema_version"] = domain.ExportSchemaVersion
	note.Meta["type"] = "passport"
	note.Meta["name"] = card.Name
	note.Meta["username"] = card.Username
	note.Meta["email"] = card.Email
	note.Meta["user_type"] = card.UserType
	note.Meta["trust_score"] = card.Passport.TrustScore
	note.Meta["level"] = card.Passport.Level
	note.Meta["xp_points"] = card.Passport.XPPoints
	note.Meta["exported_at"] = card.ExportedAt.Format(time.RFC3339)

	rendered, err := note.ReplaceBlock(passportBlock, card.Summary()).Render()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write passport export: %w", err)
	}
	return path, nil
}
