package projects

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"studio-backend/internal/files"
)

func TestListByTeamIncludesFileAggregates(t *testing.T) {
	filesRepo := files.NewMemoryRepo()
	repo := NewMemoryRepo(filesRepo)

	teamID := uuid.NewString()
	now := time.Now().UTC()
	project := Project{
		ID:             uuid.NewString(),
		TeamID:         teamID,
		Name:           "Catalog",
		NameNormalized: "catalog",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := repo.Create(context.Background(), project); err != nil {
		t.Fatalf("create project: %v", err)
	}

	for i := 0; i < previewLimit+2; i++ {
		f := files.File{
			ID:            uuid.NewString(),
			ProjectID:     project.ID,
			Name:          fmt.Sprintf("Screen %d", i),
			Template:      files.TemplateBlank,
			SchemaVersion: files.DefaultSchemaVersion,
			Schema:        json.RawMessage(`{}`),
			Revision:      1,
			CreatedAt:     now,
			UpdatedAt:     now.Add(time.Duration(i) * time.Second),
		}
		if err := filesRepo.Create(context.Background(), f); err != nil {
			t.Fatalf("create file: %v", err)
		}
	}

	summaries, err := repo.ListByTeam(context.Background(), teamID)
	if err != nil {
		t.Fatalf("ListByTeam: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	s := summaries[0]
	if s.FileCount != previewLimit+2 {
		t.Fatalf("expected file count %d, got %d", previewLimit+2, s.FileCount)
	}
	if len(s.Previews) != previewLimit {
		t.Fatalf("expected %d previews, got %d", previewLimit, len(s.Previews))
	}
}
