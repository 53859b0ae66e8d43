// Package seed populates a fresh database with the default accounts, the
// category catalogue and optional sample inventory.
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/sparekeeper/internal/cryptox"
	"github.com/dmitrijs2005/sparekeeper/internal/logging"
	"github.com/dmitrijs2005/sparekeeper/internal/models"
	"github.com/dmitrijs2005/sparekeeper/internal/repositories/categories"
	"github.com/dmitrijs2005/sparekeeper/internal/repositories/repomanager"
	"github.com/dmitrijs2005/sparekeeper/internal/store"
)

type Deps struct {
	Store       *store.Store
	Repos       repomanager.RepositoryManager
	Hasher      cryptox.PasswordHasher
	Logger      logging.Logger
	SampleParts bool
}

// Run seeds an empty database in one transaction and reports whether it did
// anything. A database with at least one user is left alone.
func Run(ctx context.Context, d Deps) (bool, error) {
	now := time.Now().UTC()
	seeded := false

	err := d.Store.WithTx(ctx, func(ctx context.Context, tx store.DBTX) error {
		usersRepo := d.Repos.Users(tx)
		n, err := usersRepo.Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		var adminID int64
		for _, us := range DefaultUsers {
			hash, err := d.Hasher.Hash([]byte(us.Password))
			if err != nil {
				return fmt.Errorf("failed to hash password for %s: %w", us.ServiceNumber, err)
			}
			u := &models.User{
				ServiceNumber: us.ServiceNumber,
				Name:          us.Name,
				PasswordHash:  hash,
				Role:          us.Role,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := usersRepo.Create(ctx, u); err != nil {
				return err
			}
			if us.Role == models.RoleAdmin && adminID == 0 {
				adminID = u.ID
			}
		}

		catRepo := d.Repos.Categories(tx)
		if _, err := EnsureCategories(ctx, catRepo, now); err != nil {
			return err
		}

		if d.SampleParts {
			if err := seedParts(ctx, d.Repos, tx, catRepo, adminID, now); err != nil {
				return err
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if seeded {
		d.Logger.Info(ctx, "database seeded", "users", len(DefaultUsers), "categories", len(Catalogue), "sample_parts", d.SampleParts)
	}
	return seeded, nil
}

func seedParts(ctx context.Context, rm repomanager.RepositoryManager, tx store.DBTX, catRepo categories.Repository, adminID int64, now time.Time) error {
	list, err := catRepo.List(ctx)
	if err != nil {
		return err
	}
	index := categories.NewNameIndex(list)
	partsRepo := rm.Parts(tx)

	for _, ps := range SampleParts {
		catID, ok := index.Find(ps.Category)
		if !ok {
			return fmt.Errorf("sample part %s: category %q missing", ps.PartNumber, ps.Category)
		}
		desc := "Sample part: " + ps.Name
		p := &models.Part{
			Name:        ps.Name,
			PartNumber:  ps.PartNumber,
			BoxNumber:   ps.BoxNumber,
			Quantity:    ps.Quantity,
			Status:      models.ComputeStatus(ps.Quantity, ps.MinQuantity),
			CategoryID:  catID,
			Description: &desc,
			MinQuantity: ps.MinQuantity,
			CreatedBy:   adminID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := partsRepo.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// EnsureCategories adds every catalogue entry whose name is not already
// present, compared case-insensitively, and returns the names it added.
func EnsureCategories(ctx context.Context, repo categories.Repository, now time.Time) ([]string, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	have := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		have[strings.ToLower(c.Name)] = struct{}{}
	}

	var added []string
	for _, cs := range Catalogue {
		if _, ok := have[strings.ToLower(cs.Name)]; ok {
			continue
		}
		desc := cs.Description
		c := &models.Category{Name: cs.Name, Type: cs.Type, Description: &desc, CreatedAt: now}
		if err := repo.Create(ctx, c); err != nil {
			return added, err
		}
		added = append(added, cs.Name)
	}
	return added, nil
}
